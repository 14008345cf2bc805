package monitor_test

import (
	"testing"
	"time"

	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor"
	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor/aggregates"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		record   aggregates.RawRecord
		expected aggregates.HeartbeatEvent
		valid    bool
	}{
		{
			name:   "valid record",
			record: aggregates.RawRecord{"service": "email", "timestamp": "2025-08-04T10:00:00Z"},
			expected: aggregates.HeartbeatEvent{
				Service:   "email",
				Timestamp: time.Date(2025, 8, 4, 10, 0, 0, 0, time.UTC),
			},
			valid: true,
		},
		{
			name:   "explicit utc offset",
			record: aggregates.RawRecord{"service": "email", "timestamp": "2025-08-04T10:00:00+00:00"},
			expected: aggregates.HeartbeatEvent{
				Service:   "email",
				Timestamp: time.Date(2025, 8, 4, 10, 0, 0, 0, time.UTC),
			},
			valid: true,
		},
		{
			name:   "non utc offset is normalized",
			record: aggregates.RawRecord{"service": "email", "timestamp": "2025-08-04T12:00:00+02:00"},
			expected: aggregates.HeartbeatEvent{
				Service:   "email",
				Timestamp: time.Date(2025, 8, 4, 10, 0, 0, 0, time.UTC),
			},
			valid: true,
		},
		{
			name:   "missing timezone is treated as utc",
			record: aggregates.RawRecord{"service": "email", "timestamp": "2025-08-04T10:00:00"},
			expected: aggregates.HeartbeatEvent{
				Service:   "email",
				Timestamp: time.Date(2025, 8, 4, 10, 0, 0, 0, time.UTC),
			},
			valid: true,
		},
		{
			name:   "fractional seconds",
			record: aggregates.RawRecord{"service": "email", "timestamp": "2025-08-04T10:00:00.250Z"},
			expected: aggregates.HeartbeatEvent{
				Service:   "email",
				Timestamp: time.Date(2025, 8, 4, 10, 0, 0, 250000000, time.UTC),
			},
			valid: true,
		},
		{
			name:   "space separated datetime",
			record: aggregates.RawRecord{"service": "email", "timestamp": "2025-08-04 10:00:00"},
			expected: aggregates.HeartbeatEvent{
				Service:   "email",
				Timestamp: time.Date(2025, 8, 4, 10, 0, 0, 0, time.UTC),
			},
			valid: true,
		},
		{
			name: "extra fields are ignored",
			record: aggregates.RawRecord{
				"service":   "email",
				"timestamp": "2025-08-04T10:00:00Z",
				"region":    "eu-west-1",
				"attempt":   float64(3),
			},
			expected: aggregates.HeartbeatEvent{
				Service:   "email",
				Timestamp: time.Date(2025, 8, 4, 10, 0, 0, 0, time.UTC),
			},
			valid: true,
		},
		{
			name:   "missing service",
			record: aggregates.RawRecord{"timestamp": "2025-08-04T10:00:00Z"},
		},
		{
			name:   "null service",
			record: aggregates.RawRecord{"service": nil, "timestamp": "2025-08-04T10:00:00Z"},
		},
		{
			name:   "empty service",
			record: aggregates.RawRecord{"service": "", "timestamp": "2025-08-04T10:00:00Z"},
		},
		{
			name:   "blank service",
			record: aggregates.RawRecord{"service": "   ", "timestamp": "2025-08-04T10:00:00Z"},
		},
		{
			name:   "non string service",
			record: aggregates.RawRecord{"service": float64(42), "timestamp": "2025-08-04T10:00:00Z"},
		},
		{
			name:   "missing timestamp",
			record: aggregates.RawRecord{"service": "email"},
		},
		{
			name:   "null timestamp",
			record: aggregates.RawRecord{"service": "email", "timestamp": nil},
		},
		{
			name:   "non string timestamp",
			record: aggregates.RawRecord{"service": "email", "timestamp": float64(1722765600)},
		},
		{
			name:   "unparsable timestamp",
			record: aggregates.RawRecord{"service": "email", "timestamp": "invalid-timestamp"},
		},
		{
			name:   "date without time",
			record: aggregates.RawRecord{"service": "email", "timestamp": "2025-08-04"},
		},
		{
			name:   "nil record",
			record: nil,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			event, ok := monitor.Normalize(c.record)
			assert.Equal(t, c.valid, ok)
			if c.valid {
				assert.Equal(t, c.expected.Service, event.Service)
				assert.True(t, c.expected.Timestamp.Equal(event.Timestamp))
				assert.Equal(t, time.UTC, event.Timestamp.Location())
			}
		})
	}
}

func TestNormalizeAll(t *testing.T) {
	records := []aggregates.RawRecord{
		{"service": "cache", "timestamp": "2025-08-04T10:00:00Z"},
		{"service": "cache"},
		{"timestamp": "2025-08-04T10:01:00Z"},
		{"service": "cache", "timestamp": "invalid-timestamp"},
		{"service": "", "timestamp": "2025-08-04T10:02:00Z"},
		nil,
		{"service": "cache", "timestamp": "2025-08-04T10:03:00Z"},
	}
	events, rejected := monitor.NormalizeAll(records)
	assert.Len(t, events, 2)
	assert.Equal(t, 5, rejected)
	assert.Equal(t, "cache", events[0].Service)
	assert.Equal(t, "cache", events[1].Service)
}

func TestNormalizeAllEmpty(t *testing.T) {
	events, rejected := monitor.NormalizeAll(nil)
	assert.Empty(t, events)
	assert.Zero(t, rejected)
}
