package monitor_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor"
	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor/aggregates"
	"github.com/stretchr/testify/assert"
)

func event(t *testing.T, service string, timestamp string) aggregates.HeartbeatEvent {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, timestamp)
	assert.NoError(t, err)
	return aggregates.HeartbeatEvent{
		Service:   service,
		Timestamp: parsed.UTC(),
	}
}

func TestDetectAlert(t *testing.T) {
	events := []aggregates.HeartbeatEvent{
		event(t, "email", "2025-08-04T10:00:00Z"),
		event(t, "email", "2025-08-04T10:05:00Z"),
	}

	alerts, err := monitor.Detect(events, 60*time.Second, 3)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "email", alerts[0].Service)
	assert.Equal(t, "2025-08-04T10:05:00Z", alerts[0].AlertAt.Format(time.RFC3339))
}

func TestDetectThresholdBoundary(t *testing.T) {
	// a 4 minutes gap is 3 missed 60-second intervals: alert
	events := []aggregates.HeartbeatEvent{
		event(t, "worker", "2025-08-04T10:00:00Z"),
		event(t, "worker", "2025-08-04T10:01:00Z"),
		event(t, "worker", "2025-08-04T10:05:00Z"),
	}
	alerts, err := monitor.Detect(events, 60*time.Second, 3)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "2025-08-04T10:05:00Z", alerts[0].AlertAt.Format(time.RFC3339))

	// a 3 minutes gap is only 2 missed intervals: no alert
	events = []aggregates.HeartbeatEvent{
		event(t, "worker", "2025-08-04T10:00:00Z"),
		event(t, "worker", "2025-08-04T10:01:00Z"),
		event(t, "worker", "2025-08-04T10:04:00Z"),
	}
	alerts, err = monitor.Detect(events, 60*time.Second, 3)
	assert.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestDetectAccumulatesConsecutiveMisses(t *testing.T) {
	// each 2 minutes gap is a single missed interval, three in a row
	// cross the threshold
	events := []aggregates.HeartbeatEvent{
		event(t, "billing", "2025-08-04T10:00:00Z"),
		event(t, "billing", "2025-08-04T10:02:00Z"),
		event(t, "billing", "2025-08-04T10:04:00Z"),
		event(t, "billing", "2025-08-04T10:06:00Z"),
	}

	alerts, err := monitor.Detect(events, 60*time.Second, 3)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "billing", alerts[0].Service)
	assert.Equal(t, "2025-08-04T10:06:00Z", alerts[0].AlertAt.Format(time.RFC3339))
}

func TestDetectRecoveryResetsCounter(t *testing.T) {
	events := []aggregates.HeartbeatEvent{
		event(t, "monitor", "2025-08-04T10:00:00Z"),
		event(t, "monitor", "2025-08-04T10:03:00Z"),
		event(t, "monitor", "2025-08-04T10:04:00Z"),
		event(t, "monitor", "2025-08-04T10:05:00Z"),
		event(t, "monitor", "2025-08-04T10:08:00Z"),
	}

	alerts, err := monitor.Detect(events, 60*time.Second, 3)
	assert.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestDetectUnorderedInput(t *testing.T) {
	events := []aggregates.HeartbeatEvent{
		event(t, "api", "2025-08-04T10:06:00Z"),
		event(t, "api", "2025-08-04T10:00:00Z"),
		event(t, "api", "2025-08-04T10:02:00Z"),
		event(t, "api", "2025-08-04T10:01:00Z"),
	}

	alerts, err := monitor.Detect(events, 60*time.Second, 3)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "api", alerts[0].Service)
	assert.Equal(t, "2025-08-04T10:06:00Z", alerts[0].AlertAt.Format(time.RFC3339))
}

func TestDetectMultipleServices(t *testing.T) {
	events := []aggregates.HeartbeatEvent{
		event(t, "email", "2025-08-04T10:00:00Z"),
		event(t, "sms", "2025-08-04T10:00:00Z"),
		event(t, "email", "2025-08-04T10:01:00Z"),
		event(t, "sms", "2025-08-04T10:01:00Z"),
		event(t, "email", "2025-08-04T10:05:00Z"),
		event(t, "sms", "2025-08-04T10:02:00Z"),
		event(t, "sms", "2025-08-04T10:03:00Z"),
	}

	alerts, err := monitor.Detect(events, 60*time.Second, 3)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "email", alerts[0].Service)
}

func TestDetectDuplicateTimestamps(t *testing.T) {
	// duplicate heartbeats represent zero elapsed time and must not
	// reset the running counter
	events := []aggregates.HeartbeatEvent{
		event(t, "cache", "2025-08-04T10:00:00Z"),
		event(t, "cache", "2025-08-04T10:02:00Z"),
		event(t, "cache", "2025-08-04T10:02:00Z"),
		event(t, "cache", "2025-08-04T10:04:00Z"),
		event(t, "cache", "2025-08-04T10:06:00Z"),
	}

	alerts, err := monitor.Detect(events, 60*time.Second, 3)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "2025-08-04T10:06:00Z", alerts[0].AlertAt.Format(time.RFC3339))
}

func TestDetectAtMostOneAlertPerService(t *testing.T) {
	events := []aggregates.HeartbeatEvent{
		event(t, "email", "2025-08-04T10:00:00Z"),
		event(t, "email", "2025-08-04T10:05:00Z"),
		event(t, "email", "2025-08-04T10:06:00Z"),
		event(t, "email", "2025-08-04T10:15:00Z"),
	}

	alerts, err := monitor.Detect(events, 60*time.Second, 3)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "2025-08-04T10:05:00Z", alerts[0].AlertAt.Format(time.RFC3339))
}

func TestDetectNotEnoughEvents(t *testing.T) {
	alerts, err := monitor.Detect([]aggregates.HeartbeatEvent{}, 60*time.Second, 3)
	assert.NoError(t, err)
	assert.Empty(t, alerts)

	alerts, err = monitor.Detect([]aggregates.HeartbeatEvent{event(t, "solo", "2025-08-04T10:00:00Z")}, 60*time.Second, 3)
	assert.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestDetectConfigurationErrors(t *testing.T) {
	events := []aggregates.HeartbeatEvent{
		event(t, "email", "2025-08-04T10:00:00Z"),
		event(t, "email", "2025-08-04T10:05:00Z"),
	}
	cases := []struct {
		name          string
		interval      time.Duration
		allowedMisses int
	}{
		{
			name:          "zero interval",
			interval:      0,
			allowedMisses: 3,
		},
		{
			name:          "negative interval",
			interval:      -60 * time.Second,
			allowedMisses: 3,
		},
		{
			name:          "zero allowed misses",
			interval:      60 * time.Second,
			allowedMisses: 0,
		},
		{
			name:          "negative allowed misses",
			interval:      60 * time.Second,
			allowedMisses: -1,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			alerts, err := monitor.Detect(events, c.interval, c.allowedMisses)
			assert.ErrorContains(t, err, "must be positive")
			assert.Nil(t, alerts)
		})
	}
}

func TestDetectIdempotence(t *testing.T) {
	events := []aggregates.HeartbeatEvent{
		event(t, "email", "2025-08-04T10:00:00Z"),
		event(t, "email", "2025-08-04T10:05:00Z"),
		event(t, "sms", "2025-08-04T10:00:00Z"),
		event(t, "sms", "2025-08-04T10:01:00Z"),
	}

	first, err := monitor.Detect(events, 60*time.Second, 3)
	assert.NoError(t, err)
	second, err := monitor.Detect(events, 60*time.Second, 3)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDetectOrderIndependence(t *testing.T) {
	events := []aggregates.HeartbeatEvent{
		event(t, "email", "2025-08-04T10:00:00Z"),
		event(t, "email", "2025-08-04T10:01:00Z"),
		event(t, "email", "2025-08-04T10:05:00Z"),
		event(t, "sms", "2025-08-04T10:00:00Z"),
		event(t, "sms", "2025-08-04T10:01:00Z"),
		event(t, "billing", "2025-08-04T10:00:00Z"),
		event(t, "billing", "2025-08-04T10:10:00Z"),
	}

	expected, err := monitor.Detect(events, 60*time.Second, 3)
	assert.NoError(t, err)
	assert.Len(t, expected, 2)

	for i := 0; i < 10; i++ {
		shuffled := make([]aggregates.HeartbeatEvent, len(events))
		copy(shuffled, events)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		alerts, err := monitor.Detect(shuffled, 60*time.Second, 3)
		assert.NoError(t, err)
		assert.ElementsMatch(t, expected, alerts)
	}
}
