package monitor

import (
	"strings"
	"time"

	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor/aggregates"
)

// Accepted timestamp formats. Layouts without an offset are treated as UTC,
// not local time.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

// Normalize validates a raw record and converts it into a heartbeat event.
// The second return value is false if the record is malformed: missing or
// empty service, missing timestamp, or a timestamp that does not parse.
// Unknown fields on the record are ignored.
func Normalize(record aggregates.RawRecord) (aggregates.HeartbeatEvent, bool) {
	service, ok := record["service"].(string)
	if !ok || strings.TrimSpace(service) == "" {
		return aggregates.HeartbeatEvent{}, false
	}
	value, ok := record["timestamp"].(string)
	if !ok {
		return aggregates.HeartbeatEvent{}, false
	}
	timestamp, ok := parseTimestamp(value)
	if !ok {
		return aggregates.HeartbeatEvent{}, false
	}
	return aggregates.HeartbeatEvent{
		Service:   service,
		Timestamp: timestamp,
	}, true
}

// NormalizeAll filters a batch of raw records, returning the valid events and
// the number of rejected records. A malformed record never aborts the batch.
func NormalizeAll(records []aggregates.RawRecord) ([]aggregates.HeartbeatEvent, int) {
	events := []aggregates.HeartbeatEvent{}
	rejected := 0
	for _, record := range records {
		event, ok := Normalize(record)
		if !ok {
			rejected++
			continue
		}
		events = append(events, event)
	}
	return events, rejected
}
