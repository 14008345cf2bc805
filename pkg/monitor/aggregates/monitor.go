package aggregates

import "time"

// RawRecord is a heartbeat event as received, before any validation.
type RawRecord map[string]any

// HeartbeatEvent is a validated heartbeat. Timestamps are normalized to UTC.
type HeartbeatEvent struct {
	Service   string
	Timestamp time.Time
}

type Alert struct {
	ID        string
	Service   string
	AlertAt   time.Time `db:"alert_at"`
	CreatedAt time.Time `db:"created_at"`
}

type AnalysisRun struct {
	ID              string
	ReceivedRecords int       `db:"received_records"`
	RejectedRecords int       `db:"rejected_records"`
	AlertCount      int       `db:"alert_count"`
	CreatedAt       time.Time `db:"created_at"`
}

// Report is the outcome of one analysis pass.
type Report struct {
	Run    *AnalysisRun
	Alerts []*Alert
}
