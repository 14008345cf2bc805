package client

import "time"

type Response struct {
	Messages []string `json:"messages"`
}

type Alert struct {
	ID        string     `json:"id,omitempty"`
	Service   string     `json:"service"`
	AlertAt   time.Time  `json:"alert_at"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type AnalysisRun struct {
	ID              string    `json:"id"`
	ReceivedRecords int       `json:"received_records"`
	RejectedRecords int       `json:"rejected_records"`
	AlertCount      int       `json:"alert_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateAnalysisInput struct {
	Events                  []map[string]any `json:"events"`
	ExpectedIntervalSeconds uint             `json:"expected_interval_seconds"`
	AllowedMisses           uint             `json:"allowed_misses"`
}

type AnalysisReport struct {
	Run    AnalysisRun `json:"run"`
	Alerts []Alert     `json:"alerts"`
}

type GetAlertInput struct {
	ID string `param:"id" validate:"required,uuid"`
}

type DeleteAlertInput struct {
	ID string `param:"id" validate:"required,uuid"`
}

type ListAlertsOutput struct {
	Result []Alert `json:"result"`
}

type ListAnalysisRunsOutput struct {
	Result []AnalysisRun `json:"result"`
}
