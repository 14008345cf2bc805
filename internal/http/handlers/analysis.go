package handlers

import (
	"net/http"
	"time"

	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/client"
	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor/aggregates"
	"github.com/labstack/echo/v4"
)

func toAnalysisRun(run aggregates.AnalysisRun) client.AnalysisRun {
	return client.AnalysisRun{
		ID:              run.ID,
		ReceivedRecords: run.ReceivedRecords,
		RejectedRecords: run.RejectedRecords,
		AlertCount:      run.AlertCount,
		CreatedAt:       run.CreatedAt,
	}
}

func (b *Builder) CreateAnalysis(ec echo.Context) error {
	var payload client.CreateAnalysisInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}

	intervalSeconds := payload.ExpectedIntervalSeconds
	if intervalSeconds == 0 {
		intervalSeconds = b.defaults.ExpectedIntervalSeconds
	}
	allowedMisses := payload.AllowedMisses
	if allowedMisses == 0 {
		allowedMisses = b.defaults.AllowedMisses
	}

	records := make([]aggregates.RawRecord, 0, len(payload.Events))
	for _, event := range payload.Events {
		records = append(records, aggregates.RawRecord(event))
	}

	report, err := b.monitor.Analyze(ec.Request().Context(), records, time.Duration(intervalSeconds)*time.Second, int(allowedMisses))
	if err != nil {
		return err
	}
	result := client.AnalysisReport{
		Run:    toAnalysisRun(*report.Run),
		Alerts: toAlerts(report.Alerts),
	}
	return ec.JSON(http.StatusCreated, &result)
}

func (b *Builder) ListAnalysisRuns(ec echo.Context) error {
	runs, err := b.monitor.ListAnalysisRuns(ec.Request().Context())
	if err != nil {
		return err
	}
	result := client.ListAnalysisRunsOutput{
		Result: []client.AnalysisRun{},
	}
	for i := range runs {
		result.Result = append(result.Result, toAnalysisRun(*runs[i]))
	}
	return ec.JSON(http.StatusOK, &result)
}
