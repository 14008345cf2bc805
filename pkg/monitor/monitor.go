package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/MaheshSuthar119/HeartBeat-Notification/internal/util"
	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor/aggregates"
)

func InitAlert(alert *aggregates.Alert) {
	alert.ID = util.NewUUID()
	alert.CreatedAt = time.Now().UTC()
}

func InitAnalysisRun(run *aggregates.AnalysisRun) {
	run.ID = util.NewUUID()
	run.CreatedAt = time.Now().UTC()
}

// Analyze runs one full detection pass over a batch of raw records:
// malformed records are dropped, the remaining events are scanned for missed
// heartbeats, and the run summary and triggered alerts are persisted.
func (s *Service) Analyze(ctx context.Context, records []aggregates.RawRecord, expectedInterval time.Duration, allowedMisses int) (*aggregates.Report, error) {
	s.logger.Info(fmt.Sprintf("analyzing %d heartbeat records", len(records)))
	events, rejected := NormalizeAll(records)
	if rejected > 0 {
		s.logger.Warn(fmt.Sprintf("skipped %d malformed heartbeat records", rejected))
		s.rejectedCounter.Add(float64(rejected))
	}
	alerts, err := Detect(events, expectedInterval, allowedMisses)
	if err != nil {
		return nil, err
	}
	s.alertCounter.Add(float64(len(alerts)))
	run := &aggregates.AnalysisRun{
		ReceivedRecords: len(records),
		RejectedRecords: rejected,
		AlertCount:      len(alerts),
	}
	InitAnalysisRun(run)
	if err := s.store.CreateAnalysisRun(ctx, run); err != nil {
		return nil, err
	}
	for _, alert := range alerts {
		InitAlert(alert)
		s.logger.Info(fmt.Sprintf("service %s missed too many heartbeats, alerting at %s", alert.Service, alert.AlertAt.Format(time.RFC3339)))
		if err := s.store.CreateAlert(ctx, alert); err != nil {
			return nil, err
		}
	}
	return &aggregates.Report{
		Run:    run,
		Alerts: alerts,
	}, nil
}

func (s *Service) ListAnalysisRuns(ctx context.Context) ([]*aggregates.AnalysisRun, error) {
	return s.store.ListAnalysisRuns(ctx)
}

func (s *Service) GetAlert(ctx context.Context, id string) (*aggregates.Alert, error) {
	return s.store.GetAlert(ctx, id)
}

func (s *Service) ListAlerts(ctx context.Context) ([]*aggregates.Alert, error) {
	return s.store.ListAlerts(ctx)
}

func (s *Service) DeleteAlert(ctx context.Context, id string) error {
	s.logger.Info(fmt.Sprintf("deleting alert %s", id))
	return s.store.DeleteAlert(ctx, id)
}

func (s *Service) CountAlerts(ctx context.Context) (int, error) {
	return s.store.CountAlerts(ctx)
}
