package handlers

import (
	"context"
	"time"

	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor"
	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor/aggregates"
)

type MonitorService interface {
	Analyze(ctx context.Context, records []aggregates.RawRecord, expectedInterval time.Duration, allowedMisses int) (*aggregates.Report, error)
	ListAnalysisRuns(ctx context.Context) ([]*aggregates.AnalysisRun, error)
	GetAlert(ctx context.Context, id string) (*aggregates.Alert, error)
	ListAlerts(ctx context.Context) ([]*aggregates.Alert, error)
	DeleteAlert(ctx context.Context, id string) error
	CountAlerts(ctx context.Context) (int, error)
}

type Builder struct {
	monitor  MonitorService
	defaults monitor.Configuration
}

func NewBuilder(monitorService MonitorService, defaults monitor.Configuration) *Builder {
	return &Builder{
		monitor:  monitorService,
		defaults: defaults,
	}
}
