package monitor

import (
	"context"
	"log/slog"

	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor/aggregates"
	"github.com/prometheus/client_golang/prometheus"
)

// Configuration holds the default detection parameters, used when an
// analysis request does not override them.
type Configuration struct {
	ExpectedIntervalSeconds uint `yaml:"expected-interval-seconds"`
	AllowedMisses           uint `yaml:"allowed-misses"`
}

const (
	DefaultExpectedIntervalSeconds = 60
	DefaultAllowedMisses           = 3
)

type Store interface {
	CreateAnalysisRun(ctx context.Context, run *aggregates.AnalysisRun) error
	ListAnalysisRuns(ctx context.Context) ([]*aggregates.AnalysisRun, error)
	CreateAlert(ctx context.Context, alert *aggregates.Alert) error
	GetAlert(ctx context.Context, id string) (*aggregates.Alert, error)
	ListAlerts(ctx context.Context) ([]*aggregates.Alert, error)
	DeleteAlert(ctx context.Context, id string) error
	CountAlerts(ctx context.Context) (int, error)
}

type Service struct {
	logger          *slog.Logger
	store           Store
	rejectedCounter prometheus.Counter
	alertCounter    prometheus.Counter
}

func New(logger *slog.Logger, store Store, registry *prometheus.Registry) (*Service, error) {
	rejectedCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "heartbeat_records_rejected_total",
			Help: "Count the number of malformed heartbeat records skipped during analysis.",
		})
	if err := registry.Register(rejectedCounter); err != nil {
		return nil, err
	}
	alertCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "heartbeat_alerts_triggered_total",
			Help: "Count the number of missed-heartbeat alerts triggered by analyses.",
		})
	if err := registry.Register(alertCounter); err != nil {
		return nil, err
	}
	return &Service{
		logger:          logger,
		store:           store,
		rejectedCounter: rejectedCounter,
		alertCounter:    alertCounter,
	}, nil
}
