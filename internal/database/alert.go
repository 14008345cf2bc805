package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor/aggregates"
	er "github.com/mcorbin/corbierror"
)

type alert struct {
	ID        string
	Service   string
	AlertAt   time.Time `db:"alert_at"`
	CreatedAt time.Time `db:"created_at"`
}

func toAlert(alert *alert) *aggregates.Alert {
	return &aggregates.Alert{
		ID:        alert.ID,
		Service:   alert.Service,
		AlertAt:   alert.AlertAt.UTC(),
		CreatedAt: alert.CreatedAt.UTC(),
	}
}

func (c *Database) CreateAlert(ctx context.Context, a *aggregates.Alert) error {
	dbAlert := alert{
		ID:        a.ID,
		Service:   a.Service,
		AlertAt:   a.AlertAt,
		CreatedAt: a.CreatedAt,
	}
	result, err := c.db.NamedExecContext(ctx, "INSERT INTO alert (id, service, alert_at, created_at) VALUES (:id, :service, :alert_at, :created_at)", dbAlert)
	if err != nil {
		return fmt.Errorf("fail to create alert for service %s: %w", a.Service, err)
	}
	return checkResult(result, 1)
}

func (c *Database) GetAlert(ctx context.Context, id string) (*aggregates.Alert, error) {
	alert := alert{}
	err := c.db.GetContext(ctx, &alert, "SELECT alert.id, alert.service, alert.alert_at, alert.created_at FROM alert WHERE id=$1", id)
	if err != nil {
		if err != sql.ErrNoRows {
			return nil, fmt.Errorf("fail to get alert %s: %w", id, err)
		}
		return nil, er.New("alert not found", er.NotFound, true)
	}
	return toAlert(&alert), nil
}

func (c *Database) ListAlerts(ctx context.Context) ([]*aggregates.Alert, error) {
	alerts := []alert{}
	err := c.db.SelectContext(ctx, &alerts, "SELECT alert.id, alert.service, alert.alert_at, alert.created_at FROM alert ORDER BY alert_at")
	if err != nil {
		return nil, fmt.Errorf("fail to list alerts: %w", err)
	}
	result := []*aggregates.Alert{}
	for i := range alerts {
		alert := alerts[i]
		result = append(result, toAlert(&alert))
	}
	return result, nil
}

func (c *Database) DeleteAlert(ctx context.Context, id string) error {
	_, err := c.GetAlert(ctx, id)
	if err != nil {
		return err
	}
	result, err := c.db.ExecContext(ctx, "DELETE FROM alert WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("fail to delete alert: %w", err)
	}
	return checkResult(result, 1)
}

func (c *Database) CountAlerts(ctx context.Context) (int, error) {
	var count int
	err := c.db.GetContext(ctx, &count, "SELECT count(*) FROM alert")
	if err != nil {
		return 0, fmt.Errorf("fail to count alerts: %w", err)
	}
	return count, nil
}

func (c *Database) CreateAnalysisRun(ctx context.Context, run *aggregates.AnalysisRun) error {
	result, err := c.db.NamedExecContext(ctx, "INSERT INTO analysis_run (id, received_records, rejected_records, alert_count, created_at) VALUES (:id, :received_records, :rejected_records, :alert_count, :created_at)", run)
	if err != nil {
		return fmt.Errorf("fail to create analysis run: %w", err)
	}
	return checkResult(result, 1)
}

func (c *Database) ListAnalysisRuns(ctx context.Context) ([]*aggregates.AnalysisRun, error) {
	runs := []aggregates.AnalysisRun{}
	err := c.db.SelectContext(ctx, &runs, "SELECT analysis_run.id, analysis_run.received_records, analysis_run.rejected_records, analysis_run.alert_count, analysis_run.created_at FROM analysis_run ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("fail to list analysis runs: %w", err)
	}
	result := []*aggregates.AnalysisRun{}
	for i := range runs {
		run := runs[i]
		run.CreatedAt = run.CreatedAt.UTC()
		result = append(result, &run)
	}
	return result, nil
}
