package handlers

import (
	"net/http"

	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/client"
	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor/aggregates"
	"github.com/labstack/echo/v4"
)

func toAlert(alert aggregates.Alert) client.Alert {
	result := client.Alert{
		ID:      alert.ID,
		Service: alert.Service,
		AlertAt: alert.AlertAt,
	}
	if !alert.CreatedAt.IsZero() {
		createdAt := alert.CreatedAt
		result.CreatedAt = &createdAt
	}
	return result
}

func toAlerts(alerts []*aggregates.Alert) []client.Alert {
	result := []client.Alert{}
	for i := range alerts {
		result = append(result, toAlert(*alerts[i]))
	}
	return result
}

func (b *Builder) GetAlert(ec echo.Context) error {
	var payload client.GetAlertInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}

	alert, err := b.monitor.GetAlert(ec.Request().Context(), payload.ID)
	if err != nil {
		return err
	}
	result := toAlert(*alert)
	return ec.JSON(http.StatusOK, &result)
}

func (b *Builder) ListAlerts(ec echo.Context) error {
	alerts, err := b.monitor.ListAlerts(ec.Request().Context())
	if err != nil {
		return err
	}
	result := client.ListAlertsOutput{
		Result: toAlerts(alerts),
	}
	return ec.JSON(http.StatusOK, &result)
}

func (b *Builder) DeleteAlert(ec echo.Context) error {
	var payload client.DeleteAlertInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}

	err := b.monitor.DeleteAlert(ec.Request().Context(), payload.ID)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, NewResponse("Alert deleted"))
}
