package config

import (
	"github.com/MaheshSuthar119/HeartBeat-Notification/internal/database"
	"github.com/MaheshSuthar119/HeartBeat-Notification/internal/http"
	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor"
)

type Configuration struct {
	HTTP     http.Configuration
	Database database.Configuration
	Monitor  monitor.Configuration
}
