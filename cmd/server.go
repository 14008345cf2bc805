package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MaheshSuthar119/HeartBeat-Notification/config"
	"github.com/MaheshSuthar119/HeartBeat-Notification/internal/database"
	"github.com/MaheshSuthar119/HeartBeat-Notification/internal/http"
	"github.com/MaheshSuthar119/HeartBeat-Notification/internal/http/handlers"
	"github.com/MaheshSuthar119/HeartBeat-Notification/internal/traces"
	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func buildServerCmd(logger *slog.Logger) *cobra.Command {
	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Runs the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			err := runServer(logger)
			if err != nil {
				logger.Error(err.Error())
				os.Exit(2)
			}

		},
	}
	return serverCmd
}

func runServer(logger *slog.Logger) error {
	file, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("fail to read configuration file: %w", err)
	}
	var config config.Configuration
	if err := yaml.Unmarshal(file, &config); err != nil {
		return fmt.Errorf("fail to parse yaml configuration file: %w", err)
	}
	if config.Monitor.ExpectedIntervalSeconds == 0 {
		config.Monitor.ExpectedIntervalSeconds = monitor.DefaultExpectedIntervalSeconds
	}
	if config.Monitor.AllowedMisses == 0 {
		config.Monitor.AllowedMisses = monitor.DefaultAllowedMisses
	}
	shutdownTraces, err := traces.Setup(context.Background())
	if err != nil {
		return err
	}
	store, err := database.New(logger, config.Database)
	if err != nil {
		return err
	}
	monitorService, err := monitor.New(logger, store, prometheus.DefaultRegisterer.(*prometheus.Registry))
	if err != nil {
		return err
	}
	handlersBuilder := handlers.NewBuilder(monitorService, config.Monitor)
	server, err := http.NewServer(logger, config.HTTP, prometheus.DefaultRegisterer.(*prometheus.Registry), handlersBuilder)
	if err != nil {
		return err
	}
	signals := make(chan os.Signal, 1)
	errChan := make(chan error)

	signal.Notify(
		signals,
		syscall.SIGINT,
		syscall.SIGTERM)

	server.Start()
	go func() {
		for sig := range signals {
			switch sig {
			case syscall.SIGINT, syscall.SIGTERM:
				logger.Info(fmt.Sprintf("received signal %s, starting shutdown", sig))
				signal.Stop(signals)
				err := server.Stop()
				if err != nil {
					errChan <- err
				}
				errChan <- shutdownTraces(context.Background())
			}

		}
	}()
	exitErr := <-errChan
	return exitErr
}
