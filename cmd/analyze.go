package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/client"
	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor"
	"github.com/MaheshSuthar119/HeartBeat-Notification/pkg/monitor/aggregates"
	"github.com/spf13/cobra"
)

func buildAnalyzeCmd(logger *slog.Logger) *cobra.Command {
	var filePath string
	var intervalSeconds uint
	var allowedMisses uint
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyzes a heartbeat events JSON file and prints the triggered alerts",
		Run: func(cmd *cobra.Command, args []string) {
			err := runAnalyze(logger, filePath, intervalSeconds, allowedMisses)
			if err != nil {
				logger.Error(err.Error())
				os.Exit(2)
			}
		},
	}
	analyzeCmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the JSON file containing heartbeat events")
	err := analyzeCmd.MarkFlagRequired("file")
	if err != nil {
		logger.Error(err.Error())
		os.Exit(2)
	}
	analyzeCmd.Flags().UintVar(&intervalSeconds, "expected-interval-seconds", monitor.DefaultExpectedIntervalSeconds, "Expected interval between two heartbeats, in seconds")
	analyzeCmd.Flags().UintVar(&allowedMisses, "allowed-misses", monitor.DefaultAllowedMisses, "Number of consecutive missed heartbeats tolerated before alerting")
	return analyzeCmd
}

// loadRecords reads a JSON file containing either an array of heartbeat
// records or a single record. Array entries which are not JSON objects are
// kept as nil records so the normalizer counts them as rejected instead of
// failing the whole file.
func loadRecords(path string) ([]aggregates.RawRecord, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fail to read events file: %w", err)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(file, &items); err != nil {
		var single aggregates.RawRecord
		if err := json.Unmarshal(file, &single); err != nil {
			return nil, fmt.Errorf("fail to parse events file %s: %w", path, err)
		}
		return []aggregates.RawRecord{single}, nil
	}
	records := make([]aggregates.RawRecord, 0, len(items))
	for _, item := range items {
		var record aggregates.RawRecord
		if err := json.Unmarshal(item, &record); err != nil {
			records = append(records, nil)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func runAnalyze(logger *slog.Logger, path string, intervalSeconds uint, allowedMisses uint) error {
	records, err := loadRecords(path)
	if err != nil {
		return err
	}
	events, rejected := monitor.NormalizeAll(records)
	logger.Info(fmt.Sprintf("loaded %d valid events from %s (%d malformed records skipped)", len(events), path, rejected))
	alerts, err := monitor.Detect(events, time.Duration(intervalSeconds)*time.Second, int(allowedMisses))
	if err != nil {
		return err
	}
	result := []client.Alert{}
	for _, alert := range alerts {
		result = append(result, client.Alert{
			Service: alert.Service,
			AlertAt: alert.AlertAt,
		})
	}
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("fail to serialize alerts: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
