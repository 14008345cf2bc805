package cmd

import (
	"github.com/spf13/cobra"
)

var configFile string

func Run() error {
	rootCmd := &cobra.Command{
		Use:   "heartbeat-notification",
		Short: "Detects services which missed too many consecutive heartbeats",
	}
	var logLevel string
	var logFormat string
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "info", "Logger log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Logger logs format (text, json)")

	logger := buildLogger(logLevel, logFormat)
	analyzeCmd := buildAnalyzeCmd(logger)
	rootCmd.AddCommand(analyzeCmd)
	serverCmd := buildServerCmd(logger)
	serverCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to the YAML configuration file")
	err := serverCmd.MarkFlagRequired("config")
	if err != nil {
		return err
	}
	rootCmd.AddCommand(serverCmd)
	return rootCmd.Execute()
}
