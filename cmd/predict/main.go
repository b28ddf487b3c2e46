// Package main provides the per-event prediction CLI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/gridpace/internal/config"
	"github.com/yourusername/gridpace/internal/datasource"
	"github.com/yourusername/gridpace/internal/logger"
	"github.com/yourusername/gridpace/internal/pipeline"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	eventID    string
	method     string
	outputPath string

	appLogger *logrus.Logger
	cfg       *config.Config
	provider  datasource.Provider
	runner    *pipeline.Runner
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVarP(&eventID, "event", "e", "", "Predict a single event by ID (default: whole season)")
	rootCmd.Flags().StringVarP(&method, "method", "m", "", "Override the configured scoring method")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write predictions as JSON to this path (default: stdout)")
}

var rootCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict qualifying pace rankings from practice evidence",
	Long:  `Fuses standings-derived priors with free-practice telemetry evidence and emits a predicted qualifying ranking per event weekend.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPredictions()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if method != "" {
		cfg.Predictor.ScoringMethod = method
	}
	return config.Validate(cfg)
}

func setupDependencies() error {
	appLogger = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)

	var err error
	provider, err = datasource.New(cfg.Provider, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize data provider: %w", err)
	}

	runner, err = pipeline.NewRunner(cfg.Predictor, appLogger)
	if err != nil {
		return fmt.Errorf("failed to build prediction pipeline: %w", err)
	}
	return nil
}

func runPredictions() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	predictions, err := collectPredictions(ctx)
	if err != nil {
		return err
	}

	appLogger.WithFields(logrus.Fields{
		"method": runner.Method(),
		"events": len(predictions),
	}).Info("Prediction run completed")

	return writeOutput(predictions)
}

func collectPredictions(ctx context.Context) ([]*pipeline.Prediction, error) {
	if eventID != "" {
		event, err := provider.Event(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch event %s: %w", eventID, err)
		}
		prediction, err := runner.PredictEvent(ctx, *event)
		if err != nil {
			return nil, err
		}
		return []*pipeline.Prediction{prediction}, nil
	}

	events, err := provider.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	predictions := make([]*pipeline.Prediction, 0, len(events))
	for _, event := range events {
		prediction, err := runner.PredictEvent(ctx, event)
		if err != nil {
			appLogger.WithFields(logrus.Fields{
				"event_id": event.ID,
				"error":    err.Error(),
			}).Warn("Skipping unpredictable event")
			continue
		}
		predictions = append(predictions, prediction)
	}
	return predictions, nil
}

func writeOutput(predictions []*pipeline.Prediction) error {
	data, err := json.MarshalIndent(predictions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal predictions: %w", err)
	}

	if outputPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	appLogger.WithField("path", outputPath).Info("Predictions written")
	return nil
}
