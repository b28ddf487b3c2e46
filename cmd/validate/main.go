// Package main provides the entry point for the validation harness CLI.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridpace/internal/config"
	"github.com/yourusername/gridpace/internal/datasource"
	"github.com/yourusername/gridpace/internal/logger"
	"github.com/yourusername/gridpace/internal/models"
	"github.com/yourusername/gridpace/internal/validation"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		method     = flag.String("method", "", "Scoring method to evaluate (default: configured method)")
		baseline   = flag.String("baseline", "prior_only", "Baseline method for comparison")
		mode       = flag.String("mode", "all", "Validation mode: evaluate, compare, ablate, segment, all")
		output     = flag.String("output", "./output/validation_results.json", "Output path for results")
	)
	flag.Parse()

	cfg := loadConfig(*configPath)
	appLogger := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	ctx := context.Background()

	events := fetchEvents(ctx, cfg, appLogger)
	harness := validation.NewHarness(cfg.Validation, appLogger)

	candidate := methodOverride(cfg.Predictor, *method)
	base := methodOverride(cfg.Predictor, *baseline)

	appLogger.WithFields(logrus.Fields{
		"mode":   *mode,
		"method": candidate.ScoringMethod,
		"events": len(events),
	}).Info("Starting validation run")

	report := runMode(ctx, harness, events, candidate, base, *mode, appLogger)
	writeResults(report, *output, appLogger)
}

func loadConfig(path string) *config.Config {
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func fetchEvents(ctx context.Context, cfg *config.Config, appLogger *logrus.Logger) []models.Event {
	provider, err := datasource.New(cfg.Provider, appLogger)
	if err != nil {
		appLogger.Fatalf("Failed to initialize data provider: %v", err)
	}
	events, err := provider.Events(ctx)
	if err != nil {
		appLogger.Fatalf("Failed to fetch events: %v", err)
	}
	if len(events) == 0 {
		appLogger.Fatal("No events available for validation")
	}
	return events
}

func methodOverride(base config.PredictorConfig, method string) config.PredictorConfig {
	if method == "" {
		return base
	}
	base.ScoringMethod = method
	return base
}

// validationReport is the JSON document the CLI writes, holding whichever
// sections the selected mode produced
type validationReport struct {
	Evaluation *models.ValidationResult         `json:"evaluation,omitempty"`
	Segments   map[models.WeekendFormat]float64 `json:"segments,omitempty"`
	Comparison *validation.Comparison           `json:"comparison,omitempty"`
	Ablation   *validation.AblationReport       `json:"ablation,omitempty"`
}

func runMode(ctx context.Context, harness *validation.Harness, events []models.Event, candidate, baseline config.PredictorConfig, mode string, appLogger *logrus.Logger) validationReport {
	var report validationReport
	switch mode {
	case "evaluate":
		report.Evaluation = runEvaluation(ctx, harness, events, candidate, appLogger)
	case "segment":
		report.Evaluation = runEvaluation(ctx, harness, events, candidate, appLogger)
		report.Segments = report.Evaluation.SegmentMAE()
	case "compare":
		report.Comparison = runComparison(ctx, harness, events, baseline, candidate, appLogger)
	case "ablate":
		report.Ablation = runAblation(ctx, harness, events, candidate, appLogger)
	case "all":
		report.Evaluation = runEvaluation(ctx, harness, events, candidate, appLogger)
		report.Segments = report.Evaluation.SegmentMAE()
		report.Comparison = runComparison(ctx, harness, events, baseline, candidate, appLogger)
		report.Ablation = runAblation(ctx, harness, events, candidate, appLogger)
	default:
		appLogger.Fatalf("Unsupported mode: %s", mode)
	}
	return report
}

func runEvaluation(ctx context.Context, harness *validation.Harness, events []models.Event, method config.PredictorConfig, appLogger *logrus.Logger) *models.ValidationResult {
	result, err := harness.EvaluateSeason(ctx, events, method)
	if err != nil {
		appLogger.Fatalf("Season evaluation failed: %v", err)
	}
	appLogger.WithFields(logrus.Fields{
		"run_id":        result.ID,
		"method":        result.Method,
		"events_scored": len(result.Events),
		"failures":      len(result.Failures),
		"aggregate_mae": result.AggregateMAE,
	}).Info("Season evaluation completed")
	return &result
}

func runComparison(ctx context.Context, harness *validation.Harness, events []models.Event, baseline, candidate config.PredictorConfig, appLogger *logrus.Logger) *validation.Comparison {
	comparison, err := harness.Compare(ctx, events, baseline, candidate)
	if err != nil {
		appLogger.Fatalf("Method comparison failed: %v", err)
	}
	appLogger.WithFields(logrus.Fields{
		"baseline":    comparison.Baseline.Method,
		"candidate":   comparison.Candidate.Method,
		"mean_diff":   comparison.Test.MeanDiff,
		"p_value":     comparison.Test.PValue,
		"effect_size": comparison.Test.EffectSize,
	}).Info("Method comparison completed")
	return comparison
}

func runAblation(ctx context.Context, harness *validation.Harness, events []models.Event, method config.PredictorConfig, appLogger *logrus.Logger) *validation.AblationReport {
	report, err := harness.Ablate(ctx, events, method)
	if err != nil {
		appLogger.Fatalf("Ablation failed: %v", err)
	}
	for _, ablation := range report.Categories {
		appLogger.WithFields(logrus.Fields{
			"category": ablation.Category,
			"mae":      ablation.MAE,
			"delta":    ablation.Delta,
		}).Info("Category ablation completed")
	}
	return report
}

func writeResults(report validationReport, output string, appLogger *logrus.Logger) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		appLogger.Fatalf("Failed to marshal results: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		appLogger.Fatalf("Failed to create output directory: %v", err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		appLogger.Fatalf("Failed to write results: %v", err)
	}
	fmt.Printf("Validation results written to %s\n", output)
}
