// Package logger provides run-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// RunLogger provides dedicated logging for prediction and validation runs.
type RunLogger struct {
	*logrus.Entry
}

// NewRunLogger creates a new run logger.
func NewRunLogger(baseLogger *logrus.Logger) *RunLogger {
	return &RunLogger{
		Entry: baseLogger.WithField("component", "run"),
	}
}

// LogEventPrediction logs a completed per-event prediction.
func (rl *RunLogger) LogEventPrediction(eventID, method, format string, competitors, sessionsUsed int, durationMs float64) {
	rl.WithFields(logrus.Fields{
		"event_id":      eventID,
		"method":        method,
		"format":        format,
		"competitors":   competitors,
		"sessions_used": sessionsUsed,
		"duration_ms":   durationMs,
	}).Info("Event prediction completed")
}

// LogEventEvaluation logs one evaluated event in a validation run.
func (rl *RunLogger) LogEventEvaluation(runID, eventID, method string, trainEvents int, mae, fittedScale float64) {
	rl.WithFields(logrus.Fields{
		"run_id":       runID,
		"event_id":     eventID,
		"method":       method,
		"train_events": trainEvents,
		"mae":          mae,
		"fitted_scale": fittedScale,
	}).Info("Event evaluation completed")
}

// LogEventSkipped logs an event excluded from evaluation.
func (rl *RunLogger) LogEventSkipped(runID, eventID, reason string) {
	rl.WithFields(logrus.Fields{
		"run_id":   runID,
		"event_id": eventID,
		"reason":   reason,
	}).Warn("Event excluded from evaluation")
}

// LogDegenerateVariance logs a variance clamped to the floor.
func (rl *RunLogger) LogDegenerateVariance(competitorID, sessionID string, computed, floor float64) {
	rl.WithFields(logrus.Fields{
		"competitor_id": competitorID,
		"session_id":    sessionID,
		"computed":      computed,
		"floor":         floor,
	}).Warn("Degenerate variance clamped to floor")
}
