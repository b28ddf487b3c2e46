package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	log := NewLogger("nonsense", "development")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewLoggerProductionUsesJSON(t *testing.T) {
	log := NewLogger("info", "production")
	_, ok := log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestRunLoggerEventEvaluation(t *testing.T) {
	log, buf := setupTestLogger()
	runLogger := NewRunLogger(log)

	runLogger.LogEventEvaluation("run_001", "2026_rd05", "zscore_normalized", 4, 2.15, 1.5)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "2026_rd05", logEntry["event_id"])
	assert.Equal(t, "run", logEntry["component"])
	assert.Equal(t, 2.15, logEntry["mae"])
}

func TestRunLoggerDegenerateVariance(t *testing.T) {
	log, buf := setupTestLogger()
	runLogger := NewRunLogger(log)

	runLogger.LogDegenerateVariance("44", "FP2", -0.001, 0.0001)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "warning", logEntry["level"])
	assert.Equal(t, "44", logEntry["competitor_id"])
}
