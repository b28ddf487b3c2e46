package models

// SessionID identifies a session within an event weekend (e.g. "FP1", "SQ")
type SessionID string

// SessionType classifies a session for trust weighting
type SessionType string

// Session types
const (
	SessionPractice         SessionType = "practice"
	SessionSprintQualifying SessionType = "sprint_qualifying"
)

// Metric categories produced by the feature extractor
const (
	MetricSlowCorner   = "slow_corner"
	MetricMediumCorner = "medium_corner"
	MetricHighCorner   = "high_corner"
	MetricStraight     = "straight"
	MetricConsistency  = "consistency"
)

// MetricCategories lists the recognized metric categories in canonical order
var MetricCategories = []string{
	MetricSlowCorner,
	MetricMediumCorner,
	MetricHighCorner,
	MetricStraight,
	MetricConsistency,
}

// SessionMetrics holds the extractor's aggregate metrics for one competitor
// in one session. Values live on the pace scale: higher = faster.
type SessionMetrics struct {
	SessionID SessionID          `json:"session_id"`
	Type      SessionType        `json:"type"`
	Metrics   map[string]float64 `json:"metrics"`
	CleanLaps int                `json:"clean_laps"`
}

// SessionField maps every competitor that ran a session to their metrics
type SessionField map[CompetitorID]SessionMetrics

// EvidenceObservation is one scored performance observation on the pace
// scale, with the variance the scorer assumes for it. A nil observation
// means the competitor produced no usable evidence in the session.
type EvidenceObservation struct {
	CompetitorID CompetitorID `json:"competitor_id"`
	SessionID    SessionID    `json:"session_id"`
	Value        float64      `json:"value"`
	Variance     float64      `json:"variance"`
}
