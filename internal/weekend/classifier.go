// Package weekend classifies an event's session set into a weekend format
// and the ordered, trust-weighted update sequence the belief chain consumes.
package weekend

import (
	"strings"

	"github.com/yourusername/gridpace/internal/models"
)

// Canonical session identifiers
const (
	SessionFP1 models.SessionID = "FP1"
	SessionFP2 models.SessionID = "FP2"
	SessionFP3 models.SessionID = "FP3"
	SessionSQ  models.SessionID = "SQ"
)

// Expected chronological sequences per format. Sessions missing from an
// event are dropped from the plan, never an error.
var (
	standardSequence = []models.SessionID{SessionFP1, SessionFP2, SessionFP3}
	sprintSequence   = []models.SessionID{SessionFP1, SessionSQ}
)

var sessionAliases = map[string]models.SessionID{
	"fp1":               SessionFP1,
	"practice 1":        SessionFP1,
	"fp2":               SessionFP2,
	"practice 2":        SessionFP2,
	"fp3":               SessionFP3,
	"practice 3":        SessionFP3,
	"sq":                SessionSQ,
	"sprint qualifying": SessionSQ,
	"sprint shootout":   SessionSQ,
}

// Config carries the tuning the classifier needs at call time. Never a
// package-level mutable default: the regulation scale changes per fit.
type Config struct {
	TrustWeights    map[string]float64
	RegulationScale float64
}

// Step is one session in the update sequence with its effective trust
type Step struct {
	SessionID models.SessionID
	Type      models.SessionType
	Trust     float64
}

// Plan is the ordered update sequence for one event weekend
type Plan struct {
	Format models.WeekendFormat
	Steps  []Step
}

// Classify inspects the available sessions and produces the plan. The
// presence of a sprint qualifying session makes the weekend a sprint
// weekend; it carries a substantially higher trust weight because points
// are on the line and sandbagging stops paying.
func Classify(sessions []models.SessionID, cfg Config) Plan {
	available := map[models.SessionID]bool{}
	for _, id := range sessions {
		available[Normalize(id)] = true
	}

	format := models.FormatStandard
	sequence := standardSequence
	if available[SessionSQ] {
		format = models.FormatSprint
		sequence = sprintSequence
	}

	plan := Plan{Format: format}
	for _, id := range sequence {
		if !available[id] {
			continue
		}
		sessionType := TypeOf(id)
		plan.Steps = append(plan.Steps, Step{
			SessionID: id,
			Type:      sessionType,
			Trust:     effectiveTrust(cfg, sessionType),
		})
	}
	return plan
}

// Normalize maps provider session labels onto canonical identifiers
func Normalize(id models.SessionID) models.SessionID {
	if canonical, ok := sessionAliases[strings.ToLower(string(id))]; ok {
		return canonical
	}
	return id
}

// TypeOf classifies a canonical session identifier
func TypeOf(id models.SessionID) models.SessionType {
	if id == SessionSQ {
		return models.SessionSprintQualifying
	}
	return models.SessionPractice
}

// effectiveTrust applies the regulation-state scaling and clamps the
// result to the trust weight's valid interval
func effectiveTrust(cfg Config, sessionType models.SessionType) float64 {
	trust := cfg.TrustWeights[string(sessionType)]
	scale := cfg.RegulationScale
	if scale <= 0 {
		scale = 1.0
	}
	trust *= scale
	if trust < 0 {
		return 0
	}
	if trust > 1 {
		return 1
	}
	return trust
}
