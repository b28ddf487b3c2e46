// Package pipeline wires priors, scoring, weekend classification and the
// belief chain into a per-event prediction.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridpace/internal/belief"
	"github.com/yourusername/gridpace/internal/config"
	"github.com/yourusername/gridpace/internal/models"
	"github.com/yourusername/gridpace/internal/prior"
	"github.com/yourusername/gridpace/internal/scoring"
	"github.com/yourusername/gridpace/internal/weekend"
)

// Runner orchestrates the prediction pipeline for single events
type Runner struct {
	cfg             config.PredictorConfig
	scorer          scoring.Method
	regulationScale float64
	logger          *logrus.Logger
}

// Prediction is the end-of-weekend output for one event
type Prediction struct {
	EventID string                                 `json:"event_id"`
	Method  string                                 `json:"method"`
	Format  models.WeekendFormat                   `json:"format"`
	Ranking []models.CompetitorID                  `json:"ranking"`
	Beliefs map[models.CompetitorID]models.Belief  `json:"beliefs"`
}

// NewRunner creates a new pipeline runner
func NewRunner(cfg config.PredictorConfig, logger *logrus.Logger) (*Runner, error) {
	if logger == nil {
		logger = logrus.New()
	}
	scorer, err := scoring.New(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.VarianceFloor <= 0 {
		return nil, fmt.Errorf("variance floor must be positive")
	}

	return &Runner{
		cfg:             cfg,
		scorer:          scorer,
		regulationScale: cfg.RegulationScaleFor(),
		logger:          logger,
	}, nil
}

// Method returns the active scoring method name
func (r *Runner) Method() string {
	return r.scorer.Name()
}

// Scale returns the active regulation trust scale
func (r *Runner) Scale() float64 {
	return r.regulationScale
}

// WithScale returns a copy of the runner using an explicit regulation
// scale, used by the harness when fitting the scale on earlier events
func (r *Runner) WithScale(scale float64) *Runner {
	clone := *r
	clone.regulationScale = scale
	return &clone
}

// PredictEvent runs the full prior -> evidence -> belief chain for one
// event and returns the predicted qualifying ranking
func (r *Runner) PredictEvent(ctx context.Context, event models.Event) (*Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	started := time.Now()

	competitors := eventCompetitors(event)
	priors, err := prior.BuildPriors(event.Standings, event.Entries, event.TeamTiers, competitors, r.cfg.Prior)
	if err != nil {
		return nil, fmt.Errorf("failed to build priors for event %s: %w", event.ID, err)
	}

	plan := weekend.Classify(event.SessionIDs(), weekend.Config{
		TrustWeights:    r.cfg.TrustWeights,
		RegulationScale: r.regulationScale,
	})

	fields := normalizedFields(event)
	observations := belief.Observations{}
	for _, step := range plan.Steps {
		field, ok := fields[step.SessionID]
		if !ok {
			continue
		}
		observations[step.SessionID] = r.scorer.ScoreSession(field)
	}

	beliefs := belief.RunWeekend(priors, plan, observations, r.cfg.VarianceFloor, r.logger)
	ranking := belief.Rank(beliefs)

	r.logger.WithFields(logrus.Fields{
		"event_id":      event.ID,
		"method":        r.scorer.Name(),
		"format":        plan.Format,
		"competitors":   len(ranking),
		"sessions_used": len(observations),
		"duration_ms":   float64(time.Since(started).Microseconds()) / 1000.0,
	}).Debug("Event prediction completed")

	return &Prediction{
		EventID: event.ID,
		Method:  r.scorer.Name(),
		Format:  plan.Format,
		Ranking: ranking,
		Beliefs: beliefs,
	}, nil
}

// eventCompetitors unions session participants with the standings so a
// weekend without telemetry still gets a prior-only prediction
func eventCompetitors(event models.Event) []models.CompetitorID {
	seen := map[models.CompetitorID]struct{}{}
	ids := []models.CompetitorID{}
	for _, id := range event.Competitors() {
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, row := range event.Standings {
		if _, ok := seen[row.CompetitorID]; !ok {
			seen[row.CompetitorID] = struct{}{}
			ids = append(ids, row.CompetitorID)
		}
	}
	return ids
}

func normalizedFields(event models.Event) map[models.SessionID]models.SessionField {
	fields := make(map[models.SessionID]models.SessionField, len(event.Sessions))
	for id, field := range event.Sessions {
		fields[weekend.Normalize(id)] = field
	}
	return fields
}
