// Package scoring reduces per-session aggregate metrics into scalar
// evidence observations on the pace scale.
package scoring

import (
	"fmt"

	"github.com/yourusername/gridpace/internal/config"
	"github.com/yourusername/gridpace/internal/models"
)

// Method names
const (
	MethodSimpleWeighted   = "simple_weighted"
	MethodZScoreNormalized = "zscore_normalized"
	MethodPriorOnly        = "prior_only"
)

// Method scores a whole session field at once. A nil entry in the result
// means the competitor produced no usable observation and the belief chain
// passes through unchanged. Implementations never mutate the field and are
// deterministic given identical input.
type Method interface {
	Name() string
	ScoreSession(field models.SessionField) map[models.CompetitorID]*models.EvidenceObservation
}

// New builds the scoring method selected by configuration
func New(cfg config.PredictorConfig) (Method, error) {
	base := BaseScorer{
		Weights:      cloneWeights(cfg.MetricWeights),
		MinCleanLaps: cfg.MinCleanLaps,
		Evidence:     cfg.Evidence,
	}
	switch cfg.ScoringMethod {
	case MethodSimpleWeighted:
		return &SimpleWeighted{BaseScorer: base}, nil
	case MethodZScoreNormalized:
		return &ZScoreNormalized{BaseScorer: base}, nil
	case MethodPriorOnly:
		return &PriorOnly{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownScoringMethod, cfg.ScoringMethod)
	}
}

func cloneWeights(weights map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(weights))
	for k, v := range weights {
		out[k] = v
	}
	return out
}
