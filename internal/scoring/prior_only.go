package scoring

import (
	"github.com/yourusername/gridpace/internal/models"
)

// PriorOnly is the baseline method: it never produces an observation, so
// beliefs pass through every session untouched and the pipeline reduces to
// the standings prior without any special-casing downstream.
type PriorOnly struct{}

// Name returns the configuration tag for this method
func (p *PriorOnly) Name() string {
	return MethodPriorOnly
}

// ScoreSession returns a no-observation entry for every competitor
func (p *PriorOnly) ScoreSession(field models.SessionField) map[models.CompetitorID]*models.EvidenceObservation {
	out := make(map[models.CompetitorID]*models.EvidenceObservation, len(field))
	for id := range field {
		out[id] = nil
	}
	return out
}
