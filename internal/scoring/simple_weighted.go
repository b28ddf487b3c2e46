package scoring

import (
	"github.com/yourusername/gridpace/internal/models"
)

// SimpleWeighted combines raw metric values as a fixed weighted sum.
// Track-specific absolute scales leak into the result, which is exactly
// what the z-score variant exists to remove.
type SimpleWeighted struct {
	BaseScorer
}

// Name returns the configuration tag for this method
func (s *SimpleWeighted) Name() string {
	return MethodSimpleWeighted
}

// ScoreSession scores every competitor in the field independently
func (s *SimpleWeighted) ScoreSession(field models.SessionField) map[models.CompetitorID]*models.EvidenceObservation {
	return scoreField(field, func(id models.CompetitorID, m models.SessionMetrics) *models.EvidenceObservation {
		if !s.Usable(m) {
			return nil
		}
		return &models.EvidenceObservation{
			CompetitorID: id,
			SessionID:    m.SessionID,
			Value:        s.WeightedSum(m.Metrics),
			Variance:     s.ObservationVariance(m.CleanLaps),
		}
	})
}
