package scoring

import (
	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/gridpace/internal/models"
)

// ZScoreNormalized standardizes each metric against the session field's
// distribution before weighted combination, removing track-specific
// absolute-scale effects so scores compare across circuits.
type ZScoreNormalized struct {
	BaseScorer
}

// Name returns the configuration tag for this method
func (z *ZScoreNormalized) Name() string {
	return MethodZScoreNormalized
}

// ScoreSession computes per-category field statistics over the usable
// competitors, then scores everyone against them in parallel
func (z *ZScoreNormalized) ScoreSession(field models.SessionField) map[models.CompetitorID]*models.EvidenceObservation {
	stats := z.fieldStats(field)

	return scoreField(field, func(id models.CompetitorID, m models.SessionMetrics) *models.EvidenceObservation {
		if !z.Usable(m) {
			return nil
		}
		standardized := make(map[string]float64, len(m.Metrics))
		for category, value := range m.Metrics {
			standardized[category] = stats[category].standardize(value)
		}
		return &models.EvidenceObservation{
			CompetitorID: id,
			SessionID:    m.SessionID,
			Value:        z.WeightedSum(standardized),
			Variance:     z.ObservationVariance(m.CleanLaps),
		}
	})
}

type categoryStats struct {
	mean   float64
	stddev float64
}

// standardize maps a raw value to a z-score; a degenerate field (zero
// spread) standardizes to zero rather than dividing by it
func (c categoryStats) standardize(value float64) float64 {
	if c.stddev == 0 {
		return 0
	}
	return (value - c.mean) / c.stddev
}

// fieldStats collects per-category mean and standard deviation across the
// competitors that pass the clean-lap gate. Gating keeps one out-lap-only
// run from skewing the whole field's scale.
func (z *ZScoreNormalized) fieldStats(field models.SessionField) map[string]categoryStats {
	values := map[string][]float64{}
	for _, m := range field {
		if !z.Usable(m) {
			continue
		}
		for category, value := range m.Metrics {
			values[category] = append(values[category], value)
		}
	}

	stats := make(map[string]categoryStats, len(values))
	for category, xs := range values {
		cs := categoryStats{mean: stat.Mean(xs, nil)}
		if len(xs) > 1 {
			cs.stddev = stat.StdDev(xs, nil)
		}
		stats[category] = cs
	}
	return stats
}
