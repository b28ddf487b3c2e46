package scoring

import (
	"sync"

	"github.com/yourusername/gridpace/internal/config"
	"github.com/yourusername/gridpace/internal/models"
)

// BaseScorer provides shared functionality for metric-driven scorers
type BaseScorer struct {
	Weights      map[string]float64
	MinCleanLaps int
	Evidence     config.EvidenceConfig
}

// Usable reports whether a competitor's session produced enough clean laps
// to count as evidence
func (b *BaseScorer) Usable(m models.SessionMetrics) bool {
	return m.CleanLaps >= b.MinCleanLaps
}

// WeightedSum combines metric values under the configured category weights.
// Metrics without a configured weight contribute nothing.
func (b *BaseScorer) WeightedSum(metrics map[string]float64) float64 {
	total := 0.0
	for category, weight := range b.Weights {
		if weight == 0 {
			continue
		}
		total += weight * metrics[category]
	}
	return total
}

// ObservationVariance assigns the assumed evidence variance. More clean
// laps tighten the observation, saturating at the reference lap count.
func (b *BaseScorer) ObservationVariance(cleanLaps int) float64 {
	ref := b.Evidence.ReferenceLaps
	if ref <= 0 || cleanLaps >= ref {
		return b.Evidence.BaseVariance
	}
	return b.Evidence.BaseVariance * float64(ref) / float64(cleanLaps)
}

// scoreField fans competitor scoring out in parallel; scoring one
// competitor reads only the shared immutable field, so the only guarded
// state is the result map
func scoreField(
	field models.SessionField,
	score func(id models.CompetitorID, m models.SessionMetrics) *models.EvidenceObservation,
) map[models.CompetitorID]*models.EvidenceObservation {
	out := make(map[models.CompetitorID]*models.EvidenceObservation, len(field))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for id, m := range field {
		wg.Add(1)
		go func(id models.CompetitorID, m models.SessionMetrics) {
			defer wg.Done()
			obs := score(id, m)
			mu.Lock()
			out[id] = obs
			mu.Unlock()
		}(id, m)
	}
	wg.Wait()

	return out
}
