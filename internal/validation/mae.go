// Package validation quantifies prediction accuracy under leakage-free
// temporal splits: per-event errors, method comparison with significance
// statistics, ablations and weekend-format segmentation.
package validation

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/gridpace/internal/models"
)

// PositionMAE converts a predicted ranking and the ground-truth qualifying
// order into position vectors and returns the mean absolute position error
// across the competitors present in both. Duplicate truth positions are a
// structural defect and fatal for the event.
func PositionMAE(predicted []models.CompetitorID, truth map[models.CompetitorID]int) (float64, error) {
	if len(truth) == 0 {
		return 0, models.ErrMissingGroundTruth
	}

	seen := map[int]models.CompetitorID{}
	for id, pos := range truth {
		if other, dup := seen[pos]; dup {
			return 0, fmt.Errorf("%w: position %d held by %s and %s", models.ErrDuplicatePosition, pos, other, id)
		}
		seen[pos] = id
	}

	// Re-rank the prediction over the competitors the truth covers so a
	// DNS entrant in either vector cannot shift everyone else's error
	position := 0
	var errs []float64
	for _, id := range predicted {
		truthPos, ok := truth[id]
		if !ok {
			continue
		}
		position++
		diff := float64(position - truthPos)
		if diff < 0 {
			diff = -diff
		}
		errs = append(errs, diff)
	}

	if len(errs) == 0 {
		return 0, models.ErrMissingGroundTruth
	}
	return stat.Mean(errs, nil), nil
}
