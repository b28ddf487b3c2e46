package belief

import (
	"sort"

	"github.com/yourusername/gridpace/internal/models"
)

// Rank orders competitors by descending posterior mean; ties go to the
// lower posterior variance (higher confidence wins), then to the
// identifier so the ordering is total and reproducible.
func Rank(beliefs map[models.CompetitorID]models.Belief) []models.CompetitorID {
	ids := make([]models.CompetitorID, 0, len(beliefs))
	for id := range beliefs {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		a, b := beliefs[ids[i]], beliefs[ids[j]]
		if a.Mean != b.Mean {
			return a.Mean > b.Mean
		}
		if a.Variance != b.Variance {
			return a.Variance < b.Variance
		}
		return ids[i] < ids[j]
	})

	return ids
}

// Positions converts a ranking into a position vector (1-based)
func Positions(ranking []models.CompetitorID) map[models.CompetitorID]int {
	positions := make(map[models.CompetitorID]int, len(ranking))
	for i, id := range ranking {
		positions[id] = i + 1
	}
	return positions
}
