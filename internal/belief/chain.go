package belief

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridpace/internal/models"
	"github.com/yourusername/gridpace/internal/weekend"
)

// Observations holds scored evidence per session per competitor. A nil
// entry (or a missing one) is the no-observation state.
type Observations map[models.SessionID]map[models.CompetitorID]*models.EvidenceObservation

// RunWeekend folds the plan's sessions, in order, over every competitor's
// belief chain. Each step is a pure function of the previous posterior, so
// the fold for one competitor is strictly sequential while competitors are
// independent of each other. Returns one final belief per competitor.
func RunWeekend(
	priors map[models.CompetitorID]models.CompetitorPrior,
	plan weekend.Plan,
	observations Observations,
	floor float64,
	logger *logrus.Logger,
) map[models.CompetitorID]models.Belief {
	beliefs := make(map[models.CompetitorID]models.Belief, len(priors))
	for id, p := range priors {
		beliefs[id] = p.Seed()
	}

	for _, step := range plan.Steps {
		sessionObs := observations[step.SessionID]
		for id, b := range beliefs {
			posterior, clamped := update(b, sessionObs[id], step.Trust, floor)
			if clamped && logger != nil {
				logger.WithFields(logrus.Fields{
					"competitor_id": id,
					"session_id":    step.SessionID,
					"floor":         floor,
				}).Warn("Degenerate variance clamped to floor")
			}
			beliefs[id] = posterior
		}
	}

	return beliefs
}
