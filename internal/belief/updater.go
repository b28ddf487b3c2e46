// Package belief implements the Gaussian conjugate fusion core: one belief,
// one evidence observation, one trust weight in, one posterior out.
package belief

import (
	"github.com/yourusername/gridpace/internal/models"
)

// Update fuses a belief with one evidence observation under a trust weight
// lambda in [0,1]:
//
//	effective evidence precision = lambda / obsVariance
//	posterior precision          = 1/priorVariance + effective precision
//	posterior mean               = (mean/priorVariance + value*effective precision) / posterior precision
//
// With lambda = 0 or no observation the belief passes through unchanged
// except for the advancing session index, which is what makes the
// prior_only method equivalent to skipping every session. The posterior
// mean is a convex combination of prior mean and evidence, and posterior
// variance never exceeds prior variance.
func Update(b models.Belief, obs *models.EvidenceObservation, trust, floor float64) models.Belief {
	posterior, _ := update(b, obs, trust, floor)
	return posterior
}

func update(b models.Belief, obs *models.EvidenceObservation, trust, floor float64) (models.Belief, bool) {
	next := b
	next.SessionIndex = b.SessionIndex + 1

	if obs == nil || trust <= 0 {
		return next, false
	}

	priorVar, priorClamped := clampVariance(b.Variance, floor)
	obsVar, obsClamped := clampVariance(obs.Variance, floor)

	effectivePrecision := trust / obsVar
	posteriorPrecision := 1/priorVar + effectivePrecision

	next.Mean = (b.Mean/priorVar + obs.Value*effectivePrecision) / posteriorPrecision
	posteriorVar, postClamped := clampVariance(1/posteriorPrecision, floor)
	next.Variance = posteriorVar

	return next, priorClamped || obsClamped || postClamped
}

// clampVariance enforces the strictly-positive variance invariant. A
// degenerate value is a recoverable condition, never a propagated one.
func clampVariance(v, floor float64) (float64, bool) {
	if floor <= 0 {
		floor = 1e-12
	}
	if v < floor {
		return floor, true
	}
	return v, false
}
