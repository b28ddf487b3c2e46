package belief

import (
	"math"
	"testing"

	"github.com/yourusername/gridpace/internal/models"
)

const floor = 1e-9

func obs(value, variance float64) *models.EvidenceObservation {
	return &models.EvidenceObservation{CompetitorID: "1", SessionID: "FP1", Value: value, Variance: variance}
}

func TestUpdateWorkedScenario(t *testing.T) {
	b := models.Belief{CompetitorID: "1", Mean: 5.0, Variance: 4.0}

	posterior := Update(b, obs(7.0, 1.0), 0.5, floor)

	// effective precision 0.5, posterior precision 0.25+0.5=0.75
	if math.Abs(posterior.Mean-6.333333333333333) > 1e-6 {
		t.Errorf("expected posterior mean 6.333333, got %.9f", posterior.Mean)
	}
	if math.Abs(posterior.Variance-1.333333333333333) > 1e-6 {
		t.Errorf("expected posterior variance 1.333333, got %.9f", posterior.Variance)
	}
	if posterior.SessionIndex != 1 {
		t.Errorf("expected session index to advance to 1, got %d", posterior.SessionIndex)
	}
}

func TestUpdateZeroTrustIsIdentity(t *testing.T) {
	b := models.Belief{CompetitorID: "1", Mean: 5.0, Variance: 4.0, SessionIndex: 2}

	posterior := Update(b, obs(100.0, 1.0), 0, floor)
	if posterior.Mean != b.Mean || posterior.Variance != b.Variance {
		t.Errorf("lambda=0 must pass the belief through unchanged, got %+v", posterior)
	}
	if posterior.SessionIndex != 3 {
		t.Errorf("session index must still advance, got %d", posterior.SessionIndex)
	}

	noObs := Update(b, nil, 0.8, floor)
	if noObs.Mean != b.Mean || noObs.Variance != b.Variance {
		t.Error("missing observation must pass the belief through unchanged")
	}
}

func TestUpdateConvexity(t *testing.T) {
	b := models.Belief{CompetitorID: "1", Mean: 5.0, Variance: 4.0}
	evidence := obs(9.0, 2.0)

	for _, trust := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1.0} {
		posterior := Update(b, evidence, trust, floor)
		if posterior.Mean < b.Mean-1e-12 || posterior.Mean > evidence.Value+1e-12 {
			t.Errorf("lambda=%f: posterior mean %f outside [prior, evidence]", trust, posterior.Mean)
		}
		if posterior.Variance > b.Variance+1e-12 {
			t.Errorf("lambda=%f: posterior variance %f exceeds prior %f", trust, posterior.Variance, b.Variance)
		}
	}
}

func TestUpdateDiffusePriorApproachesEvidence(t *testing.T) {
	b := models.Belief{CompetitorID: "1", Mean: 5.0, Variance: 1e12}

	posterior := Update(b, obs(7.0, 1.0), 1.0, floor)
	if math.Abs(posterior.Mean-7.0) > 1e-6 {
		t.Errorf("full trust with diffuse prior should approach evidence, got %f", posterior.Mean)
	}
}

func TestUpdateVarianceMonotoneOverChain(t *testing.T) {
	b := models.Belief{CompetitorID: "1", Mean: 5.0, Variance: 4.0}
	for i := 0; i < 20; i++ {
		posterior := Update(b, obs(6.0, 1.5), 0.4, floor)
		if posterior.Variance > b.Variance {
			t.Fatalf("step %d: variance increased %f -> %f", i, b.Variance, posterior.Variance)
		}
		b = posterior
	}
}

func TestSequentialEqualsJointUpdate(t *testing.T) {
	mu0, var0 := 5.0, 4.0
	e1, v1, l1 := 7.0, 1.0, 0.5
	e2, v2, l2 := 6.0, 2.0, 0.8

	b := models.Belief{CompetitorID: "1", Mean: mu0, Variance: var0}
	step1 := Update(b, obs(e1, v1), l1, floor)
	step2 := Update(step1, obs(e2, v2), l2, floor)

	// One joint update with combined precision l1/v1 + l2/v2
	jointPrecision := 1/var0 + l1/v1 + l2/v2
	jointMean := (mu0/var0 + e1*l1/v1 + e2*l2/v2) / jointPrecision
	jointVariance := 1 / jointPrecision

	if math.Abs(step2.Mean-jointMean) > 1e-9 {
		t.Errorf("sequential mean %f != joint mean %f", step2.Mean, jointMean)
	}
	if math.Abs(step2.Variance-jointVariance) > 1e-9 {
		t.Errorf("sequential variance %f != joint variance %f", step2.Variance, jointVariance)
	}

	// Order must not matter either
	swapped := Update(Update(b, obs(e2, v2), l2, floor), obs(e1, v1), l1, floor)
	if math.Abs(swapped.Mean-step2.Mean) > 1e-9 || math.Abs(swapped.Variance-step2.Variance) > 1e-9 {
		t.Error("conjugate updates must commute")
	}
}

func TestUpdateClampsDegenerateVariance(t *testing.T) {
	b := models.Belief{CompetitorID: "1", Mean: 5.0, Variance: -2.0}

	posterior := Update(b, obs(7.0, 0.0), 0.5, floor)
	if posterior.Variance <= 0 {
		t.Fatalf("variance must stay strictly positive, got %f", posterior.Variance)
	}
}
