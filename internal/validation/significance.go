package validation

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var ErrInsufficientSamples = errors.New("validation: need at least two paired samples")

// TTestResult holds the paired Student's t-test over per-event error
// differences, plus the standardized effect size (Cohen's d on the
// difference distribution).
type TTestResult struct {
	N          int     `json:"n"`
	MeanDiff   float64 `json:"mean_diff"`
	TStat      float64 `json:"t_stat"`
	PValue     float64 `json:"p_value"`
	EffectSize float64 `json:"effect_size"`
}

// PairedTTest tests whether the paired samples x and y have the same mean.
// Pairs are matched by index, so both slices must come from the identical
// ordered event set.
func PairedTTest(x, y []float64) (TTestResult, error) {
	if len(x) != len(y) {
		return TTestResult{}, errors.New("validation: paired samples have different lengths")
	}
	if len(x) < 2 {
		return TTestResult{}, ErrInsufficientSamples
	}

	diffs := make([]float64, len(x))
	for i := range x {
		diffs[i] = x[i] - y[i]
	}

	n := float64(len(diffs))
	mean := stat.Mean(diffs, nil)
	sd := stat.StdDev(diffs, nil)

	res := TTestResult{N: len(diffs), MeanDiff: mean}
	if sd == 0 {
		// Constant differences. Zero mean is a perfect tie, anything
		// else is maximally significant.
		if mean == 0 {
			res.PValue = 1
		}
		return res, nil
	}

	res.EffectSize = mean / sd
	res.TStat = mean / (sd / math.Sqrt(n))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 1}
	res.PValue = 2 * dist.CDF(-math.Abs(res.TStat))
	return res, nil
}
