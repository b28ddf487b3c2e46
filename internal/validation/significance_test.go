package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairedTTestIdenticalSamples(t *testing.T) {
	x := []float64{1.2, 0.8, 1.5, 0.9}

	res, err := PairedTTest(x, x)
	require.NoError(t, err)
	assert.Equal(t, 4, res.N)
	assert.Zero(t, res.MeanDiff)
	assert.Equal(t, 1.0, res.PValue)
	assert.Zero(t, res.EffectSize)
}

func TestPairedTTestConsistentDifference(t *testing.T) {
	y := []float64{0.0, 0.0, 0.0, 0.0}
	x := []float64{1.0, 0.5, 1.0, 0.5}

	res, err := PairedTTest(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, res.MeanDiff, 1e-9)
	assert.InDelta(t, 5.196, res.TStat, 1e-2)
	assert.InDelta(t, 2.598, res.EffectSize, 1e-2)
	assert.Less(t, res.PValue, 0.05)
	assert.Greater(t, res.PValue, 0.0)
}

func TestPairedTTestConstantNonZeroDifference(t *testing.T) {
	x := []float64{2, 3, 4}
	y := []float64{1, 2, 3}

	res, err := PairedTTest(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.MeanDiff, 1e-9)
	assert.Zero(t, res.PValue)
}

func TestPairedTTestInputErrors(t *testing.T) {
	_, err := PairedTTest([]float64{1, 2}, []float64{1})
	assert.Error(t, err)

	_, err = PairedTTest([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrInsufficientSamples)
}
