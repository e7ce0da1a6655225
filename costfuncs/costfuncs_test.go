package costfuncs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type costDeriver interface {
	TypeString() string
	Cost(actual, target float64) float64
	Deriv(actual, target float64) float64
}

// TestDerivsMatchCosts checks every shipped cost function's Deriv against a
// finite-difference estimate of Cost w.r.t. the actual output. Points stay
// inside (0, 1) so cross-entropy is defined, and keep actual != target so
// abs is differentiable.
func TestDerivsMatchCosts(t *testing.T) {
	const epsilon = 1e-6
	const tolerance = 1e-5

	cfs := []costDeriver{
		SquaredError(),
		Abs(),
		Huber(1),
		Huber(0.05),
		CrossEntropy(),
	}
	pairs := [][2]float64{
		{0.2, 0.9},
		{0.75, 0.01},
		{0.51, 0.49},
	}

	for _, cf := range cfs {
		for _, p := range pairs {
			actual, target := p[0], p[1]
			numeric := (cf.Cost(actual+epsilon, target) - cf.Cost(actual-epsilon, target)) / (2 * epsilon)
			assert.InDeltaf(t, numeric, cf.Deriv(actual, target), tolerance,
				"%s derivative at actual=%v target=%v", cf.TypeString(), actual, target)
		}
	}
}

func TestSquaredError(t *testing.T) {
	c := SquaredError()

	assert.InDelta(t, 0.5*0.09, c.Cost(0.7, 0.4), 1e-12)
	require.Equal(t, 0.0, c.Cost(0.3, 0.3))
	assert.InDelta(t, 0.3, c.Deriv(0.7, 0.4), 1e-12)

	// L2 is the same function
	require.Equal(t, c.TypeString(), L2().TypeString())
}

func TestAbs(t *testing.T) {
	a := Abs()

	assert.InDelta(t, 0.3, a.Cost(0.7, 0.4), 1e-12)
	assert.InDelta(t, 0.3, a.Cost(0.4, 0.7), 1e-12)
	require.Equal(t, 1.0, a.Deriv(0.7, 0.4))
	require.Equal(t, -1.0, a.Deriv(0.4, 0.7))
}

func TestHuberTransition(t *testing.T) {
	h := Huber(0.5)

	// quadratic inside the bounds, linear outside
	assert.InDelta(t, 0.5*0.2*0.2, h.Cost(0.9, 0.7), 1e-12)
	assert.InDelta(t, 0.5*0.9-0.5*0.25, h.Cost(1, 0.1), 1e-12)

	assert.InDelta(t, 0.2, h.Deriv(0.9, 0.7), 1e-12)
	require.Equal(t, 0.5, h.Deriv(1, 0.1))
	require.Equal(t, -0.5, h.Deriv(0.1, 1))
}

func TestCrossEntropy(t *testing.T) {
	c := CrossEntropy()

	// perfect confidence on the right answer costs ~0
	require.Less(t, c.Cost(0.9999, 1), 0.001)
	// confident and wrong costs a lot
	require.Greater(t, c.Cost(0.0001, 1), 9.0)
}
