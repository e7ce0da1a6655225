package costfuncs

import (
	"math"
)

type crossEntropy int8

// CrossEntropy returns the binary cross-entropy error term,
// -(t·ln(a) + (1-t)·ln(1-a)), which implements slowlearner.CostFunction.
// Actual outputs are expected to lie strictly inside (0, 1) -- the textbook
// formulation, no clipping.
func CrossEntropy() crossEntropy {
	return crossEntropy(0)
}

// NegativeLog is a proxy for CrossEntropy.
func NegativeLog() crossEntropy {
	return CrossEntropy()
}

func (c crossEntropy) TypeString() string {
	return "cross-entropy"
}

func (c crossEntropy) Cost(actual, target float64) float64 {
	return -(target*math.Log(actual) + (1-target)*math.Log(1-actual))
}

func (c crossEntropy) Deriv(actual, target float64) float64 {
	return (actual - target) / (actual * (1 - actual))
}
