package costfuncs

import (
	"math"
)

type abs int8

// Abs returns the absolute value error term, which implements
// slowlearner.CostFunction.
func Abs() abs {
	return abs(0)
}

// L1 is a proxy for Abs.
func L1() abs {
	return Abs()
}

func (a abs) TypeString() string {
	return "abs"
}

func (a abs) Cost(actual, target float64) float64 {
	return math.Abs(actual - target)
}

func (a abs) Deriv(actual, target float64) float64 {
	return math.Copysign(1, actual-target)
}
