package costfuncs

import (
	"math"
)

type huber struct {
	δ float64
}

// Huber returns the Huber error term, which implements
// slowlearner.CostFunction. δ controls the bounds of the transition between
// squared error and absolute value.
func Huber(δ float64) *huber {
	return &huber{δ: δ}
}

func (h *huber) TypeString() string {
	return "huber"
}

func (h *huber) Cost(actual, target float64) float64 {
	d := math.Abs(actual - target)
	if d <= h.δ {
		return 0.5 * d * d // faster than math.Pow
	}
	return h.δ*d - 0.5*h.δ*h.δ
}

func (h *huber) Deriv(actual, target float64) float64 {
	d := actual - target
	if !(d < -h.δ || d > h.δ) { // d >= -h.δ && d <= h.δ
		return d
	}
	return h.δ * math.Copysign(1, d)
}
