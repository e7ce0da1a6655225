package activations

import (
	"math"
)

type logistic int8

// Logistic returns the standard logistic (sigmoid) function, which
// implements slowlearner.Activation.
func Logistic() logistic {
	return logistic(0)
}

func (t logistic) TypeString() string {
	return "logistic"
}

func (t logistic) Value(in float64) float64 {
	// equal to 1/(1+e^-x), but keeps its precision for large |x|
	return 0.5 + 0.5*math.Tanh(0.5*in)
}

// the derivative of the logistic is σ(x)·(1 - σ(x))
func (t logistic) Deriv(in float64) float64 {
	v := t.Value(in)
	return v * (1 - v)
}
