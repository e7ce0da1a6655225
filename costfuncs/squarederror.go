package costfuncs

type squarederror int8

// SquaredError returns the halved squared error term, 0.5·(actual-target)²,
// which implements slowlearner.CostFunction. The one-half factor makes the
// derivative come out to exactly (actual - target).
func SquaredError() squarederror {
	return squarederror(0)
}

// L2 is a proxy for SquaredError.
func L2() squarederror {
	return SquaredError()
}

func (c squarederror) TypeString() string {
	return "squared-error"
}

func (c squarederror) Cost(actual, target float64) float64 {
	d := actual - target
	return 0.5 * d * d // faster than math.Pow
}

func (c squarederror) Deriv(actual, target float64) float64 {
	return actual - target
}
