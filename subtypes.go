package slowlearner

// Activation is the nonlinear function applied to each non-input node's
// weighted-sum input, paired with its derivative. Implementations can be
// found in the subpackage "activations".
type Activation interface {
	// TypeString returns the string corresponding to the type of the
	// Activation. For example: "Logistic" should return "logistic", or
	// something to that effect.
	TypeString() string

	// Value squashes a node's weighted-sum input into its output.
	Value(in float64) float64

	// Deriv returns the derivative of Value at the given input.
	//
	// The library never verifies that Deriv matches Value; that contract
	// belongs to whoever supplies the pair.
	Deriv(in float64) float64
}

// CostFunction produces the per-output error term comparing an actual output
// against its target, paired with the derivative of that term w.r.t. the
// actual output. The Network's total error is the sum of the per-output
// terms. Implementations can be found in the subpackage "costfuncs".
type CostFunction interface {
	// TypeString returns the string corresponding to the type of the
	// CostFunction.
	TypeString() string

	// Cost returns the error term for a single output value.
	Cost(actual, target float64) float64

	// Deriv returns the derivative of Cost w.r.t. 'actual'.
	Deriv(actual, target float64) float64
}

// Initializer dictates how the weights of a randomly-constructed Network are
// set, given a blank slice to fill. Implementations can be found in the
// subpackage "initializers".
type Initializer func(ws []float64)
