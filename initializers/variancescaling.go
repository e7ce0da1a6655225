package initializers

import (
	"math"

	"gonum.org/v1/gonum/floats"

	sl "slowlearner"
)

// VarianceScaling returns an Initializer that draws from a truncated normal
// distribution scaled by the fan-in of the slice it fills: the standard
// deviation is sqrt(factor / len(ws)). Keeps early weighted sums in a sane
// range for deep-ish stacks.
func VarianceScaling(factor float64) sl.Initializer {
	gen := TruncNormal(0, 1)

	return func(ws []float64) {
		for i := range ws {
			ws[i] = gen.Gen()
		}

		floats.Scale(math.Sqrt(factor/float64(len(ws))), ws)
	}
}
