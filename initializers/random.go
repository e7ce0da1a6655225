package initializers

import (
	sl "slowlearner"
)

// Random returns an Initializer that uses the provided RNG to generate the
// weights. There is no scaling beyond that of the RNG.
func Random(g RNG) sl.Initializer {
	return func(ws []float64) {
		for i := range ws {
			ws[i] = g.Gen()
		}
	}
}
