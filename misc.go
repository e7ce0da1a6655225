package slowlearner

import (
	"math"
)

// TrainUntil returns a function that satisfies TrainArgs.RunCondition,
// stopping after the given number of iterations.
func TrainUntil(maxIterations int) func(int) bool {
	return func(iteration int) bool {
		return iteration < maxIterations
	}
}

// Every returns a function that satisfies TrainArgs.SendStatus. 'frequency'
// is in units of iterations.
func Every(frequency int) func(int) bool {
	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}

// CorrectRound satisfies TrainArgs.IsCorrect for 0/1 targets: outputs are
// rounded to the nearest integer and compared.
//
// assumes len(outs) == len(targets)
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != targets[i] {
			return false
		}
	}

	return true
}
