package costfuncs

import (
	sl "slowlearner"
)

const defaultHuberDelta float64 = 1

func init() {
	list := map[string]func() sl.CostFunction{
		SquaredError().TypeString():           func() sl.CostFunction { return SquaredError() },
		Abs().TypeString():                    func() sl.CostFunction { return Abs() },
		Huber(defaultHuberDelta).TypeString(): func() sl.CostFunction { return Huber(defaultHuberDelta) },
		CrossEntropy().TypeString():           func() sl.CostFunction { return CrossEntropy() },
	}

	for s, f := range list {
		if err := sl.RegisterCostFunction(s, f); err != nil {
			panic(err.Error())
		}
	}
}
