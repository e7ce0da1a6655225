package activations

import (
	sl "slowlearner"
)

const defaultLeak float64 = 0.01

func init() {
	list := map[string]func() sl.Activation{
		Logistic().TypeString():             func() sl.Activation { return Logistic() },
		Tanh().TypeString():                 func() sl.Activation { return Tanh() },
		ReLU().TypeString():                 func() sl.Activation { return ReLU() },
		LeakyReLU(defaultLeak).TypeString(): func() sl.Activation { return LeakyReLU(defaultLeak) },
		ELU().TypeString():                  func() sl.Activation { return ELU() },
		Softplus().TypeString():             func() sl.Activation { return Softplus() },
		Identity().TypeString():             func() sl.Activation { return Identity() },
	}

	for s, f := range list {
		if err := sl.RegisterActivation(s, f); err != nil {
			panic(err.Error())
		}
	}
}
