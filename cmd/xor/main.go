// xor trains a randomly-initialized network on the XOR function, with the
// activation and cost function selectable by name.
package main

import (
	"flag"
	"fmt"

	sl "slowlearner"
	_ "slowlearner/activations"
	_ "slowlearner/costfuncs"
	"slowlearner/initializers"
)

var (
	activation   = flag.String("activation", "logistic", "registered activation function to use")
	cost         = flag.String("cost", "squared-error", "registered cost function to use")
	learningRate = flag.Float64("rate", 0.5, "learning rate")
	hiddenSize   = flag.Int("hidden", 3, "number of hidden nodes")
	iterations   = flag.Int("iterations", 20000, "number of training steps to run")
	statusEvery  = flag.Int("status", 1000, "print a status line every this many steps")
)

var dataset = [][][]float64{
	{{0, 0}, {0}},
	{{0, 1}, {1}},
	{{1, 0}, {1}},
	{{1, 1}, {0}},
}

func main() {
	flag.Parse()

	act, err := sl.ActivationByName(*activation)
	if err != nil {
		panic(err.Error())
	}
	cf, err := sl.CostFunctionByName(*cost)
	if err != nil {
		panic(err.Error())
	}

	init := initializers.Random(initializers.Uniform(-1, 1))
	net, err := sl.NewRandom(act, cf, *learningRate, init, 2, *hiddenSize, 1)
	if err != nil {
		panic(err.Error())
	}
	net.SetTrainBiases(true)

	data, err := sl.Data(dataset)
	if err != nil {
		panic(err.Error())
	}

	fmt.Println("Starting training...")
	fmt.Println("Iteration, Avg Cost, Fraction Correct")

	args := sl.TrainArgs{
		Data:         data,
		RunCondition: sl.TrainUntil(*iterations),
		SendStatus:   sl.Every(*statusEvery),
		IsCorrect:    sl.CorrectRound,
		Update: func(r sl.Result) {
			fmt.Printf("%d, %v, %v\n", r.Iteration, r.Cost, r.Correct)
		},
	}

	if err := net.Train(args); err != nil {
		panic(err.Error())
	}

	fmt.Println("Done training!")
	for _, d := range dataset {
		if err := net.FeedInputs(d[0]); err != nil {
			panic(err.Error())
		}
		outs, err := net.Outputs()
		if err != nil {
			panic(err.Error())
		}
		fmt.Printf("%v -> %.4v (want %v)\n", d[0], outs, d[1])
	}
}
