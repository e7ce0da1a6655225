// stepdemo trains the classic 2-2-2 worked example network and prints the
// outputs and total error as training progresses, so each gradient-descent
// step can be followed by hand.
package main

import (
	"flag"
	"fmt"

	sl "slowlearner"
	"slowlearner/activations"
	"slowlearner/costfuncs"
)

const (
	// main hyperparameters
	learningRate float64 = 0.5
)

var (
	iterations  = flag.Int("iterations", 10000, "number of training steps to run")
	printEvery  = flag.Int("every", 1000, "print outputs and error every this many steps")
	trainBiases = flag.Bool("train-biases", false, "apply bias updates as well as weight updates")
)

var (
	inputs  = []float64{0.05, 0.10}
	targets = []float64{0.01, 0.99}
)

func buildNet() *sl.Network {
	in := []*sl.Node{sl.InputNode(), sl.InputNode()}
	hidden := []*sl.Node{
		sl.NewNode([]float64{0.15, 0.20}, 0.35),
		sl.NewNode([]float64{0.25, 0.30}, 0.35),
	}
	out := []*sl.Node{
		sl.NewNode([]float64{0.40, 0.45}, 0.60),
		sl.NewNode([]float64{0.50, 0.55}, 0.60),
	}

	net, err := sl.New(activations.Logistic(), costfuncs.SquaredError(), learningRate, in, hidden, out)
	if err != nil {
		panic(err.Error())
	}

	return net
}

func report(net *sl.Network, step int) {
	outs, err := net.Outputs()
	if err != nil {
		panic(err.Error())
	}

	total, err := net.TotalError(targets)
	if err != nil {
		panic(err.Error())
	}

	fmt.Printf("step %6d: outputs %.8v, total error %.10f\n", step, outs, total)
}

func main() {
	flag.Parse()

	net := buildNet()
	net.SetTrainBiases(*trainBiases)

	if err := net.FeedInputs(inputs); err != nil {
		panic(err.Error())
	}
	report(net, 0)

	for i := 1; i <= *iterations; i++ {
		if err := net.TrainingStep(inputs, targets); err != nil {
			panic(err.Error())
		}

		if i%*printEvery == 0 {
			// re-run the forward pass so the report reflects the
			// just-applied weights
			if err := net.FeedInputs(inputs); err != nil {
				panic(err.Error())
			}
			report(net, i)
		}
	}

	fmt.Println("Done!")
}
