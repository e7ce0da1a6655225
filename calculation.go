package slowlearner

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"slowlearner/utils"
)

// the output of the implicit bias unit feeding every non-input node
const biasValue float64 = 1

// nodesPerChunk is how many nodes of one layer a single goroutine handles
// during the forward and propose phases. Layers at or below this size run on
// the calling goroutine.
const nodesPerChunk int = 64

// FeedInputs runs a full forward pass: input-layer outputs are force-set to
// the given values (bypassing activation), then every subsequent layer
// computes, per node, lastInput = Σ weights[i]*prev[i].lastOutput + bias and
// lastOutput = activation(lastInput).
//
// The inputs' length must equal the input layer's node count; a mismatch
// returns a *ShapeMismatchError without touching any node state. After a
// successful call every node's cached output reflects these inputs -- stale
// values from a previous pass are fully overwritten.
func (net *Network) FeedInputs(inputs []float64) error {
	if len(inputs) != net.InputSize() {
		return &ShapeMismatchError{What: "inputs", Expected: net.InputSize(), Got: len(inputs)}
	}

	for i, n := range net.layers[0] {
		n.lastOutput = inputs[i]
	}

	for l := 1; l < len(net.layers); l++ {
		prev, layer := net.layers[l-1], net.layers[l]

		// nodes of one layer only read the previous layer's cached
		// outputs, so they can be computed in any order
		evaluate := func(i int) {
			n := layer[i]

			sum := n.bias * biasValue
			for j, w := range n.weights {
				sum += w * prev[j].lastOutput
			}

			n.lastInput = sum
			n.lastOutput = net.act.Value(sum)
		}

		utils.Chunked(0, len(layer), evaluate, nodesPerChunk)
	}

	net.evaluated = true
	return nil
}

// TrainingStep performs one full supervised update: forward pass, backward
// pass proposing every weight (and bias) update, then a strictly separate
// apply phase.
//
// The propose-then-apply split is a hard invariant, not an implementation
// detail: a hidden node's delta sums over the next layer's deltas times the
// weights connecting to it, and those must be the pre-update weights.
// Updating in place during the backward pass would corrupt that fan-in sum.
//
// Both vector lengths are validated before anything is mutated; a mismatch
// returns a *ShapeMismatchError and leaves the Network untouched.
func (net *Network) TrainingStep(inputs, targets []float64) error {
	if len(inputs) != net.InputSize() {
		return &ShapeMismatchError{What: "inputs", Expected: net.InputSize(), Got: len(inputs)}
	} else if len(targets) != net.OutputSize() {
		return &ShapeMismatchError{What: "targets", Expected: net.OutputSize(), Got: len(targets)}
	}

	if err := net.FeedInputs(inputs); err != nil {
		return errors.Wrapf(err, "forward pass failed\n")
	}

	net.proposeOutputUpdates(targets)

	// hidden layers strictly from the one before the output layer down to
	// (but excluding) the input layer
	for l := len(net.layers) - 2; l >= 1; l-- {
		net.proposeHiddenUpdates(l)
	}

	net.applyUpdates()
	return nil
}

// proposeOutputUpdates computes deltas and pending updates for the output
// layer: delta = costDeriv(out, target) * actDeriv(in).
func (net *Network) proposeOutputUpdates(targets []float64) {
	layer := net.layers[len(net.layers)-1]
	prev := net.layers[len(net.layers)-2]

	f := func(i int) {
		n := layer[i]

		errorWrtOut := net.cost.Deriv(n.lastOutput, targets[i])
		outWrtIn := net.act.Deriv(n.lastInput)
		n.delta = errorWrtOut * outWrtIn

		n.propose(prev, net.learningRate)
	}

	utils.Chunked(0, len(layer), f, nodesPerChunk)
}

// proposeHiddenUpdates computes deltas and pending updates for hidden layer
// l. A hidden node's output feeds every node of the next layer, so its
// error-w.r.t.-output is the chain-rule fan-in sum over all of them, read
// from the next layer's still-unmodified weights.
func (net *Network) proposeHiddenUpdates(l int) {
	layer := net.layers[l]
	next := net.layers[l+1]
	prev := net.layers[l-1]

	f := func(i int) {
		n := layer[i]

		var errorWrtOut float64
		for _, m := range next {
			errorWrtOut += m.delta * m.weights[i]
		}

		n.delta = errorWrtOut * net.act.Deriv(n.lastInput)
		n.propose(prev, net.learningRate)
	}

	utils.Chunked(0, len(layer), f, nodesPerChunk)
}

// applyUpdates folds every pending update into the live weights. Runs only
// after all layers' proposals are complete; biases move only when
// SetTrainBiases has enabled them.
func (net *Network) applyUpdates() {
	for l := 1; l < len(net.layers); l++ {
		for _, n := range net.layers[l] {
			floats.Add(n.weights, n.pendingWeightUpdates)
			if net.trainBiases {
				n.bias += n.pendingBiasUpdate
			}
		}
	}
}
