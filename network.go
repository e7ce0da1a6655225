package slowlearner

import (
	"github.com/pkg/errors"
)

// New constructs a Network from explicit layers of Nodes. layers[0] is the
// input layer (every node from InputNode), the last layer is the output
// layer, and every non-input node must carry exactly one weight per node of
// the previous layer.
//
// All contract violations are detected here, eagerly: fewer than two layers,
// an empty or nil layer, a weight-count mismatch, a non-positive learning
// rate, or a nil activation/cost function. If New returns an error, the
// given nodes have not been adopted and remain usable elsewhere.
func New(act Activation, cost CostFunction, learningRate float64, layers ...[]*Node) (*Network, error) {
	if act == nil {
		return nil, NilArgError{"Activation"}
	} else if cost == nil {
		return nil, NilArgError{"CostFunction"}
	} else if learningRate <= 0 {
		return nil, errors.Errorf("learning rate must be > 0 (%v)", learningRate)
	}

	if len(layers) < 2 {
		return nil, &InvalidTopologyError{Reason: errors.Errorf("need at least 2 layers (have %d)", len(layers)).Error()}
	}

	for l, layer := range layers {
		if len(layer) == 0 {
			return nil, &InvalidTopologyError{Reason: errors.Errorf("layer %d is empty", l).Error()}
		}

		for i, n := range layer {
			if n == nil {
				return nil, &InvalidTopologyError{Reason: errors.Errorf("node %d of layer %d is nil", i, l).Error()}
			}

			want := 0
			if l > 0 {
				want = len(layers[l-1])
			}
			if len(n.weights) != want {
				return nil, &InvalidTopologyError{
					Reason: errors.Errorf("node %d of layer %d has %d weights, previous layer has %d nodes", i, l, len(n.weights), want).Error(),
				}
			}
		}
	}

	net := &Network{
		layers:       layers,
		act:          act,
		cost:         cost,
		learningRate: learningRate,
	}

	return net, nil
}

// NewRandom constructs a dense Network with the given layer sizes, filling
// every weight slice and bias through init. sizes[0] is the input layer's
// node count.
func NewRandom(act Activation, cost CostFunction, learningRate float64, init Initializer, sizes ...int) (*Network, error) {
	if init == nil {
		return nil, NilArgError{"Initializer"}
	}

	if len(sizes) < 2 {
		return nil, &InvalidTopologyError{Reason: errors.Errorf("need at least 2 layers (have %d)", len(sizes)).Error()}
	}
	for l, size := range sizes {
		if size < 1 {
			return nil, &InvalidTopologyError{Reason: errors.Errorf("layer %d must have size >= 1 (%d)", l, size).Error()}
		}
	}

	layers := make([][]*Node, len(sizes))
	for l, size := range sizes {
		layers[l] = make([]*Node, size)
		for i := range layers[l] {
			if l == 0 {
				layers[l][i] = InputNode()
				continue
			}

			ws := make([]float64, sizes[l-1])
			init(ws)
			b := make([]float64, 1)
			init(b)
			layers[l][i] = NewNode(ws, b[0])
		}
	}

	return New(act, cost, learningRate, layers...)
}

// SetTrainBiases sets whether TrainingStep applies the proposed bias updates
// during its apply phase. Biases are frozen by default, matching the
// canonical step-by-step formulation this library follows, where only the
// node-to-node weights move. When enabled, biases descend the gradient the
// same way weights do: bias += -(learningRate * errorWrtInput).
func (net *Network) SetTrainBiases(train bool) {
	net.trainBiases = train
}

// TrainsBiases returns whether bias updates are applied; see SetTrainBiases.
func (net *Network) TrainsBiases() bool {
	return net.trainBiases
}

// NumLayers returns the number of layers in the Network, including the input
// and output layers. Always >= 2.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

// Layer returns the nodes of the given layer, in order. The slice is a copy,
// but the *Node values are the Network's own -- read-only access for
// inspection and tests.
func (net *Network) Layer(l int) []*Node {
	ns := make([]*Node, len(net.layers[l]))
	copy(ns, net.layers[l])
	return ns
}

// InputSize returns the number of nodes in the input layer.
func (net *Network) InputSize() int {
	return len(net.layers[0])
}

// OutputSize returns the number of nodes in the output layer.
func (net *Network) OutputSize() int {
	return len(net.layers[len(net.layers)-1])
}

// LearningRate returns the scalar that multiplies every proposed update.
func (net *Network) LearningRate() float64 {
	return net.learningRate
}

// Outputs returns the ordered outputs of the output layer, as cached by the
// most recent forward pass. Returns ErrNotEvaluated if FeedInputs (or
// TrainingStep) has never been called.
func (net *Network) Outputs() ([]float64, error) {
	if !net.evaluated {
		return nil, ErrNotEvaluated
	}

	outLayer := net.layers[len(net.layers)-1]
	outs := make([]float64, len(outLayer))
	for i, n := range outLayer {
		outs[i] = n.lastOutput
	}
	return outs, nil
}

// TotalError returns the sum of per-output error terms between the cached
// outputs of the most recent forward pass and the given targets. It is a
// pure read -- no forward pass is triggered.
func (net *Network) TotalError(targets []float64) (float64, error) {
	if !net.evaluated {
		return 0, ErrNotEvaluated
	} else if len(targets) != net.OutputSize() {
		return 0, &ShapeMismatchError{What: "targets", Expected: net.OutputSize(), Got: len(targets)}
	}

	var sum float64
	for i, n := range net.layers[len(net.layers)-1] {
		sum += net.cost.Cost(n.lastOutput, targets[i])
	}
	return sum, nil
}
