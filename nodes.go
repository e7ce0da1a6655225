package slowlearner

import (
	"fmt"
)

// NewNode returns a Node with the given incoming weights and bias, for use in
// a non-input layer. weights[i] must correspond to the i-th node of the
// previous layer; New checks the count against the layer sizes.
//
// The weight slice is copied -- the Network must be the only owner of its
// nodes' mutable state.
func NewNode(weights []float64, bias float64) *Node {
	n := new(Node)
	n.weights = make([]float64, len(weights))
	copy(n.weights, weights)
	n.bias = bias
	n.pendingWeightUpdates = make([]float64, len(weights))
	return n
}

// InputNode returns a Node for the input layer. Input nodes have no weights
// and no bias; their outputs are force-set by FeedInputs.
func InputNode() *Node {
	return NewNode(nil, 0)
}

// String gives a short description of the Node without printing all of its
// fields. If given a Node that is nil, String will return "<nil>".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	} else if n.IsInput() {
		return fmt.Sprintf("<input node, out: %v>", n.lastOutput)
	}

	return fmt.Sprintf("<node, %d weights, out: %v>", len(n.weights), n.lastOutput)
}

// IsInput returns whether or not the Node is an input-layer node. Input nodes
// have no incoming weights.
func (n *Node) IsInput() bool {
	return len(n.weights) == 0
}

// NumWeights returns the number of incoming connections to the Node, which
// equals the size of the previous layer (0 for input nodes).
func (n *Node) NumWeights() int {
	return len(n.weights)
}

// Weights returns a copy of the Node's incoming weights; it can be modified
// freely but will not update if the Node is trained further.
func (n *Node) Weights() []float64 {
	ws := make([]float64, len(n.weights))
	copy(ws, n.weights)
	return ws
}

// Bias returns the Node's bias: the weight of an implicit always-1 input.
func (n *Node) Bias() float64 {
	return n.bias
}

// LastInput returns the most recent weighted-sum-plus-bias fed into the
// Node's activation function. Undefined for input nodes, which are force-set
// rather than computed.
func (n *Node) LastInput() float64 {
	return n.lastInput
}

// LastOutput returns the most recently computed (or, for input nodes,
// injected) output of the Node.
func (n *Node) LastOutput() float64 {
	return n.lastOutput
}

// Delta returns the derivative of the total error w.r.t. the Node's input,
// as cached by the most recent TrainingStep. It is zero before the first
// backward pass.
func (n *Node) Delta() float64 {
	return n.delta
}

// propose fills the Node's pending updates from its cached delta and the
// previous layer's cached outputs. Nothing is applied here; see
// (*Network).applyUpdates.
func (n *Node) propose(prev []*Node, learningRate float64) {
	for j := range n.weights {
		n.pendingWeightUpdates[j] = -(n.delta * prev[j].lastOutput * learningRate)
	}

	// the bias unit's output is always 1
	n.pendingBiasUpdate = -(n.delta * biasValue * learningRate)
}
