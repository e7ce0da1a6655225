package slowlearner

// Network is the main structure used to learn an input → output mapping. It
// owns an ordered sequence of layers of Nodes, the injected activation and
// cost functions, and the learning rate that scales every proposed update.
//
// A Network is constructed once (by New or NewRandom) with a fixed topology;
// the weights, biases, and per-Node scratch fields mutate in place on every
// FeedInputs / TrainingStep call. A Network is exclusively owned by its
// caller -- no method is safe for concurrent invocation on the same instance.
type Network struct {
	// layers[0] is the input layer; layers[len(layers)-1] is the output
	// layer. Always at least two layers.
	layers [][]*Node

	act  Activation
	cost CostFunction

	// multiplies every proposed weight (and bias) update before it is
	// applied. Always > 0.
	learningRate float64

	// whether proposed bias updates are applied during the apply phase.
	// Defaults to false; see SetTrainBiases.
	trainBiases bool

	// whether a forward pass has run yet. Outputs and TotalError read
	// cached values and are meaningless before the first FeedInputs.
	evaluated bool
}

// Nodes are the weighted-sum units the Network is built from. A Node carries
// its incoming weights and bias, plus scratch state for the most recent
// forward and backward pass. All computation against these fields is done by
// the host Network; a Node has no behavior of its own.
type Node struct {
	// weights[i] is the weight from the i-th node of the previous layer to
	// this node. Empty for input-layer nodes.
	weights []float64

	// the weight of an implicit bias unit whose output is always 1. Zero
	// for input-layer nodes.
	bias float64

	// the most recent weighted-sum-plus-bias fed into the activation
	// function. Never set for input nodes, whose outputs are force-set.
	lastInput float64

	// the most recent activation output (or, for input nodes, the most
	// recently injected input value).
	lastOutput float64

	// proposed deltas from the current backward pass, not yet applied.
	// Same length as weights.
	pendingWeightUpdates []float64
	pendingBiasUpdate    float64

	// the derivative of the total error w.r.t. this node's input. Valid
	// only during/after a backward pass; read by the previous layer's
	// backward step.
	delta float64
}
