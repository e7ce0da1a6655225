// Package slowlearner provides a small feedforward neural network trained by
// plain backpropagation, built to make each part of the computation visible:
// the forward pass, the error evaluation, and the two-phase backward pass.
//
// Creating Networks
//
// The center of everything is the Network, built from explicit layers of
// Nodes:
//
//		inputs := []*sl.Node{sl.InputNode(), sl.InputNode()}
//		hidden := []*sl.Node{
//			sl.NewNode([]float64{0.15, 0.2}, 0.35),
//			sl.NewNode([]float64{0.25, 0.3}, 0.35),
//		}
//		out := []*sl.Node{
//			sl.NewNode([]float64{0.4, 0.45}, 0.6),
//			sl.NewNode([]float64{0.5, 0.55}, 0.6),
//		}
//
//		net, err := sl.New(activations.Logistic(), costfuncs.SquaredError(), 0.5, inputs, hidden, out)
//
// For brevity, slowlearner is abbreviated 'sl'.
//
// Activation functions and cost functions are injected as small
// value-and-derivative pairs; implementations live in the subpackages
// "activations" and "costfuncs". The library never checks that a derivative
// actually matches its function -- that contract belongs to the caller.
//
// NewRandom builds the same layered structure with generated weights, using
// an Initializer from the subpackage "initializers":
//
//		net, err := sl.NewRandom(activations.Tanh(), costfuncs.SquaredError(), 0.1,
//			initializers.Random(initializers.Uniform(-1, 1)), 2, 3, 1)
//
// Training
//
// A single supervised update is one call to TrainingStep, which runs the
// forward pass, proposes every weight update via backpropagation, and only
// then applies them:
//
//		err := net.TrainingStep(inputs, targets)
//
// FeedInputs, Outputs and TotalError expose the forward pass on its own. For
// longer runs, Train loops TrainingStep over a DataSupplier with status
// callbacks; see TrainArgs.
//
// Biases are frozen by default; SetTrainBiases(true) opts in to bias
// updates. See the documentation on SetTrainBiases.
package slowlearner
