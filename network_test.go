package slowlearner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sl "slowlearner"
	"slowlearner/activations"
	"slowlearner/costfuncs"
	"slowlearner/initializers"
)

func twoByTwoLayers() [][]*sl.Node {
	return [][]*sl.Node{
		{sl.InputNode(), sl.InputNode()},
		{sl.NewNode([]float64{0.1, 0.2}, 0.3), sl.NewNode([]float64{0.4, 0.5}, 0.6)},
	}
}

func TestNewValidation(t *testing.T) {
	act, cost := activations.Logistic(), costfuncs.SquaredError()

	t.Run("valid", func(t *testing.T) {
		net, err := sl.New(act, cost, 0.5, twoByTwoLayers()...)
		require.NoError(t, err)
		require.Equal(t, 2, net.NumLayers())
		require.Equal(t, 2, net.InputSize())
		require.Equal(t, 2, net.OutputSize())
		require.Equal(t, 0.5, net.LearningRate())
	})

	t.Run("nil activation", func(t *testing.T) {
		_, err := sl.New(nil, cost, 0.5, twoByTwoLayers()...)
		require.Error(t, err)
	})

	t.Run("nil cost function", func(t *testing.T) {
		_, err := sl.New(act, nil, 0.5, twoByTwoLayers()...)
		require.Error(t, err)
	})

	t.Run("non-positive learning rate", func(t *testing.T) {
		_, err := sl.New(act, cost, 0, twoByTwoLayers()...)
		require.Error(t, err)
		_, err = sl.New(act, cost, -0.1, twoByTwoLayers()...)
		require.Error(t, err)
	})

	t.Run("too few layers", func(t *testing.T) {
		_, err := sl.New(act, cost, 0.5, []*sl.Node{sl.InputNode()})
		var topErr *sl.InvalidTopologyError
		require.ErrorAs(t, err, &topErr)
	})

	t.Run("empty layer", func(t *testing.T) {
		layers := twoByTwoLayers()
		layers[1] = nil
		_, err := sl.New(act, cost, 0.5, layers...)
		var topErr *sl.InvalidTopologyError
		require.ErrorAs(t, err, &topErr)
	})

	t.Run("weight count mismatch", func(t *testing.T) {
		layers := twoByTwoLayers()
		layers[1][0] = sl.NewNode([]float64{0.1, 0.2, 0.3}, 0.4)
		_, err := sl.New(act, cost, 0.5, layers...)
		var topErr *sl.InvalidTopologyError
		require.ErrorAs(t, err, &topErr)
	})

	t.Run("weighted node in input layer", func(t *testing.T) {
		layers := twoByTwoLayers()
		layers[0][1] = sl.NewNode([]float64{0.1}, 0)
		_, err := sl.New(act, cost, 0.5, layers...)
		var topErr *sl.InvalidTopologyError
		require.ErrorAs(t, err, &topErr)
	})

	t.Run("nil node", func(t *testing.T) {
		layers := twoByTwoLayers()
		layers[1][1] = nil
		_, err := sl.New(act, cost, 0.5, layers...)
		var topErr *sl.InvalidTopologyError
		require.ErrorAs(t, err, &topErr)
	})
}

func TestNewRandom(t *testing.T) {
	act, cost := activations.Tanh(), costfuncs.SquaredError()
	init := initializers.Random(initializers.Uniform(-1, 1))

	t.Run("shapes", func(t *testing.T) {
		net, err := sl.NewRandom(act, cost, 0.1, init, 3, 4, 2)
		require.NoError(t, err)

		require.Equal(t, 3, net.NumLayers())
		require.Equal(t, 3, net.InputSize())
		require.Equal(t, 2, net.OutputSize())

		for _, n := range net.Layer(0) {
			require.True(t, n.IsInput())
		}
		for _, n := range net.Layer(1) {
			require.Equal(t, 3, n.NumWeights())
		}
		for _, n := range net.Layer(2) {
			require.Equal(t, 4, n.NumWeights())
		}
	})

	t.Run("nil initializer", func(t *testing.T) {
		_, err := sl.NewRandom(act, cost, 0.1, nil, 2, 2)
		require.Error(t, err)
	})

	t.Run("bad sizes", func(t *testing.T) {
		var topErr *sl.InvalidTopologyError

		_, err := sl.NewRandom(act, cost, 0.1, init, 2)
		require.ErrorAs(t, err, &topErr)

		_, err = sl.NewRandom(act, cost, 0.1, init, 2, 0, 1)
		require.ErrorAs(t, err, &topErr)
	})

	t.Run("trainable end to end", func(t *testing.T) {
		net, err := sl.NewRandom(act, cost, 0.1, init, 2, 3, 1)
		require.NoError(t, err)
		require.NoError(t, net.TrainingStep([]float64{0.5, -0.5}, []float64{0.3}))
	})
}

func TestNodeAccessors(t *testing.T) {
	n := sl.NewNode([]float64{0.1, 0.2}, 0.3)

	require.False(t, n.IsInput())
	require.Equal(t, 2, n.NumWeights())
	require.Equal(t, 0.3, n.Bias())
	require.Equal(t, []float64{0.1, 0.2}, n.Weights())

	// Weights returns a copy
	ws := n.Weights()
	ws[0] = 99
	require.Equal(t, []float64{0.1, 0.2}, n.Weights())

	in := sl.InputNode()
	require.True(t, in.IsInput())
	require.Equal(t, 0, in.NumWeights())
	require.Equal(t, "<nil>", (*sl.Node)(nil).String())
}

func TestNewNodeCopiesWeights(t *testing.T) {
	ws := []float64{0.1, 0.2}
	n := sl.NewNode(ws, 0)

	ws[0] = 99
	require.Equal(t, []float64{0.1, 0.2}, n.Weights())
}

func TestRegistries(t *testing.T) {
	t.Run("lookup", func(t *testing.T) {
		act, err := sl.ActivationByName("logistic")
		require.NoError(t, err)
		require.Equal(t, "logistic", act.TypeString())

		cost, err := sl.CostFunctionByName("squared-error")
		require.NoError(t, err)
		require.Equal(t, "squared-error", cost.TypeString())
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := sl.ActivationByName("no-such-activation")
		require.ErrorIs(t, err, sl.ErrUnknownType)

		_, err = sl.CostFunctionByName("no-such-cost")
		require.ErrorIs(t, err, sl.ErrUnknownType)
	})

	t.Run("taken", func(t *testing.T) {
		err := sl.RegisterActivation("logistic", func() sl.Activation { return nil })
		require.ErrorIs(t, err, sl.ErrRegisterTaken)
	})

	t.Run("nil return", func(t *testing.T) {
		err := sl.RegisterActivation("broken", func() sl.Activation { return nil })
		require.ErrorIs(t, err, sl.ErrRegisterNilReturn)

		err = sl.RegisterCostFunction("broken", nil)
		require.ErrorIs(t, err, sl.ErrRegisterNilReturn)
	})
}
