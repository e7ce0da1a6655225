package slowlearner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sl "slowlearner"
)

func TestTrainWorkedExample(t *testing.T) {
	net := workedNet(t)

	data, err := sl.Data([][][]float64{{workedInputs, workedTargets}})
	require.NoError(t, err)

	var results []sl.Result
	args := sl.TrainArgs{
		Data:         data,
		RunCondition: sl.TrainUntil(2000),
		SendStatus:   sl.Every(500),
		Update: func(r sl.Result) {
			results = append(results, r)
		},
	}

	require.NoError(t, net.Train(args))

	require.Len(t, results, 4)
	require.Equal(t, 500, results[0].Iteration)
	require.Equal(t, 2000, results[3].Iteration)

	// average cost per status window keeps falling
	for i := 1; i < len(results); i++ {
		require.Less(t, results[i].Cost, results[i-1].Cost)
	}

	require.NoError(t, net.FeedInputs(workedInputs))
	final, err := net.TotalError(workedTargets)
	require.NoError(t, err)
	require.Less(t, final, 0.01)
}

func TestTrainValidation(t *testing.T) {
	net := workedNet(t)

	data, err := sl.Data([][][]float64{{workedInputs, workedTargets}})
	require.NoError(t, err)

	t.Run("nil data", func(t *testing.T) {
		err := net.Train(sl.TrainArgs{RunCondition: sl.TrainUntil(1)})
		require.Error(t, err)
	})

	t.Run("nil run condition", func(t *testing.T) {
		err := net.Train(sl.TrainArgs{Data: data})
		require.Error(t, err)
	})

	t.Run("status without update", func(t *testing.T) {
		err := net.Train(sl.TrainArgs{
			Data:         data,
			RunCondition: sl.TrainUntil(1),
			SendStatus:   sl.Every(1),
		})
		require.Error(t, err)
	})

	t.Run("datum does not fit", func(t *testing.T) {
		bad, err := sl.Data([][][]float64{{{0.1}, {0.2}}})
		require.NoError(t, err)

		err = net.Train(sl.TrainArgs{
			Data:         bad,
			RunCondition: sl.TrainUntil(1),
		})
		require.Error(t, err)
	})
}

func TestDatumFits(t *testing.T) {
	net := workedNet(t)

	require.True(t, sl.Datum{Inputs: []float64{1, 2}, Targets: []float64{3, 4}}.Fits(net))
	require.False(t, sl.Datum{Inputs: []float64{1}, Targets: []float64{3, 4}}.Fits(net))
	require.False(t, sl.Datum{Inputs: []float64{1, 2}, Targets: []float64{3}}.Fits(net))
}

func TestDataValidation(t *testing.T) {
	_, err := sl.Data(nil)
	require.Error(t, err)

	_, err = sl.Data([][][]float64{{{0.1}}})
	require.Error(t, err)
}

func TestDataCycles(t *testing.T) {
	dataset := [][][]float64{
		{{0}, {1}},
		{{1}, {0}},
	}

	data, err := sl.Data(dataset)
	require.NoError(t, err)

	for iter := 0; iter < 6; iter++ {
		d, err := data.Get(iter)
		require.NoError(t, err)
		require.Equal(t, dataset[iter%2][0], d.Inputs)
		require.Equal(t, dataset[iter%2][1], d.Targets)
	}
}

func TestMiscHelpers(t *testing.T) {
	until := sl.TrainUntil(3)
	require.True(t, until(0))
	require.True(t, until(2))
	require.False(t, until(3))

	every := sl.Every(100)
	require.True(t, every(100))
	require.True(t, every(200))
	require.False(t, every(150))

	require.True(t, sl.CorrectRound([]float64{0.9, 0.2}, []float64{1, 0}))
	require.False(t, sl.CorrectRound([]float64{0.9, 0.7}, []float64{1, 0}))
}
