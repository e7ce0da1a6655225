package slowlearner

import (
	"github.com/pkg/errors"
)

// Datum is a simple wrapper used to send training samples to the Network.
type Datum struct {
	// Inputs must have the same size as the network's input layer.
	Inputs []float64

	// Targets is the expected output of the network, given the inputs.
	Targets []float64
}

// Fits indicates whether or not a given Datum's dimensions match those of
// the Network, allowing it to be used for training or testing.
func (d Datum) Fits(net *Network) bool {
	return len(d.Inputs) == net.InputSize() && len(d.Targets) == net.OutputSize()
}

// DataSupplier is the primary method of providing datasets to Train.
type DataSupplier interface {
	// Get returns the next piece of data, given the current iteration.
	Get(iter int) (Datum, error)
}

// Result is a wrapper for sending back the progress of a training run.
type Result struct {
	// The iteration the result is being sent after.
	Iteration int

	// Average total error since the last status, from the Network's
	// CostFunction.
	Cost float64

	// The fraction correct since the last status, as per IsCorrect from
	// TrainArgs. 0 → 1.
	Correct float64
}

// TrainArgs is a proxy for the optional arguments to Train.
type TrainArgs struct {
	// Data supplies one Datum per iteration. Must not be nil.
	Data DataSupplier

	// RunCondition is called before each iteration; training stops when it
	// returns false. Must not be nil -- see TrainUntil.
	RunCondition func(iter int) bool

	// SendStatus indicates whether to send back general information about
	// the training since the last time 'true' was returned. Can be left
	// nil to represent an unconditional false. See Every.
	SendStatus func(iter int) bool

	// IsCorrect returns whether the network outputs count as correct,
	// given the targets. Can be left nil to represent an unconditional
	// false. The two slices are guaranteed to have equal length. See
	// CorrectRound.
	IsCorrect func(outs, targets []float64) bool

	// Update is how status updates are returned. Can be left nil if
	// SendStatus is nil.
	Update func(Result)
}

// Train repeatedly runs TrainingStep with data from args.Data until
// args.RunCondition returns false, reporting periodic status through
// args.Update. The per-iteration cost reported is the total error of the
// forward pass inside each step, i.e. at the weights before that step's
// update.
func (net *Network) Train(args TrainArgs) error {
	// handle error cases and set defaults
	{
		if args.Data == nil {
			return errors.Errorf("Data is nil")
		}

		if args.RunCondition == nil {
			return errors.Errorf("RunCondition is nil")
		}

		if args.SendStatus == nil {
			args.SendStatus = func(int) bool { return false }
		} else if args.Update == nil {
			return errors.Errorf("SendStatus is set but Update is nil")
		}

		if args.Update == nil {
			args.Update = func(Result) {}
		}

		if args.IsCorrect == nil {
			args.IsCorrect = func(a, b []float64) bool { return false }
		}
	}

	var statusCost, statusCorrect float64
	var statusSize int

	for iter := 0; args.RunCondition(iter); iter++ {
		d, err := args.Data.Get(iter)
		if err != nil {
			return errors.Wrapf(err, "Failed to get training data on iteration %d\n", iter)
		} else if !d.Fits(net) {
			return errors.Errorf("Training data for iteration %d does not fit Network", iter)
		}

		if err := net.TrainingStep(d.Inputs, d.Targets); err != nil {
			return errors.Wrapf(err, "Training step failed on iteration %d\n", iter)
		}

		// both reads are of the cached forward pass the step just ran
		cost, err := net.TotalError(d.Targets)
		if err != nil {
			return errors.Wrapf(err, "Failed to get total error on iteration %d\n", iter)
		}
		outs, err := net.Outputs()
		if err != nil {
			return errors.Wrapf(err, "Failed to get outputs on iteration %d\n", iter)
		}

		statusCost += cost
		if args.IsCorrect(outs, d.Targets) {
			statusCorrect++
		}
		statusSize++

		if args.SendStatus(iter + 1) {
			args.Update(Result{
				Iteration: iter + 1,
				Cost:      statusCost / float64(statusSize),
				Correct:   statusCorrect / float64(statusSize),
			})

			statusCost, statusCorrect = 0, 0
			statusSize = 0
		}
	}

	return nil
}

type internalSupplier struct {
	get func(int) (Datum, error)
}

func (s internalSupplier) Get(iter int) (Datum, error) {
	return s.get(iter)
}

// Data converts a 3D dataset of float64 to a DataSupplier, cycling through
// the samples in order. Dataset indexing is:
// [data index][inputs, targets][values]
//
// N.B.: Data does not check that the samples fit a certain network; that is
// done during training.
func Data(dataset [][][]float64) (DataSupplier, error) {
	d := dataset
	if len(d) == 0 {
		return nil, errors.Errorf("dataset has no data (len == 0)")
	}

	for i := range d {
		if len(d[i]) < 2 {
			return nil, errors.Errorf("dataset lacks required data at index %d (len([%d]) < 2)", i, i)
		}
	}

	return internalSupplier{
		get: func(iter int) (Datum, error) {
			i := iter % len(d)
			return Datum{d[i][0], d[i][1]}, nil
		},
	}, nil
}
