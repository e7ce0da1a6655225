package slowlearner

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no
// additional information necessary. These errors are defined as global
// variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	// ErrNotEvaluated is returned by Outputs and TotalError when no forward
	// pass has been run yet.
	ErrNotEvaluated = Error{"Network has not been evaluated"}

	ErrRegisterTaken     = Error{"Name has already been registered"}
	ErrRegisterNilReturn = Error{"Function return is nil"}
	ErrUnknownType       = Error{"Type is not recognized"}
)

// NilArgError documents errors resulting from certain arguments provided to a
// function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// ShapeMismatchError is returned when an input or target vector does not
// match the length of the corresponding layer. It is a call-site contract
// violation; the Network is left untouched when it is returned.
type ShapeMismatchError struct {
	// What names the offending vector: "inputs" or "targets".
	What          string
	Expected, Got int
}

func (err *ShapeMismatchError) Error() string {
	return fmt.Sprintf("length of %s does not match the network (expected %d, got %d)", err.What, err.Expected, err.Got)
}

// InvalidTopologyError is returned by construction when the provided layers
// cannot form a feedforward network: fewer than two layers, an empty layer,
// or a node whose weight count does not equal the previous layer's size.
type InvalidTopologyError struct {
	Reason string
}

func (err *InvalidTopologyError) Error() string {
	return "invalid topology: " + err.Reason
}
