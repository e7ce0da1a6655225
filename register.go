package slowlearner

import (
	"github.com/pkg/errors"
)

// Registries map type strings to factories so that drivers can select
// activation and cost functions by name (e.g. from a command-line flag). The
// subpackages "activations" and "costfuncs" register their implementations
// in init(); registration is expected to happen at init time and is not
// synchronized.

var (
	activationTypes   = make(map[string]func() Activation)
	costFunctionTypes = make(map[string]func() CostFunction)
)

// RegisterActivation adds a named Activation factory to the registry.
// Returns ErrRegisterTaken if the name is already in use and
// ErrRegisterNilReturn if the factory (or what it produces) is nil.
func RegisterActivation(name string, f func() Activation) error {
	if _, ok := activationTypes[name]; ok {
		return errors.Wrapf(ErrRegisterTaken, "can't register Activation %q", name)
	} else if f == nil || f() == nil {
		return errors.Wrapf(ErrRegisterNilReturn, "can't register Activation %q", name)
	}

	activationTypes[name] = f
	return nil
}

// RegisterCostFunction adds a named CostFunction factory to the registry,
// with the same contract as RegisterActivation.
func RegisterCostFunction(name string, f func() CostFunction) error {
	if _, ok := costFunctionTypes[name]; ok {
		return errors.Wrapf(ErrRegisterTaken, "can't register CostFunction %q", name)
	} else if f == nil || f() == nil {
		return errors.Wrapf(ErrRegisterNilReturn, "can't register CostFunction %q", name)
	}

	costFunctionTypes[name] = f
	return nil
}

// ActivationByName returns a fresh Activation for a registered type string.
// Returns ErrUnknownType for names that were never registered.
func ActivationByName(name string) (Activation, error) {
	f, ok := activationTypes[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "no Activation %q", name)
	}
	return f(), nil
}

// CostFunctionByName returns a fresh CostFunction for a registered type
// string, with the same contract as ActivationByName.
func CostFunctionByName(name string) (CostFunction, error) {
	f, ok := costFunctionTypes[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "no CostFunction %q", name)
	}
	return f(), nil
}
