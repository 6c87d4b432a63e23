package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for construction and configuration.
var (
	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrInvalidCapacity indicates a trajectory buffer with no room for the seed.
	ErrInvalidCapacity = errors.New("dynamo: trajectory capacity must be at least 1")

	// ErrUnknownIntegrator indicates an integrator name with no registered stepper.
	ErrUnknownIntegrator = errors.New("dynamo: unknown integrator")

	// ErrUnknownParam indicates a parameter name the system does not expose.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")

	// ErrUnknownMode indicates a view mode other than animate or explore.
	ErrUnknownMode = errors.New("dynamo: unknown mode")

	// ErrUnknownTheme indicates a color theme that is not registered.
	ErrUnknownTheme = errors.New("dynamo: unknown theme")
)

// ParamError wraps an error with the offending parameter.
type ParamError struct {
	Name    string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s=%g: %v", e.Name, e.Value, e.Wrapped)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
