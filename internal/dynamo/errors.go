package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a state with NaN or Inf components.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrInvalidSteps indicates a step count below one.
	ErrInvalidSteps = errors.New("dynamo: step count must be at least 1")

	// ErrInvalidTimestep indicates a non-positive time increment.
	ErrInvalidTimestep = errors.New("dynamo: timestep must be positive")

	// ErrInvalidDuration indicates a non-positive total simulated time.
	ErrInvalidDuration = errors.New("dynamo: duration must be positive")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
