package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation setup and diagnostics.
var (
	// ErrInvalidStep indicates a step size that is not strictly positive and finite.
	ErrInvalidStep = errors.New("dynamo: step size must be positive and finite")

	// ErrInvalidParameter indicates a NaN or infinite system parameter.
	ErrInvalidParameter = errors.New("dynamo: parameter must be finite")

	// ErrDiverged indicates the trajectory reached a NaN or Inf state.
	ErrDiverged = errors.New("dynamo: state diverged (NaN or Inf detected)")
)

// DivergenceError records where a trajectory first became non-finite.
// It is a diagnostic; the simulation keeps stepping regardless.
type DivergenceError struct {
	Step  int
	Time  float64
	State Vector3
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v at %s", e.Step, e.Time, ErrDiverged, e.State)
}

func (e *DivergenceError) Unwrap() error {
	return ErrDiverged
}
