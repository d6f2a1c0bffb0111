package framework

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSwarmSize is returned when the swarm size is not positive.
	ErrInvalidSwarmSize = errors.New("swarm size must be positive")
	// ErrNegativeCoefficient is returned when c1 or c2 is negative.
	ErrNegativeCoefficient = errors.New("cognitive and social coefficients must be non-negative")
	// ErrNilFitnessFunc is returned when no fitness function is supplied.
	ErrNilFitnessFunc = errors.New("fitness function is required")
)

// InvalidBoundsError indicates a bounds sequence whose length does not match
// the dimensionality, or a dimension with min > max.
type InvalidBoundsError struct {
	// Kind is "position" or "velocity".
	Kind string
	// Dimension is the offending dimension, or -1 for a length mismatch.
	Dimension int
	Expected  int
	Actual    int
	Bounds    Bounds
}

func (e *InvalidBoundsError) Error() string {
	if e.Dimension < 0 {
		return fmt.Sprintf("invalid %s bounds: expected %d dimensions, got %d", e.Kind, e.Expected, e.Actual)
	}
	return fmt.Sprintf("invalid %s bounds in dimension %d: min %v > max %v", e.Kind, e.Dimension, e.Bounds.L, e.Bounds.H)
}

// InvalidIterationCountError is returned when an optimization is asked to run
// for zero or fewer iterations.
type InvalidIterationCountError struct {
	Iterations int
}

func (e *InvalidIterationCountError) Error() string {
	return fmt.Sprintf("invalid iteration count: %d, must be positive", e.Iterations)
}

// ObjectiveFunctionError carries a failure of the caller's fitness function.
//
// The fitness function's error can be accessed via errors.Unwrap.
type ObjectiveFunctionError struct {
	Iteration int
	Particle  int
	Err       error
}

func (e *ObjectiveFunctionError) Error() string {
	return fmt.Sprintf("fitness evaluation failed at iteration %d for particle %d: %v", e.Iteration, e.Particle, e.Err)
}

func (e *ObjectiveFunctionError) Unwrap() error { return e.Err }
