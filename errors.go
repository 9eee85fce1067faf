package gsearch

import (
	"errors"
	"fmt"
)

// Sentinel errors for search operations.
var (
	// ErrEmptyQueue is returned when extracting from or peeking at an empty
	// PriorityQueue. The search loop checks for emptiness first, so seeing it
	// from Search means the queue was used outside its contract.
	ErrEmptyQueue = errors.New("priority queue is empty")

	// ErrNilProblem is returned when Search or NewStepper is given a nil Problem.
	ErrNilProblem = errors.New("problem must not be nil")

	// ErrNilHeuristic is returned when Search or NewStepper is given a nil Heuristic.
	ErrNilHeuristic = errors.New("heuristic must not be nil")

	// ErrNegativeCost is returned when an operator reports a negative step cost.
	ErrNegativeCost = errors.New("negative step cost")

	// ErrNilApply is returned when an operator has no Apply function.
	ErrNilApply = errors.New("operator has no apply function")
)

// OperatorError reports a malformed operator met during expansion.
type OperatorError struct {
	Operator string
	Err      error
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("operator %q: %v", e.Operator, e.Err)
}

func (e *OperatorError) Unwrap() error { return e.Err }

// ConfigurationError reports a problem definition that violates the Problem
// contract. Problem constructors return it eagerly; the engine never does.
type ConfigurationError struct {
	Component string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Component, e.Reason)
}
