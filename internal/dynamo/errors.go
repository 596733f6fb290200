package dynamo

import "errors"

// Domain errors for integration and its consumers.
var (
	// ErrInvalidState indicates a trajectory containing NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrEmptyTrajectory indicates an operation that needs at least one sample.
	ErrEmptyTrajectory = errors.New("dynamo: empty trajectory")
)

// SampleError wraps an error with the sample it was detected at.
type SampleError struct {
	Index   int
	Sample  Sample
	Wrapped error
}

func (e *SampleError) Error() string {
	return e.Wrapped.Error()
}

func (e *SampleError) Unwrap() error {
	return e.Wrapped
}
