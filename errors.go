package fuelcell

import "errors"

// Domain errors for model evaluation and log mutation.
var (
	// ErrCapacityExceeded indicates the reading log already holds its
	// maximum number of entries.
	ErrCapacityExceeded = errors.New("fuelcell: reading log at maximum capacity")

	// ErrDuplicateFlowRate indicates a new reading's flow rate collides
	// with an existing entry within the configured tolerance.
	ErrDuplicateFlowRate = errors.New("fuelcell: flow rate collides with an existing reading")

	// ErrNotFound indicates no reading with the given identity exists.
	ErrNotFound = errors.New("fuelcell: no reading with the given id")

	// ErrCurrentExceedsLimit indicates the stack current reached the
	// limiting current, leaving the concentration-loss log domain.
	ErrCurrentExceedsLimit = errors.New("fuelcell: stack current at or above limiting current")
)

// DomainError wraps an out-of-range operating condition with the inputs
// that produced it.
type DomainError struct {
	FlowRate    float64
	Temperature float64
	Current     float64
	Wrapped     error
}

func (e *DomainError) Error() string {
	return e.Wrapped.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Wrapped
}
