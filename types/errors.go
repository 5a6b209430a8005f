package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the parallel iteration engine.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Caller contract violations, rejected before any work is scheduled.
var (
	// ErrInvalidConfig is returned when the engine configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNilSource is returned when an operation is invoked without a source.
	ErrNilSource = errors.New("source is required")

	// ErrNilBehavior is returned when a predicate, transform or aggregator is missing.
	ErrNilBehavior = errors.New("behavior is required")

	// ErrInvalidTaskCount is returned when the requested task count is not positive.
	ErrInvalidTaskCount = errors.New("task count must be positive")

	// ErrInvalidBatchSize is returned when the minimum batch size is not positive.
	ErrInvalidBatchSize = errors.New("minimum batch size must be positive")

	// ErrOrderUnsupported is returned when ordered output is requested from a
	// planner whose batches are not contiguous.
	ErrOrderUnsupported = errors.New("planner cannot preserve source order")

	// ErrDefaultInitialized is returned when the process-wide default engine is
	// configured after it was already created.
	ErrDefaultInitialized = errors.New("default engine already initialized")
)

// Execution failures.
var (
	// ErrUnitFailed is wrapped by every UnitError.
	ErrUnitFailed = errors.New("unit of work failed")

	// ErrPoolExhausted is returned when the worker pool rejects a submission.
	ErrPoolExhausted = errors.New("worker pool rejected submission")
)

// UnitError describes a failure raised by a caller-supplied behavior while a
// unit of work processed its batch.
type UnitError struct {
	// Op is the operation name (e.g. "select", "group_by").
	Op string

	// Batch is the batch index that failed.
	Batch int

	// Cause is the recovered panic value converted to an error.
	Cause error
}

// Error implements the error interface.
func (e *UnitError) Error() string {
	return fmt.Sprintf("%s: batch %d: %v", e.Op, e.Batch, e.Cause)
}

// Unwrap returns both the sentinel and the underlying cause so that
// errors.Is(err, ErrUnitFailed) and errors.Is(err, cause) hold.
func (e *UnitError) Unwrap() []error {
	return []error{ErrUnitFailed, e.Cause}
}
