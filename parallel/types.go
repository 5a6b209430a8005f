package parallel

import "github.com/Overruler/gs-collections/types"

// Re-export types from the types package so callers can stay on a single
// import for everyday use.
type (
	State            = types.State
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Hooks            = types.Hooks
	BatchPlanner     = types.BatchPlanner
	PartitionScheme  = types.PartitionScheme
	Batch            = types.Batch
	UnitError        = types.UnitError
)

// Re-export generic contracts.
type (
	Source[T any]                                  = types.Source[T]
	Appender[T any]                                = types.Appender[T]
	Predicate[T any]                               = types.Predicate[T]
	Transform[T, R any]                            = types.Transform[T, R]
	KeyFunc[T any, K comparable]                   = types.KeyFunc[T, K]
	Procedure[T any]                               = types.Procedure[T]
	Aggregator[T any, K comparable, V any]         = types.Aggregator[T, K, V]
	MutatingAggregator[T any, K comparable, V any] = types.MutatingAggregator[T, K, V]
	Pair[A, B any]                                 = types.Pair[A, B]
)

// Re-export State constants.
const (
	StatePlanning       = types.StatePlanning
	StateSubmitting     = types.StateSubmitting
	StateAwaiting       = types.StateAwaiting
	StateCombining      = types.StateCombining
	StateSerialFallback = types.StateSerialFallback
	StateDone           = types.StateDone
	StateFailed         = types.StateFailed
)
