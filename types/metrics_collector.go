package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods are called from worker goroutines and callers concurrently and must
// be thread-safe.
//
// This interface composes smaller, domain-focused interfaces.
type MetricsCollector interface {
	DispatchMetrics
	PoolMetrics
}

// DispatchMetrics defines metrics for bulk operation dispatch.
type DispatchMetrics interface {
	// RecordStateTransition records a dispatcher state transition.
	//
	// Parameters:
	//   - op: Operation name ("select", "count", "group_by", ...)
	//   - from: Previous state
	//   - to: New state
	RecordStateTransition(op string, from, to State)

	// RecordOperation records a finished bulk operation.
	//
	// Parameters:
	//   - op: Operation name
	//   - mode: Execution mode ("parallel", "serial", "empty")
	//   - duration: Time taken in seconds
	//   - success: true if the operation returned a result
	RecordOperation(op string, mode string, duration float64, success bool)

	// RecordBatches records the number of batches planned for an operation.
	RecordBatches(op string, count int)

	// RecordUnitFailure records a unit of work that failed.
	RecordUnitFailure(op string)
}

// PoolMetrics defines metrics for the worker pool.
type PoolMetrics interface {
	// RecordSubmitWait records how long a submission blocked on a full queue.
	//
	// Parameters:
	//   - duration: Time blocked in seconds
	RecordSubmitWait(duration float64)

	// RecordQueueDepth sets the number of queued units (gauge metric).
	RecordQueueDepth(depth int)
}
