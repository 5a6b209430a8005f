package types

// State represents a dispatcher state for a single bulk operation.
//
// States follow a defined progression for parallel execution:
//
//	StatePlanning → StateSubmitting → StateAwaiting → StateCombining → StateDone
//
// Small inputs take the serial branch:
//
//	StatePlanning → StateSerialFallback → StateDone
//
// An empty source goes straight from StatePlanning to StateDone. StateDone and
// StateFailed are terminal.
type State int

const (
	// StatePlanning is the initial state while the batch planner computes a scheme.
	StatePlanning State = iota

	// StateSubmitting indicates units of work are being enqueued on the worker pool.
	StateSubmitting

	// StateAwaiting indicates the caller is blocked until every submitted unit finished.
	StateAwaiting

	// StateCombining indicates local accumulators are being merged on the calling goroutine.
	StateCombining

	// StateSerialFallback indicates the whole operation runs on the calling goroutine.
	StateSerialFallback

	// StateDone indicates the combined result was produced.
	StateDone

	// StateFailed indicates the operation failed and no result is returned.
	StateFailed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StatePlanning:
		return "Planning"
	case StateSubmitting:
		return "Submitting"
	case StateAwaiting:
		return "Awaiting"
	case StateCombining:
		return "Combining"
	case StateSerialFallback:
		return "SerialFallback"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}
