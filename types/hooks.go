package types

import "context"

// Hooks defines callbacks for dispatcher events.
//
// All hooks are optional. They are called synchronously on the calling
// goroutine of the bulk operation, so they must complete quickly. Hook errors
// are logged but never fail the operation.
//
// Example:
//
//	hooks := &types.Hooks{
//	    OnStateChanged: func(ctx context.Context, op string, from, to types.State) error {
//	        if to == types.StateSerialFallback {
//	            serialCalls.Add(1)
//	        }
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnStateChanged is called for every dispatcher state transition.
	OnStateChanged func(ctx context.Context, op string, from, to State) error

	// OnError is called when an operation fails after scheduling.
	OnError func(ctx context.Context, op string, err error) error
}
