package pool

import (
	"fmt"

	"github.com/Overruler/gs-collections/types"
)

// ErrPoolClosed is returned by Submit after Close. It wraps types.ErrPoolExhausted.
var ErrPoolClosed = fmt.Errorf("%w: pool is closed", types.ErrPoolExhausted)

// PanicError carries a value recovered from a panicking unit of work.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}
