package parallel

import (
	"github.com/Overruler/gs-collections/internal/pool"
	"github.com/Overruler/gs-collections/types"
)

// Sentinel errors returned by the engine and its operations.
//
// Caller contract violations are reported before any batch is scheduled.
// Execution failures wrap ErrUnitFailed or ErrPoolExhausted.
var (
	ErrInvalidConfig      = types.ErrInvalidConfig
	ErrNilSource          = types.ErrNilSource
	ErrNilBehavior        = types.ErrNilBehavior
	ErrInvalidTaskCount   = types.ErrInvalidTaskCount
	ErrInvalidBatchSize   = types.ErrInvalidBatchSize
	ErrOrderUnsupported   = types.ErrOrderUnsupported
	ErrDefaultInitialized = types.ErrDefaultInitialized

	ErrUnitFailed    = types.ErrUnitFailed
	ErrPoolExhausted = types.ErrPoolExhausted

	// ErrPoolClosed is returned when an operation runs on an engine after
	// Shutdown. It wraps ErrPoolExhausted.
	ErrPoolClosed = pool.ErrPoolClosed
)
