package strategy

import "github.com/Overruler/gs-collections/types"

var (
	// ErrInvalidTaskCount indicates a task count that is not positive.
	ErrInvalidTaskCount = types.ErrInvalidTaskCount

	// ErrInvalidBatchSize indicates a minimum batch size that is not positive.
	ErrInvalidBatchSize = types.ErrInvalidBatchSize
)
