package strategy

import "github.com/Overruler/gs-collections/types"

// RoundRobin deals source indices to batches like cards: batch i covers
// i, i+count, i+2*count, ...
type RoundRobin struct{}

var _ types.BatchPlanner = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin planner.
//
// The planner produces the same number of batches as Contiguous, but each
// batch samples the whole source. This evens out work when element cost
// correlates with position, at the price of losing source order across
// batches.
//
// Returns:
//   - *RoundRobin: Initialized round-robin planner
//
// Example:
//
//	counts, err := parallel.GroupBy(ctx, src, keyFn,
//	    parallel.WithPlanner(strategy.NewRoundRobin()),
//	)
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Plan computes strided batches for a source of the given size.
//
// Parameters:
//   - sourceSize: Number of elements in the source
//   - taskCount: Upper bound on the number of batches
//   - minBatchSize: Smallest batch worth scheduling
//
// Returns:
//   - types.PartitionScheme: Unordered scheme, empty when sourceSize is 0
//   - error: ErrInvalidTaskCount or ErrInvalidBatchSize
func (rr *RoundRobin) Plan(sourceSize, taskCount, minBatchSize int) (types.PartitionScheme, error) {
	count, batchSize, err := batchLayout(sourceSize, taskCount, minBatchSize)
	if err != nil {
		return types.PartitionScheme{}, err
	}

	scheme := types.PartitionScheme{
		SourceSize: sourceSize,
		BatchSize:  batchSize,
		Batches:    make([]types.Batch, 0, count),
		Ordered:    count <= 1,
	}

	// Indices i, i+count, ... below sourceSize.
	for i := range count {
		scheme.Batches = append(scheme.Batches, types.Batch{
			Index:  i,
			Start:  i,
			Len:    ceilDiv(sourceSize-i, count),
			Stride: count,
		})
	}

	return scheme, nil
}
