package strategy

import "github.com/Overruler/gs-collections/types"

// Contiguous splits a source into dense, adjacent index ranges.
type Contiguous struct{}

var _ types.BatchPlanner = (*Contiguous)(nil)

// NewContiguous creates a new contiguous planner.
//
// Batch i covers [i*batchSize, min((i+1)*batchSize, size)). The last batch
// absorbs the remainder, so concatenating per-batch results in index order
// reproduces source order.
//
// Returns:
//   - *Contiguous: Initialized contiguous planner
//
// Example:
//
//	planner := strategy.NewContiguous()
//	scheme, err := planner.Plan(100_000, 8, 10_000)
func NewContiguous() *Contiguous {
	return &Contiguous{}
}

// Plan computes contiguous batches for a source of the given size.
//
// Parameters:
//   - sourceSize: Number of elements in the source
//   - taskCount: Upper bound on the number of batches
//   - minBatchSize: Smallest batch worth scheduling
//
// Returns:
//   - types.PartitionScheme: Ordered scheme, empty when sourceSize is 0
//   - error: ErrInvalidTaskCount or ErrInvalidBatchSize
func (c *Contiguous) Plan(sourceSize, taskCount, minBatchSize int) (types.PartitionScheme, error) {
	count, batchSize, err := batchLayout(sourceSize, taskCount, minBatchSize)
	if err != nil {
		return types.PartitionScheme{}, err
	}

	scheme := types.PartitionScheme{
		SourceSize: sourceSize,
		BatchSize:  batchSize,
		Batches:    make([]types.Batch, 0, count),
		Ordered:    true,
	}

	for i := range count {
		start := i * batchSize
		end := min(start+batchSize, sourceSize)
		scheme.Batches = append(scheme.Batches, types.Batch{
			Index:  i,
			Start:  start,
			Len:    end - start,
			Stride: 1,
		})
	}

	return scheme, nil
}
