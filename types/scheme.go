package types

// Batch is an index-addressable subrange of a Source assigned to exactly one
// unit of work.
//
// A contiguous batch covers [Start, Start+Len). A strided batch covers
// Start, Start+Stride, ..., visiting Len elements in total.
type Batch struct {
	// Index is the position of the batch in its scheme, starting at 0.
	Index int

	// Start is the source index of the first element.
	Start int

	// Len is the number of elements in the batch.
	Len int

	// Stride is the distance between consecutive elements (1 for contiguous batches).
	Stride int
}

// End returns the exclusive source index bound of a contiguous batch.
func (b Batch) End() int {
	return b.Start + b.Len
}

// Contiguous reports whether the batch covers a dense range.
func (b Batch) Contiguous() bool {
	return b.Stride <= 1
}

// PartitionScheme describes how a source of a given size is split into batches.
//
// A scheme only describes boundaries; it never copies or owns data.
type PartitionScheme struct {
	// SourceSize is the number of elements the scheme covers.
	SourceSize int

	// BatchSize is the nominal number of elements per batch. The last
	// batch may be shorter.
	BatchSize int

	// Batches lists the planned batches in index order.
	Batches []Batch

	// Ordered reports whether concatenating batch results in index order
	// reproduces source order.
	Ordered bool
}

// Count returns the number of planned batches.
func (s PartitionScheme) Count() int {
	return len(s.Batches)
}

// IsEmpty reports whether the scheme has no batches (empty source).
func (s PartitionScheme) IsEmpty() bool {
	return len(s.Batches) == 0
}

// IsSerial reports whether the scheme has exactly one batch, in which case the
// dispatcher runs the operation on the calling goroutine.
func (s PartitionScheme) IsSerial() bool {
	return len(s.Batches) == 1
}

// BatchPlanner computes partition schemes.
//
// Planners implement different partitioning algorithms:
//   - Contiguous: dense ranges, order preserving
//   - RoundRobin: strided batches, order free
//   - Custom: user-defined algorithms
//
// Planner implementations should:
//   - Be deterministic (same input → same output)
//   - Produce batches whose union covers every index exactly once
//   - Never produce empty batches
//   - Be stateless (no side effects)
type BatchPlanner interface {
	// Plan computes a scheme for a source of the given size.
	//
	// Parameters:
	//   - sourceSize: Number of elements in the source (>= 0)
	//   - taskCount: Requested upper bound on the number of batches (> 0)
	//   - minBatchSize: Smallest batch worth scheduling on the pool (> 0)
	//
	// Returns:
	//   - PartitionScheme: Batch boundaries
	//   - error: ErrInvalidTaskCount or ErrInvalidBatchSize for bad arguments
	Plan(sourceSize, taskCount, minBatchSize int) (PartitionScheme, error)
}
