package types

// Source is a read-only, index-addressable collection consumed by units of work.
//
// Implementations must tolerate concurrent reads from multiple goroutines and
// must not change while an operation is running.
type Source[T any] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at index i, 0 <= i < Len().
	At(i int) T
}

// RangeSource is an optional fast path for sources that can iterate a dense
// range serially without per-element index lookups.
type RangeSource[T any] interface {
	Source[T]

	// Range calls yield for each element in [start, end) in source order
	// until yield returns false.
	Range(start, end int, yield func(T) bool)
}

// Appender is a caller-supplied target container for the *Into operations.
type Appender[T any] interface {
	// AppendAll adds items in the given order.
	AppendAll(items []T)
}

// IterateBatch calls yield for each element of batch b in source order until
// yield returns false. Dense batches use the RangeSource fast path when the
// source provides one.
func IterateBatch[T any](src Source[T], b Batch, yield func(T) bool) {
	if b.Contiguous() {
		if rs, ok := src.(RangeSource[T]); ok {
			rs.Range(b.Start, b.End(), yield)

			return
		}
		for i := b.Start; i < b.End(); i++ {
			if !yield(src.At(i)) {
				return
			}
		}

		return
	}

	idx := b.Start
	for range b.Len {
		if !yield(src.At(idx)) {
			return
		}
		idx += b.Stride
	}
}
