package source

import (
	"iter"
	"slices"
)

// FromSeq materializes seq into a slice source.
//
// Sequences are not index-addressable, so they are drained exactly once on
// the calling goroutine before any batch is planned. A nil seq yields an
// empty source.
//
// Example:
//
//	words := source.FromSeq(maps.Keys(wordSet))
func FromSeq[T any](seq iter.Seq[T]) *Slice[T] {
	if seq == nil {
		return NewSlice[T](nil)
	}

	return NewSlice(slices.Collect(seq))
}
