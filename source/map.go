package source

import (
	"cmp"
	"slices"

	"github.com/Overruler/gs-collections/types"
)

// FromMap snapshots the entries of m as pairs in map iteration order.
//
// Only order-free operations (count, groupBy, aggregateBy, unordered select)
// should rely on this source; use FromSortedMap when results must be
// reproducible.
func FromMap[K comparable, V any](m map[K]V) *Slice[types.Pair[K, V]] {
	entries := make([]types.Pair[K, V], 0, len(m))
	for k, v := range m {
		entries = append(entries, types.PairOf(k, v))
	}

	return NewSlice(entries)
}

// FromSortedMap snapshots the entries of m as pairs ordered by key.
func FromSortedMap[K cmp.Ordered, V any](m map[K]V) *Slice[types.Pair[K, V]] {
	src := FromMap(m)
	slices.SortFunc(src.items, func(a, b types.Pair[K, V]) int {
		return cmp.Compare(a.First, b.First)
	})

	return src
}
