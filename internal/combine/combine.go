// Package combine merges per-batch accumulators into one result.
//
// Ordered combiners receive accumulators indexed by batch number and merge
// them in that order, so the result equals a serial left-to-right pass.
// Every function here runs on the calling goroutine after all units
// finished and does no locking.
package combine

import (
	"github.com/Overruler/gs-collections/types"
)

// Concat concatenates parts in slice order.
func Concat[T any](parts [][]T) []T {
	total := 0
	for _, p := range parts {
		total += len(p)
	}

	out := make([]T, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// ConcatInto appends parts to target in slice order.
func ConcatInto[T any, C types.Appender[T]](target C, parts [][]T) C {
	for _, p := range parts {
		if len(p) > 0 {
			target.AppendAll(p)
		}
	}

	return target
}

// Sum adds the per-batch values.
func Sum[N int | int64 | float64](parts []N) N {
	var total N
	for _, p := range parts {
		total += p
	}

	return total
}

// UnionGroups merges per-batch groups key by key. Groups are appended in
// batch order, so each merged group keeps source order for contiguous batches.
func UnionGroups[K comparable, T any](parts []map[K][]T) map[K][]T {
	if len(parts) == 0 {
		return map[K][]T{}
	}

	out := parts[0]
	if out == nil {
		out = make(map[K][]T)
	}
	for _, part := range parts[1:] {
		for k, items := range part {
			out[k] = append(out[k], items...)
		}
	}

	return out
}

// MergeAggregates combines per-batch aggregate maps key by key with merge.
func MergeAggregates[K comparable, V any](parts []map[K]V, merge func(a, b V) V) map[K]V {
	if len(parts) == 0 {
		return map[K]V{}
	}

	out := parts[0]
	if out == nil {
		out = make(map[K]V)
	}
	for _, part := range parts[1:] {
		for k, v := range part {
			if acc, ok := out[k]; ok {
				out[k] = merge(acc, v)
			} else {
				out[k] = v
			}
		}
	}

	return out
}

// MergeInPlace folds per-batch mutable aggregates into the first batch's
// aggregates with mergeInto.
func MergeInPlace[K comparable, V any](parts []map[K]V, mergeInto func(into, from V)) map[K]V {
	if len(parts) == 0 {
		return map[K]V{}
	}

	out := parts[0]
	if out == nil {
		out = make(map[K]V)
	}
	for _, part := range parts[1:] {
		for k, v := range part {
			if acc, ok := out[k]; ok {
				mergeInto(acc, v)
			} else {
				out[k] = v
			}
		}
	}

	return out
}
