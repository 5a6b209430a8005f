// Package source provides built-in Source implementations.
//
// Sources are read-only, index-addressable views consumed by the parallel
// operations. The package includes:
//
//   - Slice: a slice-backed source with a dense range fast path
//   - FromSeq: materializes an iter.Seq (e.g. a set) into a Slice once
//   - FromMap / FromSortedMap: map entries exposed as types.Pair values
//
// Custom sources can be implemented by satisfying the types.Source interface.
package source
