// Package workload generates benchmark inputs and verifies benchmark outputs.
//
// It provides random word lists and sets, shuffled integer intervals, the
// integer predicates and the alphagram key used by the serial vs parallel
// comparison, a small timekeeper, and order-insensitive digests for checking
// that a parallel result equals its serial counterpart.
package workload
