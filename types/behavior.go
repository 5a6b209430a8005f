package types

type (
	// Predicate reports whether an element matches. It must be pure.
	Predicate[T any] func(item T) bool

	// Transform maps an element to a new value. It must be pure.
	Transform[T, R any] func(item T) R

	// KeyFunc derives a grouping key from an element.
	KeyFunc[T any, K comparable] func(item T) K

	// Procedure performs an action on an element. Used by ForEach; it must be
	// safe to call from multiple goroutines.
	Procedure[T any] func(item T)
)

// Aggregator describes a grouped reduction: every element is folded into the
// aggregate of its key, starting from Zero.
//
// Merge combines two aggregates of the same key produced by different batches.
// It must be associative and commutative. When Merge is nil, aggregates are
// kept in one map shared by all batches and Fold is applied under a per-key
// lock, so Fold itself must then be insensitive to element order.
type Aggregator[T any, K comparable, V any] struct {
	Key   KeyFunc[T, K]
	Zero  func() V
	Fold  func(acc V, item T) V
	Merge func(a, b V) V
}

// MutatingAggregator describes a grouped reduction over mutable aggregates:
// Zero creates the aggregate of a key and Mutate updates it in place.
//
// MergeInto folds the batch-local aggregate from into into. When MergeInto is
// nil, one aggregate per key is shared by every batch and Mutate is called
// concurrently, so V must be safe for concurrent mutation (e.g. *atomic.Int64).
type MutatingAggregator[T any, K comparable, V any] struct {
	Key       KeyFunc[T, K]
	Zero      func() V
	Mutate    func(agg V, item T)
	MergeInto func(into, from V)
}

// Shared reports whether aggregates are shared between batches instead of
// being merged after the fact.
func (a Aggregator[T, K, V]) Shared() bool {
	return a.Merge == nil
}

// Validate checks that the required behaviors are present.
func (a Aggregator[T, K, V]) Validate() error {
	if a.Key == nil || a.Zero == nil || a.Fold == nil {
		return ErrNilBehavior
	}

	return nil
}

// Shared reports whether aggregates are shared between batches instead of
// being merged after the fact.
func (a MutatingAggregator[T, K, V]) Shared() bool {
	return a.MergeInto == nil
}

// Validate checks that the required behaviors are present.
func (a MutatingAggregator[T, K, V]) Validate() error {
	if a.Key == nil || a.Zero == nil || a.Mutate == nil {
		return ErrNilBehavior
	}

	return nil
}
