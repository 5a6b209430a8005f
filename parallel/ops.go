package parallel

import (
	"context"
	"fmt"
	"slices"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/Overruler/gs-collections/internal/combine"
	"github.com/Overruler/gs-collections/types"
)

// Operation names used in logs, metrics and UnitError.Op.
const (
	OpSelect             = "select"
	OpReject             = "reject"
	OpCount              = "count"
	OpCollect            = "collect"
	OpCollectIf          = "collect_if"
	OpGroupBy            = "group_by"
	OpAggregateBy        = "aggregate_by"
	OpAggregateInPlaceBy = "aggregate_in_place_by"
	OpForEach            = "for_each"
	OpSumByInt64         = "sum_by_int64"
	OpSumByFloat64       = "sum_by_float64"
)

// Select returns the elements of src that satisfy pred.
//
// Unless WithOrdered(false) is given, the result keeps source order.
//
// Example:
//
//	evens, err := parallel.Select(ctx, source.NewSlice(nums), func(n int) bool { return n%2 == 0 })
func Select[T any](ctx context.Context, src types.Source[T], pred types.Predicate[T], opts ...CallOption) ([]T, error) {
	if err := checkArgs(OpSelect, src, pred == nil); err != nil {
		return nil, err
	}

	return gather(ctx, OpSelect, src, filterUnit(src, pred, true), newCallOptions(opts), combine.Concat[T])
}

// Reject returns the elements of src that do not satisfy pred.
func Reject[T any](ctx context.Context, src types.Source[T], pred types.Predicate[T], opts ...CallOption) ([]T, error) {
	if err := checkArgs(OpReject, src, pred == nil); err != nil {
		return nil, err
	}

	return gather(ctx, OpReject, src, filterUnit(src, pred, false), newCallOptions(opts), combine.Concat[T])
}

// SelectInto appends the elements of src that satisfy pred to target and
// returns target. Nothing is appended when the call fails.
func SelectInto[T any, C types.Appender[T]](ctx context.Context, src types.Source[T], pred types.Predicate[T], target C, opts ...CallOption) (C, error) {
	if err := checkArgs(OpSelect, src, pred == nil); err != nil {
		return target, err
	}

	return gather(ctx, OpSelect, src, filterUnit(src, pred, true), newCallOptions(opts), intoTarget[T](target))
}

// RejectInto appends the elements of src that do not satisfy pred to target
// and returns target.
func RejectInto[T any, C types.Appender[T]](ctx context.Context, src types.Source[T], pred types.Predicate[T], target C, opts ...CallOption) (C, error) {
	if err := checkArgs(OpReject, src, pred == nil); err != nil {
		return target, err
	}

	return gather(ctx, OpReject, src, filterUnit(src, pred, false), newCallOptions(opts), intoTarget[T](target))
}

// Count returns the number of elements of src that satisfy pred.
func Count[T any](ctx context.Context, src types.Source[T], pred types.Predicate[T], opts ...CallOption) (int, error) {
	if err := checkArgs(OpCount, src, pred == nil); err != nil {
		return 0, err
	}

	co := newCallOptions(opts)

	return run(ctx, src, co, job[int, int]{
		op: OpCount,
		unit: func(b types.Batch) int {
			n := 0
			types.IterateBatch(src, b, func(item T) bool {
				if pred(item) {
					n++
				}
				return true
			})

			return n
		},
		combine: combine.Sum[int],
		empty:   func() int { return 0 },
	})
}

// Collect returns fn applied to every element of src.
func Collect[T, R any](ctx context.Context, src types.Source[T], fn types.Transform[T, R], opts ...CallOption) ([]R, error) {
	if err := checkArgs(OpCollect, src, fn == nil); err != nil {
		return nil, err
	}

	return gather(ctx, OpCollect, src, collectUnit(src, nil, fn), newCallOptions(opts), combine.Concat[R])
}

// CollectInto appends fn applied to every element of src to target and
// returns target.
func CollectInto[T, R any, C types.Appender[R]](ctx context.Context, src types.Source[T], fn types.Transform[T, R], target C, opts ...CallOption) (C, error) {
	if err := checkArgs(OpCollect, src, fn == nil); err != nil {
		return target, err
	}

	return gather(ctx, OpCollect, src, collectUnit(src, nil, fn), newCallOptions(opts), intoTarget[R](target))
}

// CollectIf returns fn applied to every element of src that satisfies pred.
func CollectIf[T, R any](ctx context.Context, src types.Source[T], pred types.Predicate[T], fn types.Transform[T, R], opts ...CallOption) ([]R, error) {
	if err := checkArgs(OpCollectIf, src, pred == nil || fn == nil); err != nil {
		return nil, err
	}

	return gather(ctx, OpCollectIf, src, collectUnit(src, pred, fn), newCallOptions(opts), combine.Concat[R])
}

// GroupBy groups the elements of src by key.
//
// For contiguous planners each group keeps source order.
func GroupBy[T any, K comparable](ctx context.Context, src types.Source[T], key types.KeyFunc[T, K], opts ...CallOption) (map[K][]T, error) {
	if err := checkArgs(OpGroupBy, src, key == nil); err != nil {
		return nil, err
	}

	co := newCallOptions(opts)

	return run(ctx, src, co, job[map[K][]T, map[K][]T]{
		op: OpGroupBy,
		unit: func(b types.Batch) map[K][]T {
			groups := make(map[K][]T)
			types.IterateBatch(src, b, func(item T) bool {
				k := key(item)
				groups[k] = append(groups[k], item)
				return true
			})

			return groups
		},
		combine: combine.UnionGroups[K, T],
		empty:   func() map[K][]T { return map[K][]T{} },
	})
}

// AggregateBy folds the elements of src into one aggregate per key.
//
// With agg.Merge set, every batch folds into its own map and the maps are
// merged key by key. Without it, all batches fold into one shared map and
// each fold runs under that key's lock.
//
// Example:
//
//	counts, err := parallel.AggregateBy(ctx, words, types.Aggregator[string, string, int]{
//	    Key:   workload.Alphagram,
//	    Zero:  func() int { return 0 },
//	    Fold:  func(acc int, _ string) int { return acc + 1 },
//	    Merge: func(a, b int) int { return a + b },
//	})
func AggregateBy[T any, K comparable, V any](ctx context.Context, src types.Source[T], agg types.Aggregator[T, K, V], opts ...CallOption) (map[K]V, error) {
	if err := checkArgs(OpAggregateBy, src, agg.Validate() != nil); err != nil {
		return nil, err
	}

	co := newCallOptions(opts)
	empty := func() map[K]V { return map[K]V{} }

	if !agg.Shared() {
		return run(ctx, src, co, job[map[K]V, map[K]V]{
			op: OpAggregateBy,
			unit: func(b types.Batch) map[K]V {
				local := make(map[K]V)
				types.IterateBatch(src, b, func(item T) bool {
					k := agg.Key(item)
					acc, ok := local[k]
					if !ok {
						acc = agg.Zero()
					}
					local[k] = agg.Fold(acc, item)
					return true
				})

				return local
			},
			combine: func(parts []map[K]V) map[K]V {
				return combine.MergeAggregates(parts, agg.Merge)
			},
			empty: empty,
		})
	}

	shared := xsync.NewMap[K, V]()

	return run(ctx, src, co, job[struct{}, map[K]V]{
		op: OpAggregateBy,
		unit: func(b types.Batch) struct{} {
			types.IterateBatch(src, b, func(item T) bool {
				shared.Compute(agg.Key(item), func(acc V, loaded bool) (V, xsync.ComputeOp) {
					if !loaded {
						acc = agg.Zero()
					}
					return agg.Fold(acc, item), xsync.UpdateOp
				})
				return true
			})

			return struct{}{}
		},
		combine: func([]struct{}) map[K]V { return snapshot(shared) },
		empty:   empty,
	})
}

// AggregateInPlaceBy mutates one aggregate per key for every element of src.
//
// With agg.MergeInto set, every batch mutates its own aggregates and they are
// merged into the first batch's aggregates afterwards. Without it, batches
// share one aggregate per key and Mutate runs concurrently, so V must be safe
// for concurrent mutation.
//
// Example:
//
//	counts, err := parallel.AggregateInPlaceBy(ctx, words, types.MutatingAggregator[string, string, *atomic.Int64]{
//	    Key:    workload.Alphagram,
//	    Zero:   func() *atomic.Int64 { return new(atomic.Int64) },
//	    Mutate: func(n *atomic.Int64, _ string) { n.Add(1) },
//	})
func AggregateInPlaceBy[T any, K comparable, V any](ctx context.Context, src types.Source[T], agg types.MutatingAggregator[T, K, V], opts ...CallOption) (map[K]V, error) {
	if err := checkArgs(OpAggregateInPlaceBy, src, agg.Validate() != nil); err != nil {
		return nil, err
	}

	co := newCallOptions(opts)
	empty := func() map[K]V { return map[K]V{} }

	if !agg.Shared() {
		return run(ctx, src, co, job[map[K]V, map[K]V]{
			op: OpAggregateInPlaceBy,
			unit: func(b types.Batch) map[K]V {
				local := make(map[K]V)
				types.IterateBatch(src, b, func(item T) bool {
					k := agg.Key(item)
					acc, ok := local[k]
					if !ok {
						acc = agg.Zero()
						local[k] = acc
					}
					agg.Mutate(acc, item)
					return true
				})

				return local
			},
			combine: func(parts []map[K]V) map[K]V {
				return combine.MergeInPlace(parts, agg.MergeInto)
			},
			empty: empty,
		})
	}

	shared := xsync.NewMap[K, V]()

	return run(ctx, src, co, job[struct{}, map[K]V]{
		op: OpAggregateInPlaceBy,
		unit: func(b types.Batch) struct{} {
			types.IterateBatch(src, b, func(item T) bool {
				acc, _ := shared.LoadOrCompute(agg.Key(item), func() (V, bool) {
					return agg.Zero(), false
				})
				agg.Mutate(acc, item)
				return true
			})

			return struct{}{}
		},
		combine: func([]struct{}) map[K]V { return snapshot(shared) },
		empty:   empty,
	})
}

// ForEach calls proc for every element of src. Elements of one batch are
// visited in source order; batches run concurrently.
func ForEach[T any](ctx context.Context, src types.Source[T], proc types.Procedure[T], opts ...CallOption) error {
	if err := checkArgs(OpForEach, src, proc == nil); err != nil {
		return err
	}

	co := newCallOptions(opts)
	_, err := run(ctx, src, co, job[struct{}, struct{}]{
		op: OpForEach,
		unit: func(b types.Batch) struct{} {
			types.IterateBatch(src, b, func(item T) bool {
				proc(item)
				return true
			})

			return struct{}{}
		},
		combine: func([]struct{}) struct{} { return struct{}{} },
		empty:   func() struct{} { return struct{}{} },
	})

	return err
}

// SumByInt64 sums value over the elements of src grouped by key.
func SumByInt64[T any, K comparable](ctx context.Context, src types.Source[T], key types.KeyFunc[T, K], value func(T) int64, opts ...CallOption) (map[K]int64, error) {
	if err := checkArgs(OpSumByInt64, src, key == nil || value == nil); err != nil {
		return nil, err
	}

	return AggregateBy(ctx, src, types.Aggregator[T, K, int64]{
		Key:   key,
		Zero:  func() int64 { return 0 },
		Fold:  func(acc int64, item T) int64 { return acc + value(item) },
		Merge: func(a, b int64) int64 { return a + b },
	}, append(slices.Clip(opts), withOp(OpSumByInt64))...)
}

// SumByFloat64 sums value over the elements of src grouped by key.
//
// Floating point addition is not associative, so results may differ from a
// serial sum in the last bits.
func SumByFloat64[T any, K comparable](ctx context.Context, src types.Source[T], key types.KeyFunc[T, K], value func(T) float64, opts ...CallOption) (map[K]float64, error) {
	if err := checkArgs(OpSumByFloat64, src, key == nil || value == nil); err != nil {
		return nil, err
	}

	return AggregateBy(ctx, src, types.Aggregator[T, K, float64]{
		Key:   key,
		Zero:  func() float64 { return 0 },
		Fold:  func(acc float64, item T) float64 { return acc + value(item) },
		Merge: func(a, b float64) float64 { return a + b },
	}, append(slices.Clip(opts), withOp(OpSumByFloat64))...)
}

// gather runs an order-sensitive operation whose batches produce slices.
//
// Ordered calls collect parts by batch index. Unordered calls publish each
// part into a composite as soon as its batch completes and accept any planner.
func gather[T, R, X any](ctx context.Context, op string, src types.Source[T], unit func(types.Batch) []R, co callOptions, finish func(parts [][]R) X) (X, error) {
	if co.ordered {
		return run(ctx, src, co, job[[]R, X]{
			op:      op,
			ordered: true,
			unit:    unit,
			combine: finish,
			empty:   func() X { return finish(nil) },
		})
	}

	parts := combine.NewComposite[R](co.engine.cfg.TaskCount)

	return run(ctx, src, co, job[struct{}, X]{
		op: op,
		unit: func(b types.Batch) struct{} {
			parts.Add(unit(b))
			return struct{}{}
		},
		combine: func([]struct{}) X { return finish(parts.Parts()) },
		empty:   func() X { return finish(nil) },
	})
}

func filterUnit[T any](src types.Source[T], pred types.Predicate[T], keep bool) func(types.Batch) []T {
	return func(b types.Batch) []T {
		var out []T
		types.IterateBatch(src, b, func(item T) bool {
			if pred(item) == keep {
				out = append(out, item)
			}
			return true
		})

		return out
	}
}

// collectUnit transforms the elements of a batch, skipping those rejected by
// pred when pred is non-nil.
func collectUnit[T, R any](src types.Source[T], pred types.Predicate[T], fn types.Transform[T, R]) func(types.Batch) []R {
	return func(b types.Batch) []R {
		out := make([]R, 0, b.Len)
		types.IterateBatch(src, b, func(item T) bool {
			if pred == nil || pred(item) {
				out = append(out, fn(item))
			}
			return true
		})

		return out
	}
}

func intoTarget[T any, C types.Appender[T]](target C) func(parts [][]T) C {
	return func(parts [][]T) C {
		return combine.ConcatInto(target, parts)
	}
}

func snapshot[K comparable, V any](m *xsync.Map[K, V]) map[K]V {
	out := make(map[K]V, m.Size())
	m.Range(func(k K, v V) bool {
		out[k] = v
		return true
	})

	return out
}

// checkArgs rejects a nil source or a missing behavior before any planning.
func checkArgs[T any](op string, src types.Source[T], missingBehavior bool) error {
	if src == nil {
		return fmt.Errorf("%s: %w", op, ErrNilSource)
	}
	if missingBehavior {
		return fmt.Errorf("%s: %w", op, ErrNilBehavior)
	}

	return nil
}
