// Package parallel runs bulk operations over in-memory collections on a
// shared worker pool.
//
// Each operation splits its source into batches, runs one unit of work per
// batch and combines the per-batch results into a single value equal to the
// serial computation. Small sources run serially on the calling goroutine;
// empty sources return immediately without touching the pool.
//
// # Quick Start
//
//	words := source.NewSlice(loadWords())
//
//	long, err := parallel.Select(ctx, words, func(w string) bool { return len(w) > 8 })
//	n, err := parallel.Count(ctx, words, isPalindrome)
//	byKey, err := parallel.GroupBy(ctx, words, workload.Alphagram)
//
// Operations use the process-wide Default engine unless WithEngine is given.
// The default engine can be configured once, before first use:
//
//	cfg := parallel.Config{PoolSize: 16, MinBatchSize: 5000}
//	if err := parallel.ConfigureDefault(&cfg, parallel.WithLogger(logger)); err != nil {
//	    log.Fatal(err)
//	}
//
// # Operations
//
//   - Select, Reject, SelectInto, RejectInto: filtering
//   - Count: counting matches
//   - Collect, CollectIf, CollectInto: transformation
//   - GroupBy: multimap by key
//   - AggregateBy, AggregateInPlaceBy, SumByInt64, SumByFloat64: grouped reductions
//   - ForEach: side effects
//
// # Architecture
//
// Every call moves through a small state machine:
//
//	PLANNING → SUBMITTING → AWAITING → COMBINING → DONE
//	PLANNING → SERIAL_FALLBACK → DONE
//	PLANNING → DONE (empty source)
//
// Failures end in FAILED. A behavior that panics fails its unit; every
// submitted unit is still awaited and the first failure in batch order is
// returned as a *UnitError. Once submitted, units are not cancelled: the
// context only bounds planning and the wait for a free queue slot.
//
// Behaviors (predicates, transforms, key functions, folds) must be pure.
// They run concurrently on different batches.
package parallel
