package main

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/Overruler/gs-collections/parallel"
	"github.com/Overruler/gs-collections/source"
	"github.com/Overruler/gs-collections/types"
	"github.com/Overruler/gs-collections/workload"
)

// benchCase is one operation measured on both paths. Both funcs return a
// digest of their result so the two can be compared.
type benchCase struct {
	name     string
	serial   func() uint64
	parallel func(ctx context.Context, engine *parallel.Engine) (uint64, error)
}

func newCases(ints []int, words []string) []benchCase {
	intSrc := source.NewSlice(ints)
	wordSrc := source.NewSlice(words)
	double := func(v int) int { return 2 * v }

	countWords := types.Aggregator[string, string, int]{
		Key:   workload.Alphagram,
		Zero:  func() int { return 0 },
		Fold:  func(acc int, _ string) int { return acc + 1 },
		Merge: func(a, b int) int { return a + b },
	}
	countWordsShared := types.MutatingAggregator[string, string, *atomic.Int64]{
		Key:    workload.Alphagram,
		Zero:   func() *atomic.Int64 { return new(atomic.Int64) },
		Mutate: func(n *atomic.Int64, _ string) { n.Add(1) },
	}

	return []benchCase{
		{
			name:   parallel.OpSelect,
			serial: func() uint64 { return workload.DigestInts(filter(ints, workload.PositiveOdd, true)) },
			parallel: func(ctx context.Context, e *parallel.Engine) (uint64, error) {
				out, err := parallel.Select(ctx, intSrc, workload.PositiveOdd, parallel.WithEngine(e))
				return workload.DigestInts(out), err
			},
		},
		{
			name:   parallel.OpReject,
			serial: func() uint64 { return workload.DigestInts(filter(ints, workload.PositiveEven, false)) },
			parallel: func(ctx context.Context, e *parallel.Engine) (uint64, error) {
				out, err := parallel.Reject(ctx, intSrc, workload.PositiveEven, parallel.WithEngine(e))
				return workload.DigestInts(out), err
			},
		},
		{
			name:   parallel.OpCount,
			serial: func() uint64 { return uint64(len(filter(ints, workload.NegativeOdd, true))) },
			parallel: func(ctx context.Context, e *parallel.Engine) (uint64, error) {
				n, err := parallel.Count(ctx, intSrc, workload.NegativeOdd, parallel.WithEngine(e))
				return uint64(n), err //nolint:gosec // count is never negative
			},
		},
		{
			name: parallel.OpCollect,
			serial: func() uint64 {
				out := make([]int, 0, len(ints))
				for _, v := range ints {
					out = append(out, double(v))
				}
				return workload.DigestInts(out)
			},
			parallel: func(ctx context.Context, e *parallel.Engine) (uint64, error) {
				out, err := parallel.Collect(ctx, intSrc, double, parallel.WithEngine(e))
				return workload.DigestInts(out), err
			},
		},
		{
			name: parallel.OpCollectIf,
			serial: func() uint64 {
				var out []int
				for _, v := range ints {
					if workload.PositiveOdd(v) {
						out = append(out, double(v))
					}
				}
				return workload.DigestInts(out)
			},
			parallel: func(ctx context.Context, e *parallel.Engine) (uint64, error) {
				out, err := parallel.CollectIf(ctx, intSrc, workload.PositiveOdd, double, parallel.WithEngine(e))
				return workload.DigestInts(out), err
			},
		},
		{
			name: parallel.OpGroupBy,
			serial: func() uint64 {
				groups := make(map[string][]string)
				for _, w := range words {
					k := workload.Alphagram(w)
					groups[k] = append(groups[k], w)
				}
				return workload.DigestGroups(groups)
			},
			parallel: func(ctx context.Context, e *parallel.Engine) (uint64, error) {
				groups, err := parallel.GroupBy(ctx, wordSrc, workload.Alphagram,
					parallel.WithEngine(e), parallel.WithOrdered(false))
				return workload.DigestGroups(groups), err
			},
		},
		{
			name: parallel.OpAggregateBy,
			serial: func() uint64 {
				return workload.DigestMap(serialCounts(words))
			},
			parallel: func(ctx context.Context, e *parallel.Engine) (uint64, error) {
				counts, err := parallel.AggregateBy(ctx, wordSrc, countWords, parallel.WithEngine(e))
				return workload.DigestMap(counts), err
			},
		},
		{
			name: parallel.OpAggregateInPlaceBy,
			serial: func() uint64 {
				return workload.DigestMap(serialCounts(words))
			},
			parallel: func(ctx context.Context, e *parallel.Engine) (uint64, error) {
				shared, err := parallel.AggregateInPlaceBy(ctx, wordSrc, countWordsShared, parallel.WithEngine(e))
				counts := make(map[string]int, len(shared))
				for k, n := range shared {
					counts[k] = int(n.Load())
				}
				return workload.DigestMap(counts), err
			},
		},
	}
}

// caseNames lists the benchmarked operations in run order.
func caseNames() []string {
	var names []string
	for _, c := range newCases(nil, nil) {
		names = append(names, c.name)
	}

	return names
}

// selectCases keeps the named cases, or all of them when names is empty.
func selectCases(cases []benchCase, names []string) ([]benchCase, error) {
	if len(names) == 0 {
		return cases, nil
	}

	var out []benchCase
	for _, name := range names {
		idx := slices.IndexFunc(cases, func(c benchCase) bool { return c.name == name })
		if idx < 0 {
			return nil, fmt.Errorf("unknown operation %q, see 'parallel-bench ops'", name)
		}
		out = append(out, cases[idx])
	}

	return out, nil
}

func filter(items []int, pred func(int) bool, keep bool) []int {
	var out []int
	for _, v := range items {
		if pred(v) == keep {
			out = append(out, v)
		}
	}

	return out
}

func serialCounts(words []string) map[string]int {
	counts := make(map[string]int)
	for _, w := range words {
		counts[workload.Alphagram(w)]++
	}

	return counts
}
