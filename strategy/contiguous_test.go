package strategy

import (
	"testing"

	"github.com/Overruler/gs-collections/types"
	"github.com/stretchr/testify/require"
)

// coverage returns how often each index of a source is visited by the scheme.
func coverage(scheme types.PartitionScheme) []int {
	seen := make([]int, scheme.SourceSize)
	for _, b := range scheme.Batches {
		idx := b.Start
		for range b.Len {
			seen[idx]++
			idx += b.Stride
		}
	}

	return seen
}

func requireExactCover(t *testing.T, scheme types.PartitionScheme) {
	t.Helper()
	for i, n := range coverage(scheme) {
		require.Equal(t, 1, n, "index %d visited %d times", i, n)
	}
	for i, b := range scheme.Batches {
		require.Equal(t, i, b.Index)
		require.Positive(t, b.Len, "batch %d is empty", i)
	}
}

func TestContiguous_Plan(t *testing.T) {
	planner := NewContiguous()

	t.Run("splits into taskCount batches", func(t *testing.T) {
		scheme, err := planner.Plan(100, 4, 10)

		require.NoError(t, err)
		require.True(t, scheme.Ordered)
		require.Equal(t, 4, scheme.Count())
		require.Equal(t, 25, scheme.BatchSize)
		require.Equal(t, types.Batch{Index: 3, Start: 75, Len: 25, Stride: 1}, scheme.Batches[3])
		requireExactCover(t, scheme)
	})

	t.Run("last batch absorbs remainder", func(t *testing.T) {
		scheme, err := planner.Plan(10, 3, 1)

		require.NoError(t, err)
		require.Equal(t, 3, scheme.Count())
		require.Equal(t, 4, scheme.BatchSize)
		require.Equal(t, 2, scheme.Batches[2].Len)
		requireExactCover(t, scheme)
	})

	t.Run("minBatchSize bounds the count", func(t *testing.T) {
		scheme, err := planner.Plan(25_000, 16, 10_000)

		require.NoError(t, err)
		require.Equal(t, 2, scheme.Count())
		requireExactCover(t, scheme)
	})

	t.Run("small source yields one batch", func(t *testing.T) {
		scheme, err := planner.Plan(9_999, 16, 10_000)

		require.NoError(t, err)
		require.True(t, scheme.IsSerial())
		require.Equal(t, 9_999, scheme.Batches[0].Len)
	})

	t.Run("no empty trailing batch", func(t *testing.T) {
		// count=4 gives batchSize=2 and only 3 batches worth of data
		scheme, err := planner.Plan(5, 4, 1)

		require.NoError(t, err)
		require.Equal(t, 3, scheme.Count())
		requireExactCover(t, scheme)
	})

	t.Run("empty source yields no batches", func(t *testing.T) {
		scheme, err := planner.Plan(0, 4, 1)

		require.NoError(t, err)
		require.True(t, scheme.IsEmpty())
	})

	t.Run("exact cover for many sizes", func(t *testing.T) {
		for size := 0; size <= 200; size++ {
			for _, tasks := range []int{1, 2, 3, 7, 16} {
				scheme, err := planner.Plan(size, tasks, 3)
				require.NoError(t, err)
				require.LessOrEqual(t, scheme.Count(), tasks)
				requireExactCover(t, scheme)
			}
		}
	})

	t.Run("rejects invalid arguments", func(t *testing.T) {
		_, err := planner.Plan(10, 0, 1)
		require.ErrorIs(t, err, ErrInvalidTaskCount)

		_, err = planner.Plan(10, 2, 0)
		require.ErrorIs(t, err, ErrInvalidBatchSize)

		_, err = planner.Plan(-1, 2, 1)
		require.Error(t, err)
	})

	t.Run("is deterministic", func(t *testing.T) {
		a, err := planner.Plan(12_345, 7, 100)
		require.NoError(t, err)
		b, err := planner.Plan(12_345, 7, 100)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})
}
