package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundRobin_Plan(t *testing.T) {
	planner := NewRoundRobin()

	t.Run("deals indices across batches", func(t *testing.T) {
		scheme, err := planner.Plan(10, 3, 1)

		require.NoError(t, err)
		require.False(t, scheme.Ordered)
		require.Equal(t, 3, scheme.Count())
		require.Equal(t, 4, scheme.Batches[0].Len) // 0,3,6,9
		require.Equal(t, 3, scheme.Batches[1].Len) // 1,4,7
		require.Equal(t, 3, scheme.Batches[2].Len) // 2,5,8
		require.Equal(t, 3, scheme.Batches[2].Stride)
		requireExactCover(t, scheme)
	})

	t.Run("same count as contiguous", func(t *testing.T) {
		for size := 1; size <= 120; size++ {
			rr, err := planner.Plan(size, 5, 4)
			require.NoError(t, err)
			c, err := NewContiguous().Plan(size, 5, 4)
			require.NoError(t, err)

			require.Equal(t, c.Count(), rr.Count(), "size %d", size)
			requireExactCover(t, rr)
		}
	})

	t.Run("single batch is ordered", func(t *testing.T) {
		scheme, err := planner.Plan(8, 4, 100)

		require.NoError(t, err)
		require.True(t, scheme.IsSerial())
		require.True(t, scheme.Ordered)
		require.True(t, scheme.Batches[0].Contiguous())
	})

	t.Run("returns error for invalid task count", func(t *testing.T) {
		_, err := planner.Plan(10, -1, 1)

		require.ErrorIs(t, err, ErrInvalidTaskCount)
		require.Contains(t, err.Error(), "task count")
	})
}
