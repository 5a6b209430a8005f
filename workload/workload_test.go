package workload

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestAlphagram(t *testing.T) {
	require.Equal(t, "ab", Alphagram("ba"))
	require.Equal(t, "ab", Alphagram("aB"))
	require.Equal(t, Alphagram("listen"), Alphagram("Silent"))
	require.Equal(t, "", Alphagram(""))
}

func TestWords(t *testing.T) {
	rng := newRand()

	list := WordList(rng, 500)
	require.Len(t, list, 500)
	for _, w := range list {
		require.Len(t, w, ListWordLength)
	}

	set := WordSet(rng, 200)
	require.Len(t, set, 200)
	for w := range set {
		require.Len(t, w, SetWordLength)
	}
}

func TestShuffledInterval(t *testing.T) {
	got := ShuffledInterval(newRand(), 10)

	require.ElementsMatch(t, []int{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4}, got)
	require.Empty(t, Interval(3, 2))
}

func TestPredicates(t *testing.T) {
	require.True(t, PositiveOdd(3))
	require.False(t, PositiveOdd(-3))
	require.True(t, PositiveEven(4))
	require.False(t, PositiveEven(0))
	require.True(t, NegativeOdd(-3))
	require.Len(t, Predicates(), 3)
}

func TestMeasure(t *testing.T) {
	t.Run("counts runs", func(t *testing.T) {
		calls := 0
		timing, err := Measure("noop", 5, 2, func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		require.Equal(t, 7, calls)
		require.Equal(t, 5, timing.Runs)
		require.Equal(t, "noop", timing.Name)
	})

	t.Run("stops on error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Measure("fail", 5, 0, func() error { return boom })
		require.ErrorIs(t, err, boom)
	})
}

func TestDigests(t *testing.T) {
	require.Equal(t, DigestInts([]int{1, -2, 3}), DigestInts([]int{3, 1, -2}))
	require.NotEqual(t, DigestInts([]int{1, 2}), DigestInts([]int{1, 2, 2}))
	require.Equal(t, Digest([]string{"a", "b"}), Digest([]string{"b", "a"}))

	require.Equal(t,
		DigestGroups(map[string][]string{"ab": {"ab", "ba"}, "xy": {"xy"}}),
		DigestGroups(map[string][]string{"xy": {"xy"}, "ab": {"ba", "ab"}}),
	)
	require.NotEqual(t,
		DigestGroups(map[string][]string{"ab": {"ab"}, "xy": {"xy"}}),
		DigestGroups(map[string][]string{"ab": {"xy"}, "xy": {"ab"}}),
	)

	require.Equal(t, DigestMap(map[string]int{"ab": 2, "cd": 1}), DigestMap(map[string]int{"cd": 1, "ab": 2}))
}
