package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func digestOf(items ...string) uint64 {
	m := &Multiset{}
	for _, s := range items {
		m.AddString(s)
	}

	return m.Sum64()
}

func TestMultiset(t *testing.T) {
	t.Run("order insensitive", func(t *testing.T) {
		require.Equal(t, digestOf("ab", "ba", "cd"), digestOf("cd", "ab", "ba"))
	})

	t.Run("multiplicity sensitive", func(t *testing.T) {
		require.NotEqual(t, digestOf("ab", "ab"), digestOf("ab"))
		require.NotEqual(t, digestOf("ab", "ab", "cd"), digestOf("ab", "cd", "cd"))
	})

	t.Run("content sensitive", func(t *testing.T) {
		require.NotEqual(t, digestOf("ab"), digestOf("ba"))
	})

	t.Run("seeded digests differ", func(t *testing.T) {
		a, b := NewMultiset(1), NewMultiset(2)
		a.AddString("x")
		b.AddString("x")
		require.NotEqual(t, a.Sum64(), b.Sum64())
	})

	t.Run("nested digests", func(t *testing.T) {
		g1 := &Multiset{}
		g1.AddUint64(1)
		g1.AddUint64(2)
		g2 := &Multiset{}
		g2.AddUint64(2)
		g2.AddUint64(1)

		a, b := &Multiset{}, &Multiset{}
		a.AddDigest("k", g1)
		b.AddDigest("k", g2)
		require.Equal(t, a.Sum64(), b.Sum64())
		require.Equal(t, 1, a.Len())
	})
}
