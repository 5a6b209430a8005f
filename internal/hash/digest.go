// Package hash provides order-insensitive result digests built on xxh3.
//
// Parallel operations may return equal results in different orders (groups,
// unordered selects). A Multiset digest hashes every element independently
// and folds the hashes commutatively, so two results digest equally iff they
// hold the same elements with the same multiplicities (with high probability).
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Multiset accumulates an order-insensitive digest. The zero value is ready to use.
type Multiset struct {
	seed  uint64
	sum   uint64
	mixed uint64
	count uint64
}

// NewMultiset creates a digest whose element hashes use seed.
func NewMultiset(seed uint64) *Multiset {
	return &Multiset{seed: seed}
}

// AddString adds s to the digest.
func (m *Multiset) AddString(s string) {
	if m.seed != 0 {
		m.add(xxh3.HashStringSeed(s, m.seed))
		return
	}
	m.add(xxh3.HashString(s))
}

// AddUint64 adds v to the digest.
func (m *Multiset) AddUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	m.add(xxh3.HashSeed(b[:], m.seed))
}

// AddDigest adds another digest as a single element, e.g. one group of a
// multimap keyed by the group's key.
func (m *Multiset) AddDigest(key string, inner *Multiset) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], inner.Sum64())
	m.add(xxh3.HashSeed(b[:], xxh3.HashString(key)))
}

// Len returns the number of added elements.
func (m *Multiset) Len() int {
	return int(m.count) //nolint:gosec // count only grows by one per element
}

// Sum64 returns the digest.
func (m *Multiset) Sum64() uint64 {
	var b [24]byte
	binary.LittleEndian.PutUint64(b[0:8], m.sum)
	binary.LittleEndian.PutUint64(b[8:16], m.mixed)
	binary.LittleEndian.PutUint64(b[16:24], m.count)

	return xxh3.HashSeed(b[:], m.seed)
}

func (m *Multiset) add(h uint64) {
	m.sum += h
	// second, independent commutative lane
	m.mixed += h * (h | 1)
	m.count++
}
