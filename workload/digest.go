package workload

import (
	"fmt"

	"github.com/Overruler/gs-collections/internal/hash"
)

// Digest returns an order-insensitive digest of items, formatted with %v.
func Digest[T any](items []T) uint64 {
	m := &hash.Multiset{}
	for _, item := range items {
		m.AddString(fmt.Sprint(item))
	}

	return m.Sum64()
}

// DigestInts returns an order-insensitive digest of ints.
func DigestInts(items []int) uint64 {
	m := &hash.Multiset{}
	for _, v := range items {
		m.AddUint64(uint64(v)) //nolint:gosec // bit pattern only
	}

	return m.Sum64()
}

// DigestGroups returns a digest of a multimap that ignores key order and the
// order inside each group.
func DigestGroups[K comparable, T any](groups map[K][]T) uint64 {
	outer := &hash.Multiset{}
	for k, items := range groups {
		inner := &hash.Multiset{}
		for _, item := range items {
			inner.AddString(fmt.Sprint(item))
		}
		outer.AddDigest(fmt.Sprint(k), inner)
	}

	return outer.Sum64()
}

// DigestMap returns a digest of a map that ignores key order.
func DigestMap[K comparable, V any](m map[K]V) uint64 {
	d := &hash.Multiset{}
	for k, v := range m {
		d.AddString(fmt.Sprintf("%v=%v", k, v))
	}

	return d.Sum64()
}
