package types

import "fmt"

// Pair holds two values. Map sources expose their entries as pairs.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf creates a Pair.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Swap returns a pair with First and Second exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// String returns "first:second".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("%v:%v", p.First, p.Second)
}
