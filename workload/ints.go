package workload

import "math/rand/v2"

// Interval returns the integers in [from, to] in ascending order.
func Interval(from, to int) []int {
	if to < from {
		return []int{}
	}

	out := make([]int, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, v)
	}

	return out
}

// ShuffledInterval returns count integers centered on zero,
// [-(count/2), count/2-1], in random order.
func ShuffledInterval(rng *rand.Rand, count int) []int {
	out := Interval(-(count / 2), count/2-1)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

// Integer predicates exercised by the select, reject, count and collectIf
// comparisons.
var (
	PositiveOdd  = func(v int) bool { return v > 0 && v%2 != 0 }
	PositiveEven = func(v int) bool { return v > 0 && v%2 == 0 }
	NegativeOdd  = func(v int) bool { return v < 0 && v%2 != 0 }
)

// Predicates lists the integer predicates in a fixed order.
func Predicates() []func(int) bool {
	return []func(int) bool{PositiveOdd, PositiveEven, NegativeOdd}
}
