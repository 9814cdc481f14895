package utils

import (
	"math/rand/v2"
	"sync/atomic"
)

// RandomIntInRange returns a random integer in [lo, hi]. The bounds may be
// given in either order.
func RandomIntInRange(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + rand.IntN(hi-lo+1)
}

// RandomElement returns a random element of elements, or the zero value and
// false when elements is empty.
func RandomElement[T any](elements []T) (T, bool) {
	var zero T
	if len(elements) == 0 {
		return zero, false
	}
	return elements[rand.IntN(len(elements))], true
}

// Shuffle returns a shuffled copy of elements. The input is not modified.
func Shuffle[T any](elements []T) []T {
	out := make([]T, len(elements))
	copy(out, elements)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// IDGenerator returns a function yielding 1, 2, 3, ... on successive calls.
// Each generator keeps its own counter.
func IDGenerator() func() int64 {
	var current atomic.Int64
	return func() int64 {
		return current.Add(1)
	}
}
