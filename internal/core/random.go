package core

import (
	"math"
	"math/rand"
)

// RandomReal returns a uniformly distributed value in the half-open range
// between a and b. Argument order does not matter: the lower bound is
// inclusive and the upper bound exclusive.
func RandomReal(rng *rand.Rand, a, b float64) float64 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return rng.Float64()*(hi-lo) + lo
}

// RandomInt returns floor(RandomReal(a, b)).
func RandomInt(rng *rand.Rand, a, b int) int {
	return int(math.Floor(RandomReal(rng, float64(a), float64(b))))
}
