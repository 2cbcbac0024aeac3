// Package random provides random number generation that can be mocked for testing.
package random

import (
	"math/rand"
	"time"
)

// Random is the source of randomness used for mine placement.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// MathRandom implements Random using a seeded math/rand generator.
// Two generators created with the same non-zero seed produce the same sequence.
type MathRandom struct {
	rng *rand.Rand
}

// New creates a MathRandom for the given seed. A zero seed uses the current time.
func New(seed int64) *MathRandom {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MathRandom{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n), or 0 when n is not positive.
func (r *MathRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}
