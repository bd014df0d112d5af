package advisor

import "math/rand/v2"

// Rand is the random source of the Engine. *rand.Rand from math/rand/v2
// satisfies it; tests inject scripted sources.
type Rand interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewSeededRand returns a reproducible random source.
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
