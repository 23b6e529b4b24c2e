package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p. Values outside [0,1] saturate.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// FillBernoulli sets each cell Alive with independent probability p.
func FillBernoulli(r *RNG, buf []Cell, p float64) {
	for i := range buf {
		if r.Chance(p) {
			buf[i] = Alive
			continue
		}
		buf[i] = Dead
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
