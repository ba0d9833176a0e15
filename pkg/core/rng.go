package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seed sampling in tools.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed returns a random non-zero int64 suitable as a generation seed.
func (r *RNG) Seed() int64 {
	for {
		s := r.r.Int64()
		if r.r.IntN(2) == 1 {
			s = -s
		}
		if s != 0 {
			return s
		}
	}
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
