// internal/suite/rng.go
// Package: suite
package suite

import "math/rand/v2"

// RNG produces uniformly distributed float32 samples in [min, max).
type RNG struct {
	min, max float32
	rng      *rand.Rand
}

// NewRNG returns a generator over [min, max) with a randomized seed.
func NewRNG(min, max float32) *RNG {
	return &RNG{
		min: min,
		max: max,
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Float32 returns the next sample.
func (g *RNG) Float32() float32 {
	return g.min + (g.max-g.min)*g.rng.Float32()
}

// RandomFloats returns count samples drawn uniformly from [min, max).
func RandomFloats(min, max float32, count int) []float32 {
	g := NewRNG(min, max)
	out := make([]float32, count)
	for i := range out {
		out[i] = g.Float32()
	}
	return out
}
