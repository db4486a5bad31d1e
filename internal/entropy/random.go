// Package entropy provides the simulation's randomness. Everything is seeded
// so a world replays identically from the same seed: uniform draws for stock
// variance, and smooth simplex drift for price volatility.
package entropy

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source is the single randomness source for one simulation run.
type Source struct {
	rng   *rand.Rand
	drift opensimplex.Noise
}

// New creates a Source from a seed.
func New(seed int64) *Source {
	return &Source{
		rng:   rand.New(rand.NewSource(seed)),
		drift: opensimplex.NewNormalized(seed + 1),
	}
}

// Float returns a uniform float64 in [0, 1).
func (s *Source) Float() float64 {
	return s.rng.Float64()
}

// Intn returns a uniform int in [0, n). n <= 0 yields 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Drift returns a smooth value in [-0.5, 0.5] that wanders slowly over
// sim-time. Each channel gets an independent walk, so two goods at the same
// minute do not move in lockstep. One full noise period spans roughly half a
// sim-day.
func (s *Source) Drift(channel uint32, minute uint64) float64 {
	x := float64(minute) / 720.0
	y := float64(channel) * 7.13
	return s.drift.Eval2(x, y) - 0.5
}
