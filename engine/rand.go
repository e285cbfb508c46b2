package engine

import "math/rand"

// Rand is the uniform random source used for spawn jitter and AI timing.
type Rand interface {
	Float64() float64
	// Range returns a value in [lo, hi). An empty or inverted range yields lo.
	Range(lo, hi float64) float64
}

type seededRand struct {
	r *rand.Rand
}

// NewRand returns a deterministic source for seed.
func NewRand(seed int64) Rand {
	return &seededRand{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRand) Float64() float64 {
	return s.r.Float64()
}

func (s *seededRand) Range(lo, hi float64) float64 {
	if !(hi > lo) {
		return lo
	}
	return lo + s.r.Float64()*(hi-lo)
}
