package kohonen

import "math/rand/v2"

// Rand is the random source used for weight initialization and sample
// selection. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// IntN returns a pseudo-random number in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewRand returns a PCG-backed generator seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed)) // nolint gosec
}

// Initializer fills the weights of a freshly constructed unit.
type Initializer func(rng Rand, weights []float64)

// UniformInitializer draws every component independently from [lo, hi).
func UniformInitializer(lo, hi float64) Initializer {
	span := hi - lo
	return func(rng Rand, weights []float64) {
		for i := range weights {
			weights[i] = lo + rng.Float64()*span
		}
	}
}

// SampleInitializer copies a uniformly chosen dataset sample into each unit.
// Samples shorter than the grid dimension leave the remaining components at
// zero; longer samples are truncated.
func SampleInitializer(dataset [][]float64) Initializer {
	return func(rng Rand, weights []float64) {
		if len(dataset) == 0 {
			return
		}
		copy(weights, dataset[rng.IntN(len(dataset))])
	}
}
