package testutil

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/hupe1980/kohonen/distance"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: newRand(seed),
		seed: seed,
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed)) // nolint gosec
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = newRand(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	return r.UniformRangeVectors(num, dimensions, 0, 1)
}

// UniformRangeVectors generates random vectors with values in [minVal, maxVal).
func (r *RNG) UniformRangeVectors(num, dimensions int, minVal, maxVal float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = minVal + r.rand.Float64()*span
		}
		vectors[i] = vec
	}

	return vectors
}

// ClusteredVectors generates vectors scattered with Gaussian noise around
// `clusters` centroids drawn uniformly from [0, 1).
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float64) [][]float64 {
	centroids := r.UniformVectors(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	vectors := make([][]float64, num)

	for i := range num {
		centroid := centroids[i%clusters]
		vec := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range dim {
			vec[j] = centroid[j] + r.rand.NormFloat64()*spread
		}
		vectors[i] = vec
	}

	return vectors
}

// ClosestIndex returns the index of the vector closest to query and its
// Euclidean distance. Ties go to the lowest index. It returns -1 for an
// empty set.
func ClosestIndex(query []float64, vectors [][]float64) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for i, v := range vectors {
		if d := distance.Euclidean(query, v); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

// Flatten returns the units of a height x width x dim weight array in
// row-major order.
func Flatten(weights [][][]float64) [][]float64 {
	var out [][]float64
	for _, row := range weights {
		out = append(out, row...)
	}
	return out
}
