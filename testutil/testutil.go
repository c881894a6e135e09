package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates num points of the given dimension with
// coordinates in [0, 1), flattened row-major.
func (r *RNG) UniformPoints(num, dimensions int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	coords := make([]float64, num*dimensions)
	for i := range coords {
		coords[i] = r.rand.Float64()
	}
	return coords
}

// Blobs generates clusters*perCluster points around clusters centres.
// Centre c sits at c*separation on every axis; each coordinate gets
// Gaussian noise with standard deviation spread. Points are interleaved
// (point i belongs to blob i % clusters) so that no contiguous range of
// indices is dominated by one blob. The second return value holds each
// point's blob.
func (r *RNG) Blobs(clusters, perCluster, dimensions int, separation, spread float64) ([]float64, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	num := clusters * perCluster
	coords := make([]float64, num*dimensions)
	truth := make([]int, num)

	for i := range num {
		c := i % clusters
		truth[i] = c
		centre := float64(c) * separation
		for j := range dimensions {
			coords[i*dimensions+j] = centre + r.rand.NormFloat64()*spread
		}
	}

	return coords, truth
}

// Sequence is a scripted random source: Intn returns the scripted values in
// order (modulo n), wrapping around at the end. It is not thread-safe.
type Sequence struct {
	values []int
	next   int
}

// NewSequence returns a Sequence yielding values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn returns the next scripted value modulo n.
func (s *Sequence) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// Calls returns how many values have been drawn.
func (s *Sequence) Calls() int {
	return s.next
}
