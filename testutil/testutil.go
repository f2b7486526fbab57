package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/geometry"
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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
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

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// FillIntRange fills dst with random integers in range [minVal, maxVal).
func (r *RNG) FillIntRange(dst []int, minVal, maxVal int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Intn(span)
	}
}

// FillGaussian fills dst with values from a standard normal distribution.
func (r *RNG) FillGaussian(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.NormFloat64()
	}
}

// UniformVec2 returns a vector with components in [minVal, maxVal).
func (r *RNG) UniformVec2(minVal, maxVal float64) geometry.Vector2 {
	var v geometry.Vector2
	r.FillUniformRange(v[:], minVal, maxVal)
	return v
}

// UniformVec3 returns a vector with components in [minVal, maxVal).
func (r *RNG) UniformVec3(minVal, maxVal float64) geometry.Vector3 {
	var v geometry.Vector3
	r.FillUniformRange(v[:], minVal, maxVal)
	return v
}

// UniformVec4 returns a vector with components in [minVal, maxVal).
func (r *RNG) UniformVec4(minVal, maxVal float64) geometry.Vec4[float64] {
	var v geometry.Vec4[float64]
	r.FillUniformRange(v[:], minVal, maxVal)
	return v
}

// IntVec2 returns a vector with integer components in [minVal, maxVal).
func (r *RNG) IntVec2(minVal, maxVal int) geometry.Vector2i {
	var v geometry.Vector2i
	r.FillIntRange(v[:], minVal, maxVal)
	return v
}

// IntVec3 returns a vector with integer components in [minVal, maxVal).
func (r *RNG) IntVec3(minVal, maxVal int) geometry.Vector3i {
	var v geometry.Vector3i
	r.FillIntRange(v[:], minVal, maxVal)
	return v
}

// IntVec4 returns a vector with integer components in [minVal, maxVal).
func (r *RNG) IntVec4(minVal, maxVal int) geometry.Vec4[int] {
	var v geometry.Vec4[int]
	r.FillIntRange(v[:], minVal, maxVal)
	return v
}

// UnitVec3 generates an L2-normalized random vector.
// Uses a Gaussian distribution for uniform distribution on the sphere.
func (r *RNG) UnitVec3() geometry.Vector3 {
	for {
		var v geometry.Vector3
		r.FillGaussian(v[:])
		if u, ok := v.TryNormalized(); ok {
			return u
		}
	}
}

// NonZeroVec3 returns a vector with components in [minVal, maxVal) that is
// not the zero vector.
func (r *RNG) NonZeroVec3(minVal, maxVal float64) geometry.Vector3 {
	for {
		v := r.UniformVec3(minVal, maxVal)
		if v.SquaredMag() != 0 {
			return v
		}
	}
}
