package testutil

import (
	"math"
	"math/rand"
)

// Sampler produces deterministic random operands for property tests.
// Values are raw lane arrays so the helpers do not depend on the math packages.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler with a fixed seed for reproducibility.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Float returns a value uniformly distributed in [lo, hi).
func (s *Sampler) Float(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Lanes returns four values uniformly distributed in [lo, hi).
func (s *Sampler) Lanes(lo, hi float64) [4]float64 {
	return [4]float64{s.Float(lo, hi), s.Float(lo, hi), s.Float(lo, hi), s.Float(lo, hi)}
}

// UnitAxis returns a unit-length 3D direction in x, y, z with w = 0.
func (s *Sampler) UnitAxis() [4]float64 {
	for {
		v := [4]float64{s.Float(-1, 1), s.Float(-1, 1), s.Float(-1, 1), 0}
		lenSq := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
		if lenSq < 1e-4 || lenSq > 1 {
			continue
		}
		inv := 1 / math.Sqrt(lenSq)
		return [4]float64{v[0] * inv, v[1] * inv, v[2] * inv, 0}
	}
}

// UnitQuat returns a unit-length 4D vector, suitable as a rotation quaternion.
func (s *Sampler) UnitQuat() [4]float64 {
	for {
		v := s.Lanes(-1, 1)
		lenSq := v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3]
		if lenSq < 1e-4 || lenSq > 1 {
			continue
		}
		inv := 1 / math.Sqrt(lenSq)
		return [4]float64{v[0] * inv, v[1] * inv, v[2] * inv, v[3] * inv}
	}
}

// To32 narrows lanes to float32.
func To32(v [4]float64) [4]float32 {
	return [4]float32{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}
