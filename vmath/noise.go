package vmath

import (
	"math"
)

// Gradient hash constants, LCG-style integer mix
// Cosmetic quality only, no statistical requirement
const (
	hashMulA = 1103515245
	hashMulB = 12345
	hashMask = 0x7fffffff
)

// GradHash maps an integer lattice coordinate to a pseudo-gradient
// in [-1, 1]
func GradHash(i int64) float64 {
	h := (i*hashMulA + hashMulB) & hashMask
	h = (h ^ (h >> 16)) * hashMulA & hashMask
	return float64(h)/float64(hashMask)*2.0 - 1.0
}

// Perlin1D is 1D gradient noise with quintic fade, output in [-1, 1]
func Perlin1D(x float64) float64 {
	x0 := math.Floor(x)
	frac := x - x0
	i := int64(x0)

	g0 := GradHash(i)
	g1 := GradHash(i + 1)

	// Gradient contribution at each lattice end
	v0 := g0 * frac
	v1 := g1 * (frac - 1.0)

	return Lerp(v0, v1, Fade(frac)) * 2.0
}

// Fractal sums three octaves of Perlin1D, output clamped to [-1, 1]
// Persistence halves amplitude per octave
func Fractal(x float64) float64 {
	sum := 0.0
	amp := 1.0
	freq := 1.0
	norm := 0.0
	for oct := 0; oct < 3; oct++ {
		sum += Perlin1D(x*freq) * amp
		norm += amp
		amp *= 0.5
		freq *= 2.0
	}
	return Clamp(sum/norm, -1.0, 1.0)
}

// Smoother carries exponentially smoothed noise across frames
// Zero value starts at rest; state must be threaded explicitly by the
// owner, there is no package-level instance
type Smoother struct {
	value    float64
	lastTime float64
	seeded   bool
}

// Sample advances the smoothed value toward the fractal noise at time t
// alpha is the smoothing weight per sampled step in (0, 1]
func (s *Smoother) Sample(t, alpha float64) float64 {
	raw := Fractal(t)
	if !s.seeded {
		s.value = raw
		s.lastTime = t
		s.seeded = true
		return s.value
	}
	if t == s.lastTime {
		return s.value
	}
	s.value += (raw - s.value) * Clamp(alpha, 0, 1)
	s.lastTime = t
	return s.value
}

// Value returns the current smoothed value without advancing
func (s *Smoother) Value() float64 {
	return s.value
}

// Reset clears carried state
func (s *Smoother) Reset() {
	*s = Smoother{}
}
