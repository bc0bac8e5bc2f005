package vmath

import (
	"math"
)

// GoldenAngle is π(3-√5) ≈ 2.39996 radians, the rotation step that
// distributes successive points most evenly around a sphere
const GoldenAngle = math.Pi * (3.0 - 2.2360679774997896)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b by t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Fade is the quintic smoothstep 6t⁵-15t⁴+10t³ used for Perlin
// interpolation, zero first and second derivative at t=0 and t=1
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}

// EaseOutCubic decelerates toward the end of the range
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	u := 1.0 - t
	return 1.0 - u*u*u
}

// EaseInOutQuad accelerates then decelerates
func EaseInOutQuad(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 2.0 * t * t
	}
	u := -2.0*t + 2.0
	return 1.0 - u*u/2.0
}

// --- Randomness ---

// FastRand is a xorshift64 generator for cosmetic jitter and target
// picking, not statistical quality
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
