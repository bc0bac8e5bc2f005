package system

import (
	"math"

	"github.com/entanglelab/qorbit/engine"
	"github.com/entanglelab/qorbit/vmath"
)

// Glow intensity bounds, enforced for every body on every tick
const (
	GlowMin = 0.12
	GlowMax = 0.30
)

// Harmonic multipliers cycle with period 3 over the body handle:
// full rate, third rate, sixth rate
var harmonics = [3]float64{1.0, 1.0 / 3.0, 1.0 / 6.0}

// HarmonicMultiplier returns the triad pulse-rate multiplier for a body
func HarmonicMultiplier(i int) float64 {
	return harmonics[i%3]
}

// LightingFactor maps an angle to pseudo-light intensity in [0, 1]
// Facing the light (angle 0) gives 1, facing away (π) gives 0
func LightingFactor(angle float64) float64 {
	return (math.Cos(angle) + 1.0) / 2.0
}

// ShadowOffset is the projected shadow displacement for a body at
// height y under a light inclined by lightAngle
func ShadowOffset(y, lightAngle float64) float64 {
	return math.Abs(y) * math.Tan(lightAngle)
}

// Style is the per-body, per-frame style record
type Style struct {
	Noise    float64 // multiplicative jitter around 1.0, ±5%
	Lighting float64 // [0, 1]
	Shadow   float64 // world-unit shadow displacement
	Harmonic float64 // 1, 1/3 or 1/6
	Glow     float64 // [GlowMin, GlowMax]
}

// StylingSystem computes the unified style for every body each tick.
// One smoothed noise scalar is carried across frames and shared by all
// bodies; it is the only mutable styling state.
type StylingSystem struct {
	smooth vmath.Smoother
}

func NewStylingSystem() *StylingSystem {
	return &StylingSystem{}
}

func (s *StylingSystem) Name() string {
	return "styling"
}

func (s *StylingSystem) Priority() int {
	return engine.PriorityStyle
}

// ComputeStyle derives the style record for body i. smoothed is the
// frame's shared noise sample in [-1, 1].
func (s *StylingSystem) ComputeStyle(i int, t, rotation, lightAngle float64, base vmath.Vec3, smoothed float64) Style {
	harmonic := HarmonicMultiplier(i)
	noise := 1.0 + 0.05*vmath.Clamp(smoothed, -1, 1)

	// Per-body light incidence follows the view rotation plus the
	// body's longitudinal phase
	lighting := LightingFactor(rotation + float64(i)*vmath.GoldenAngle)

	pulse := (math.Sin(t*3.0*harmonic+float64(i)*vmath.GoldenAngle) + 1.0) / 2.0
	glow := (GlowMin + (GlowMax-GlowMin)*lighting*pulse) * noise

	return Style{
		Noise:    noise,
		Lighting: lighting,
		Shadow:   ShadowOffset(base.Y, lightAngle),
		Harmonic: harmonic,
		Glow:     vmath.Clamp(glow, GlowMin, GlowMax),
	}
}

func (s *StylingSystem) Update(ctx *engine.Context) {
	t := ctx.Clock.T()
	smoothed := s.smooth.Sample(t*0.5, 0.15)

	b := ctx.Scene.Bodies
	for i := 0; i < b.Count; i++ {
		st := s.ComputeStyle(i, t, ctx.Rotation, ctx.LightAngle, b.Base[i], smoothed)
		b.Glow[i] = st.Glow
	}
}
