package system

import (
	"math"

	"github.com/entanglelab/qorbit/engine"
	"github.com/entanglelab/qorbit/vmath"
)

const (
	// orbitBreathAmp is the radial breathing amplitude
	orbitBreathAmp = 0.02

	// orbitBobAmp is the vertical bob amplitude in world units
	orbitBobAmp = 0.15

	orbitBobRate = 0.7
)

// OrbitSystem layers small per-body oscillation on the expanded
// position: radial breathing plus a vertical bob, both offset by the
// body's phase so the shell shimmers instead of pulsing in lockstep.
type OrbitSystem struct{}

func NewOrbitSystem() *OrbitSystem {
	return &OrbitSystem{}
}

func (s *OrbitSystem) Name() string {
	return "orbit"
}

func (s *OrbitSystem) Priority() int {
	return engine.PriorityOrbit
}

func (s *OrbitSystem) Update(ctx *engine.Context) {
	t := ctx.Clock.T()
	b := ctx.Scene.Bodies

	for i := 0; i < b.Count; i++ {
		breath := 1.0 + orbitBreathAmp*math.Sin(t+b.Phase[i])
		b.Pos[i] = vmath.V3Scale(b.Pos[i], breath)
		b.Pos[i].Y += orbitBobAmp * math.Sin(t*orbitBobRate+b.Phase[i]) * b.Expansion[i]
	}
}
