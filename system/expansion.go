package system

import (
	"github.com/entanglelab/qorbit/engine"
	"github.com/entanglelab/qorbit/event"
	"github.com/entanglelab/qorbit/vmath"
)

// ExpansionDuration is the clock-time a body takes to travel from the
// origin to its rest position
const ExpansionDuration = 2.0

// expansionStagger delays each body's launch slightly by handle so the
// shell blooms outward instead of popping in one frame
const expansionStagger = 0.004

// ExpansionSystem drives the big-bang opening sequence: every body
// starts collapsed at the origin and eases out to its golden-angle rest
// position. Runs first so later systems see the expanded base position.
type ExpansionSystem struct {
	elapsed float64
}

func NewExpansionSystem() *ExpansionSystem {
	return &ExpansionSystem{}
}

func (s *ExpansionSystem) Name() string {
	return "expansion"
}

func (s *ExpansionSystem) Priority() int {
	return engine.PriorityExpansion
}

func (s *ExpansionSystem) EventTypes() []event.Type {
	return []event.Type{event.TypeResetExpansion}
}

func (s *ExpansionSystem) HandleEvent(ctx *engine.Context, ev event.Event) {
	s.elapsed = 0
	b := ctx.Scene.Bodies
	for i := 0; i < b.Count; i++ {
		b.Expansion[i] = 0
		b.Pos[i] = vmath.Vec3{}
	}
	ctx.SetStatus("expansion restarted")
}

func (s *ExpansionSystem) Update(ctx *engine.Context) {
	s.elapsed += ctx.Clock.Step()

	b := ctx.Scene.Bodies
	for i := 0; i < b.Count; i++ {
		local := (s.elapsed - float64(i)*expansionStagger) / ExpansionDuration
		b.Expansion[i] = vmath.Clamp(local, 0, 1)
		eased := vmath.EaseOutCubic(b.Expansion[i])
		b.Pos[i] = vmath.V3Scale(b.Base[i], eased)
	}
}
