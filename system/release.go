package system

import (
	"github.com/entanglelab/qorbit/engine"
	"github.com/entanglelab/qorbit/event"
	"github.com/entanglelab/qorbit/vmath"
)

const (
	// releaseRate is drift progress gained per clock unit once released
	releaseRate = 0.25

	// releaseDriftMax caps the radial drift as a multiple of the rest
	// radius, so released bodies stay on screen
	releaseDriftMax = 0.9
)

// ReleaseSystem drifts satellites slowly off their shell once released
// and snaps them back on reset. Runs after expansion so drift scales
// the expanded position.
type ReleaseSystem struct {
	releasing bool
}

func NewReleaseSystem() *ReleaseSystem {
	return &ReleaseSystem{}
}

func (s *ReleaseSystem) Name() string {
	return "release"
}

func (s *ReleaseSystem) Priority() int {
	return engine.PriorityRelease
}

func (s *ReleaseSystem) EventTypes() []event.Type {
	return []event.Type{event.TypeRelease, event.TypeResetRelease}
}

func (s *ReleaseSystem) HandleEvent(ctx *engine.Context, ev event.Event) {
	switch ev.Type {
	case event.TypeRelease:
		if !s.releasing {
			s.releasing = true
			ctx.SetStatus("satellites released")
		}

	case event.TypeResetRelease:
		s.releasing = false
		b := ctx.Scene.Bodies
		for i := 0; i < b.Count; i++ {
			b.Release[i] = 0
		}
		ctx.SetStatus("satellites recaptured")
	}
}

func (s *ReleaseSystem) Update(ctx *engine.Context) {
	b := ctx.Scene.Bodies
	step := ctx.Clock.Step()

	for i := 0; i < b.Count; i++ {
		if s.releasing {
			// Per-body jitter desynchronizes the drift slightly
			jitter := 1.0 + 0.2*vmath.GradHash(int64(i))
			b.Release[i] = vmath.Clamp(b.Release[i]+releaseRate*step*jitter, 0, 1)
		}
		if b.Release[i] > 0 {
			drift := 1.0 + releaseDriftMax*vmath.EaseOutCubic(b.Release[i])
			b.Pos[i] = vmath.V3Scale(b.Pos[i], drift)
		}
	}
}

// Releasing reports whether the outward drift is active
func (s *ReleaseSystem) Releasing() bool {
	return s.releasing
}
