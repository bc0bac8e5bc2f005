package render

import (
	"github.com/entanglelab/qorbit/system"
)

// BeamRenderer draws the eavesdropper probe while it flies and a
// crosshair on the struck body while the alarm holds
type BeamRenderer struct {
	detector *system.DetectorSystem
}

func NewBeamRenderer(det *system.DetectorSystem) *BeamRenderer {
	return &BeamRenderer{detector: det}
}

func (r *BeamRenderer) Render(ctx Context, buf *Buffer) {
	// A probe only renders in the scene it was launched into; after a
	// view switch the detector aborts on its next update, but a paused
	// loop can render first.
	if r.detector.State() != system.DetectorIdle && r.detector.Scene() != ctx.Scene {
		return
	}

	switch r.detector.State() {
	case system.DetectorFiring:
		x, y, depth, ok := ctx.Proj.Project(r.detector.BeamPos())
		if ok {
			buf.Set(x, y, '✦', system.AlarmColor, depth+0.1)
		}

	case system.DetectorDetected:
		target := r.detector.Target()
		if target < 0 {
			return
		}
		x, y, depth, ok := ctx.Proj.Project(ctx.Scene.Bodies.Pos[target])
		if !ok {
			return
		}
		// Blink the crosshair on alternating frames
		if ctx.Frame%20 < 10 {
			buf.Set(x-1, y, '✕', system.AlarmColor, depth+0.1)
			buf.Set(x+1, y, '✕', system.AlarmColor, depth+0.1)
		}
	}
}
