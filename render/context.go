package render

import (
	"time"

	"github.com/entanglelab/qorbit/engine"
	"github.com/entanglelab/qorbit/scene"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	Scene *scene.Scene

	T        float64
	Frame    int64
	Now      time.Time
	Rotation float64

	Running         bool
	ShowConnections bool
	Hovered         int
	HoverX, HoverY  int

	Width, Height int

	Proj Projector
}

// NewContext snapshots the animation context for one rendered frame
func NewContext(ectx *engine.Context) Context {
	return Context{
		Scene:           ectx.Scene,
		T:               ectx.Clock.T(),
		Frame:           ectx.Clock.Frame(),
		Now:             ectx.Time.Now(),
		Rotation:        ectx.Rotation,
		Running:         ectx.Running,
		ShowConnections: ectx.ShowConnections,
		Hovered:         ectx.Hovered,
		HoverX:          ectx.HoverX,
		HoverY:          ectx.HoverY,
		Width:           ectx.Width,
		Height:          ectx.Height,
		Proj:            NewProjector(ectx.Width, ectx.Height, ectx.Scene.Radius, ectx.Rotation),
	}
}
