package engine

import (
	"github.com/entanglelab/qorbit/event"
	"github.com/entanglelab/qorbit/scene"
	"github.com/entanglelab/qorbit/vmath"
)

// StatusFunc receives detector and control status text. The animation
// core has no terminal coupling; the front-end decides where the text
// goes.
type StatusFunc func(msg string)

// Context carries all shared animation state explicitly. Systems read
// and mutate it only from the loop goroutine; input producers talk to
// it exclusively through the event queue.
type Context struct {
	Scene  *scene.Scene
	Clock  *SimClock
	Time   TimeProvider
	Rand   *vmath.FastRand
	Events *event.Queue

	// Loop-owned toggles, flipped by control events, read next tick
	Running         bool
	ShowConnections bool

	// View rotation about the Y axis, advanced per tick while running
	Rotation      float64
	RotationSpeed float64

	// Light direction angle for the pseudo-lighting factor
	LightAngle float64

	// Pointer state: last hover cell and resolved body handle (-1 = none)
	HoverX, HoverY int
	Hovered        int

	// Viewport dimensions in cells
	Width, Height int

	// Status sink, nil-safe via SetStatus
	Status StatusFunc

	// Set by the front-end; invoked when the user switches views
	OnSwitchView func(*Context)
}

// NewContext wires a context around a scene with default control state
func NewContext(sc *scene.Scene, tp TimeProvider, seed uint64) *Context {
	return &Context{
		Scene:           sc,
		Clock:           NewSimClock(DefaultClockStep),
		Time:            tp,
		Rand:            vmath.NewFastRand(seed),
		Events:          event.NewQueue(),
		Running:         true,
		ShowConnections: true,
		RotationSpeed:   0.005,
		LightAngle:      0.6,
		Hovered:         -1,
		HoverX:          -1,
		HoverY:          -1,
	}
}

// SetStatus forwards text to the status sink when one is attached
func (c *Context) SetStatus(msg string) {
	if c.Status != nil {
		c.Status(msg)
	}
}

// SwapScene replaces the active scene and resets view rotation
func (c *Context) SwapScene(sc *scene.Scene) {
	c.Scene = sc
	c.Rotation = 0
	c.Hovered = -1
}
