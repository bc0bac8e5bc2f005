package engine

import (
	"github.com/entanglelab/qorbit/event"
)

// Update priorities. Systems run ascending, so progress updates land
// before orbital offsets, styling before edge endpoint refresh.
const (
	PriorityExpansion   = 100
	PriorityRelease     = 110
	PriorityOrbit       = 200
	PriorityStyle       = 300
	PriorityDetector    = 350
	PriorityConnections = 400
)

// System is one per-tick update stage
type System interface {
	Name() string
	Priority() int
	Update(ctx *Context)
}

// EventHandler is implemented by systems that react to control events
type EventHandler interface {
	EventTypes() []event.Type
	HandleEvent(ctx *Context, ev event.Event)
}
