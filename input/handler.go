package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/entanglelab/qorbit/event"
)

// Handler translates terminal events into control events on the queue.
// It runs on the input-polling goroutine; the queue is the only thing
// it shares with the animation loop.
type Handler struct {
	Events *event.Queue

	// OnForceResize recomputes the viewport outside the normal resize
	// path (Ctrl+R)
	OnForceResize func()
}

func NewHandler(q *event.Queue) *Handler {
	return &Handler{Events: q}
}

// HandleEvent processes one terminal event. Returns false when the
// program should exit.
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		action := Lookup(tev)
		switch action {
		case ActionQuit:
			return false
		case ActionForceResize:
			if h.OnForceResize != nil {
				h.OnForceResize()
			}
		default:
			if ce, ok := ControlEvent(action); ok {
				h.Events.Push(ce)
			}
		}

	case *tcell.EventMouse:
		x, y := tev.Position()
		h.Events.Push(event.Event{Type: event.TypeHover, X: x, Y: y})

	case *tcell.EventResize:
		w, hgt := tev.Size()
		h.Events.Push(event.Event{Type: event.TypeResize, X: w, Y: hgt})
	}
	return true
}
