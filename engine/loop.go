package engine

import (
	"github.com/entanglelab/qorbit/event"
)

// Loop owns the fixed-order update pipeline. One Tick consumes pending
// control events, applies loop-owned toggles, dispatches the rest to
// registered handlers, then runs every system in priority order.
// Single consumer: Tick must only be called from one goroutine.
type Loop struct {
	ctx      *Context
	systems  []System
	handlers map[event.Type][]EventHandler
}

func NewLoop(ctx *Context) *Loop {
	return &Loop{
		ctx:      ctx,
		handlers: make(map[event.Type][]EventHandler),
	}
}

// Context returns the shared animation context
func (l *Loop) Context() *Context {
	return l.ctx
}

// AddSystem registers a system and keeps the list priority-sorted
func (l *Loop) AddSystem(s System) {
	l.systems = append(l.systems, s)

	// Bubble sort, small N
	for i := 0; i < len(l.systems)-1; i++ {
		for j := 0; j < len(l.systems)-i-1; j++ {
			if l.systems[j].Priority() > l.systems[j+1].Priority() {
				l.systems[j], l.systems[j+1] = l.systems[j+1], l.systems[j]
			}
		}
	}

	if h, ok := s.(EventHandler); ok {
		for _, t := range h.EventTypes() {
			l.handlers[t] = append(l.handlers[t], h)
		}
	}
}

// Tick runs one full update cycle
func (l *Loop) Tick() {
	for _, ev := range l.ctx.Events.Consume() {
		l.apply(ev)
	}

	if !l.ctx.Running {
		return
	}

	l.ctx.Clock.Tick()
	l.ctx.Rotation += l.ctx.RotationSpeed

	for _, s := range l.systems {
		s.Update(l.ctx)
	}
}

// apply handles loop-owned control events and dispatches the rest
func (l *Loop) apply(ev event.Event) {
	switch ev.Type {
	case event.TypeToggleAnimation:
		l.ctx.Running = !l.ctx.Running
		if l.ctx.Running {
			l.ctx.SetStatus("animation resumed")
		} else {
			l.ctx.SetStatus("animation paused")
		}

	case event.TypeToggleConnections:
		l.ctx.ShowConnections = !l.ctx.ShowConnections

	case event.TypeResetView:
		l.ctx.Rotation = 0

	case event.TypeResize:
		l.ctx.Width = ev.X
		l.ctx.Height = ev.Y

	case event.TypeHover:
		l.ctx.HoverX = ev.X
		l.ctx.HoverY = ev.Y

	case event.TypeSwitchView:
		if l.ctx.OnSwitchView != nil {
			l.ctx.OnSwitchView(l.ctx)
		}
	}

	for _, h := range l.handlers[ev.Type] {
		h.HandleEvent(l.ctx, ev)
	}
}
