package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/entanglelab/qorbit/event"
)

// Action is what a key press means, independent of the key itself
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleAnimation
	ActionToggleConnections
	ActionResetView
	ActionResetExpansion
	ActionRelease
	ActionResetRelease
	ActionEavesdrop
	ActionSwitchView
	ActionForceResize
)

// runeBindings maps printable keys to actions, case-insensitive
var runeBindings = map[rune]Action{
	' ': ActionToggleAnimation,
	'c': ActionToggleConnections,
	'x': ActionResetView,
	'e': ActionResetExpansion,
	'r': ActionRelease,
	'u': ActionResetRelease,
	'f': ActionEavesdrop,
	'g': ActionSwitchView,
	'q': ActionQuit,
}

// keyBindings maps special keys to actions
var keyBindings = map[tcell.Key]Action{
	tcell.KeyEscape: ActionQuit,
	tcell.KeyCtrlC:  ActionQuit,
	tcell.KeyCtrlR:  ActionForceResize,
}

// Lookup resolves a tcell key event to an action
func Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return runeBindings[r]
	}
	return keyBindings[ev.Key()]
}

// controlEvents maps actions to their control event type. Quit and
// force-resize never reach the queue; the front-end owns them.
var controlEvents = map[Action]event.Type{
	ActionToggleAnimation:   event.TypeToggleAnimation,
	ActionToggleConnections: event.TypeToggleConnections,
	ActionResetView:         event.TypeResetView,
	ActionResetExpansion:    event.TypeResetExpansion,
	ActionRelease:           event.TypeRelease,
	ActionResetRelease:      event.TypeResetRelease,
	ActionEavesdrop:         event.TypeEavesdropTrigger,
	ActionSwitchView:        event.TypeSwitchView,
}

// ControlEvent returns the queue event for an action, ok=false when
// the action is handled outside the animation loop
func ControlEvent(a Action) (event.Event, bool) {
	t, ok := controlEvents[a]
	if !ok {
		return event.Event{}, false
	}
	return event.Event{Type: t}, true
}
