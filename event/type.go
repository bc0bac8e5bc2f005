package event

// Type identifies a control event produced by input handling
type Type uint8

const (
	TypeNone Type = iota

	// Animation control
	TypeToggleAnimation
	TypeToggleConnections
	TypeResetView

	// Expansion / release sequences
	TypeResetExpansion
	TypeRelease
	TypeResetRelease

	// Eavesdropper detection
	TypeEavesdropTrigger

	// Viewport
	TypeResize
	TypeSwitchView

	// Pointer hover, X/Y carry screen cell coordinates
	TypeHover
)

// Event is a fixed-size control message. X and Y are only meaningful
// for TypeHover and TypeResize.
type Event struct {
	Type Type
	X, Y int
}

func (t Type) String() string {
	switch t {
	case TypeToggleAnimation:
		return "toggle-animation"
	case TypeToggleConnections:
		return "toggle-connections"
	case TypeResetView:
		return "reset-view"
	case TypeResetExpansion:
		return "reset-expansion"
	case TypeRelease:
		return "release"
	case TypeResetRelease:
		return "reset-release"
	case TypeEavesdropTrigger:
		return "eavesdrop-trigger"
	case TypeResize:
		return "resize"
	case TypeSwitchView:
		return "switch-view"
	case TypeHover:
		return "hover"
	default:
		return "none"
	}
}
