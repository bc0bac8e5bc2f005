package system

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/entanglelab/qorbit/engine"
	"github.com/entanglelab/qorbit/event"
	"github.com/entanglelab/qorbit/scene"
	"github.com/entanglelab/qorbit/vmath"
)

// DetectorState is the eavesdropper detection FSM state
type DetectorState int

const (
	DetectorIdle DetectorState = iota
	DetectorFiring
	DetectorDetected
)

func (s DetectorState) String() string {
	switch s {
	case DetectorFiring:
		return "firing"
	case DetectorDetected:
		return "detected"
	default:
		return "idle"
	}
}

const (
	// BeamFlightDuration is probe travel time in clock units
	BeamFlightDuration = 1.2

	// DetectedDuration is how long the alarm holds before auto-reset
	DetectedDuration = 3 * time.Second

	// beamLaunchDistance is the probe start distance as a multiple of
	// the scene radius
	beamLaunchDistance = 2.2
)

// AlarmColor tints every body and edge while the detector holds
var AlarmColor = colorful.Color{R: 0.95, G: 0.18, B: 0.16}

// DetectorSystem runs the Idle → Firing → Detected → Idle interaction:
// a trigger launches an eased probe beam at a random body; arrival
// recolors the whole scene to the alarm color; a fixed wall-clock delay
// later the original colors are restored exactly. Triggering outside
// Idle is a no-op.
type DetectorSystem struct {
	state      DetectorState
	target     int
	sc         *scene.Scene
	beamStart  vmath.Vec3
	beamPos    vmath.Vec3
	progress   float64
	detectedAt time.Time

	// OnAlarm fires once on beam arrival; the front-end hangs the
	// audio cue here so this system stays sound-agnostic
	OnAlarm func()
}

func NewDetectorSystem() *DetectorSystem {
	return &DetectorSystem{target: -1}
}

func (s *DetectorSystem) Name() string {
	return "detector"
}

func (s *DetectorSystem) Priority() int {
	return engine.PriorityDetector
}

func (s *DetectorSystem) EventTypes() []event.Type {
	return []event.Type{event.TypeEavesdropTrigger}
}

func (s *DetectorSystem) HandleEvent(ctx *engine.Context, ev event.Event) {
	if s.state != DetectorIdle {
		// Re-entry guard: a probe in flight or a held alarm wins
		return
	}

	b := ctx.Scene.Bodies
	if b.Count == 0 {
		return
	}

	s.target = ctx.Rand.Intn(b.Count)
	s.sc = ctx.Scene
	s.progress = 0
	s.state = DetectorFiring

	// Launch from outside the shell along the target's radial
	dir := vmath.V3Normalize(b.Base[s.target])
	if dir == (vmath.Vec3{}) {
		dir = vmath.Vec3{Y: 1}
	}
	s.beamStart = vmath.V3Scale(dir, ctx.Scene.Radius*beamLaunchDistance)
	s.beamPos = s.beamStart

	ctx.SetStatus(fmt.Sprintf("probing %s for interception", ctx.Scene.Labels[s.target]))
}

func (s *DetectorSystem) Update(ctx *engine.Context) {
	// The target handle is only valid in the scene that was probed.
	// A view switch mid-probe aborts the run and clears any alarm
	// tint left on the swapped-out scene.
	if s.state != DetectorIdle && ctx.Scene != s.sc {
		s.sc.RestoreColors()
		s.state = DetectorIdle
		s.target = -1
		s.sc = nil
		ctx.SetStatus("probe aborted")
		return
	}

	switch s.state {
	case DetectorFiring:
		s.progress += ctx.Clock.Step() / BeamFlightDuration
		if s.progress >= 1.0 {
			s.trip(ctx)
			return
		}
		targetPos := ctx.Scene.Bodies.Pos[s.target]
		s.beamPos = vmath.V3Lerp(s.beamStart, targetPos, vmath.EaseOutCubic(s.progress))

	case DetectorDetected:
		if ctx.Time.Now().Sub(s.detectedAt) >= DetectedDuration {
			ctx.Scene.RestoreColors()
			s.state = DetectorIdle
			s.target = -1
			s.sc = nil
			ctx.SetStatus("channel secure")
		}
	}
}

// trip transitions Firing → Detected: alarm colors, status, audio cue
func (s *DetectorSystem) trip(ctx *engine.Context) {
	s.state = DetectorDetected
	s.detectedAt = ctx.Time.Now()

	ctx.Scene.Bodies.TintAll(AlarmColor, 1.0)
	ctx.Scene.EdgeColor = AlarmColor

	ctx.SetStatus(fmt.Sprintf("EAVESDROPPER DETECTED at %s", ctx.Scene.Labels[s.target]))
	if s.OnAlarm != nil {
		s.OnAlarm()
	}
}

// State returns the current FSM state
func (s *DetectorSystem) State() DetectorState {
	return s.state
}

// Target returns the probed body handle, -1 when idle
func (s *DetectorSystem) Target() int {
	return s.target
}

// Scene returns the scene the current probe was launched into, nil
// when idle. The target handle must not be used against any other
// scene.
func (s *DetectorSystem) Scene() *scene.Scene {
	return s.sc
}

// BeamPos returns the probe position while firing
func (s *DetectorSystem) BeamPos() vmath.Vec3 {
	return s.beamPos
}
