package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	alarmFreq     = 880.0
	alarmDuration = 180 * time.Millisecond
)

// Alarm plays the eavesdropper detection tone. Initialization is
// optional; a nil or uninitialized Alarm silently does nothing, so the
// visualizer runs fine on machines without audio output.
type Alarm struct {
	ready bool
}

// NewAlarm initializes the speaker. The error is informational; the
// returned Alarm is always usable.
func NewAlarm() (*Alarm, error) {
	a := &Alarm{}
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.ready = true
	}
	return a, err
}

// Play emits one alarm tone, non-blocking
func (a *Alarm) Play() {
	if a == nil || !a.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, alarmFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(alarmDuration), sine))
}
