package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/entanglelab/qorbit/engine"
)

// statusHold is how long a pushed message stays visible
const statusHold = 4 * time.Second

var (
	statusDim    = colorful.Color{R: 0.45, G: 0.50, B: 0.58}
	statusBright = colorful.Color{R: 0.85, G: 0.88, B: 0.92}
)

// StatusBarRenderer draws the bottom two rows: transient status text
// and a fixed key legend. SetMessage is safe to call from any
// goroutine since the animation loop pushes status while the render
// loop reads it.
type StatusBarRenderer struct {
	time engine.TimeProvider

	mu      sync.Mutex
	message string
	setAt   time.Time
}

func NewStatusBarRenderer(tp engine.TimeProvider) *StatusBarRenderer {
	return &StatusBarRenderer{time: tp}
}

// SetMessage replaces the transient status line
func (r *StatusBarRenderer) SetMessage(msg string) {
	r.mu.Lock()
	r.message = msg
	r.setAt = r.time.Now()
	r.mu.Unlock()
}

func (r *StatusBarRenderer) Render(ctx Context, buf *Buffer) {
	r.mu.Lock()
	msg := r.message
	setAt := r.setAt
	r.mu.Unlock()

	row := ctx.Height - 2
	state := "running"
	if !ctx.Running {
		state = "paused"
	}
	left := fmt.Sprintf(" %s · t=%.2f · %s", ctx.Scene.Name, ctx.T, state)
	buf.Text(0, row, left, statusDim)

	if msg != "" && ctx.Now.Sub(setAt) < statusHold {
		buf.Text(len(left)+3, row, msg, statusBright)
	}

	legend := " space pause · c links · e expand · r release · f probe · g view · q quit"
	buf.Text(0, ctx.Height-1, legend, statusDim)
}
