package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/entanglelab/qorbit/engine"
)

// Priority bands for renderer registration order
type Priority int

const (
	PriorityEdges   Priority = 100
	PriorityBodies  Priority = 200
	PriorityEffects Priority = 300
	PriorityUI      Priority = 400
)

// SystemRenderer draws one visual layer into the frame buffer
type SystemRenderer interface {
	Render(ctx Context, buf *Buffer)
}

type registered struct {
	renderer SystemRenderer
	priority Priority
	seq      int
}

// Orchestrator owns the frame buffer and runs registered renderers in
// priority order each frame. It also resolves pointer hover against
// the current projection before drawing, so highlight state is ready
// for the body layer.
type Orchestrator struct {
	screen    tcell.Screen
	buf       *Buffer
	renderers []registered
	seq       int
}

func NewOrchestrator(screen tcell.Screen, width, height int) *Orchestrator {
	return &Orchestrator{
		screen: screen,
		buf:    NewBuffer(width, height),
	}
}

// Register adds a renderer at the given priority. Registration order
// breaks ties.
func (o *Orchestrator) Register(r SystemRenderer, p Priority) {
	o.renderers = append(o.renderers, registered{r, p, o.seq})
	o.seq++
	sort.SliceStable(o.renderers, func(i, j int) bool {
		if o.renderers[i].priority != o.renderers[j].priority {
			return o.renderers[i].priority < o.renderers[j].priority
		}
		return o.renderers[i].seq < o.renderers[j].seq
	})
}

// Resize adjusts the frame buffer to new screen dimensions
func (o *Orchestrator) Resize(width, height int) {
	o.buf.Resize(width, height)
}

// RenderFrame resolves hover, runs every renderer, and flushes
func (o *Orchestrator) RenderFrame(ectx *engine.Context) {
	ctx := NewContext(ectx)

	// Hover pick against this frame's projection
	prev := ectx.Hovered
	ectx.Hovered = ctx.Proj.Pick(ectx.Scene, ectx.HoverX, ectx.HoverY)
	ctx.Hovered = ectx.Hovered
	if prev != ectx.Hovered {
		b := ectx.Scene.Bodies
		if prev >= 0 && prev < b.Count {
			b.Highlight[prev] = false
		}
		if ectx.Hovered >= 0 {
			b.Highlight[ectx.Hovered] = true
		}
	}

	o.buf.Clear()
	for _, r := range o.renderers {
		r.renderer.Render(ctx, o.buf)
	}
	if o.screen != nil {
		o.buf.Flush(o.screen)
	}
}

// Buffer exposes the frame buffer for tests
func (o *Orchestrator) Buffer() *Buffer {
	return o.buf
}
