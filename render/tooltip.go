package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

var tooltipColor = colorful.Color{R: 0.92, G: 0.93, B: 0.80}

// TooltipRenderer shows the hovered body's label next to the pointer,
// nudged to stay inside the viewport
type TooltipRenderer struct{}

func NewTooltipRenderer() *TooltipRenderer {
	return &TooltipRenderer{}
}

func (r *TooltipRenderer) Render(ctx Context, buf *Buffer) {
	if ctx.Hovered < 0 || ctx.Hovered >= ctx.Scene.Bodies.Count {
		return
	}

	b := ctx.Scene.Bodies
	text := fmt.Sprintf(" %s glow %.2f ", ctx.Scene.Labels[ctx.Hovered], b.Glow[ctx.Hovered])

	x := ctx.HoverX + 2
	y := ctx.HoverY - 1
	if x+len(text) > ctx.Width {
		x = ctx.HoverX - 2 - len(text)
	}
	if y < 0 {
		y = ctx.HoverY + 1
	}
	buf.Text(x, y, text, tooltipColor)
}
