package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// EdgeRenderer draws connection lines between cached edge endpoints
// with a simple Bresenham walk, skipped entirely when connections are
// toggled off.
type EdgeRenderer struct{}

func NewEdgeRenderer() *EdgeRenderer {
	return &EdgeRenderer{}
}

func (r *EdgeRenderer) Render(ctx Context, buf *Buffer) {
	if !ctx.ShowConnections {
		return
	}

	black := colorful.Color{}
	for _, e := range ctx.Scene.Edges {
		x0, y0, d0, ok0 := ctx.Proj.Project(e.PosA)
		x1, y1, d1, ok1 := ctx.Proj.Project(e.PosB)
		if !ok0 && !ok1 {
			continue
		}

		shade := depthShade((d0+d1)/2, ctx.Scene.Radius)
		col := black.BlendRgb(ctx.Scene.EdgeColor, shade)
		ch := intensityGlyph(edgeRamp, shade)

		drawLine(buf, x0, y0, x1, y1, ch, col, minDepth(d0, d1))
	}
}

func minDepth(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// drawLine walks a Bresenham segment, writing with the given depth so
// bodies in front of the line keep their glyphs
func drawLine(buf *Buffer, x0, y0, x1, y1 int, ch rune, col colorful.Color, depth float64) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		buf.Set(x, y, ch, col, depth)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
