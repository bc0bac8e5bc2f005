package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/entanglelab/qorbit/system"
)

// BodyRenderer draws every body as a glyph scaled by glow and depth
type BodyRenderer struct{}

func NewBodyRenderer() *BodyRenderer {
	return &BodyRenderer{}
}

func (r *BodyRenderer) Render(ctx Context, buf *Buffer) {
	b := ctx.Scene.Bodies
	black := colorful.Color{}

	for i := 0; i < b.Count; i++ {
		x, y, depth, ok := ctx.Proj.Project(b.Pos[i])
		if !ok {
			continue
		}

		shade := depthShade(depth, ctx.Scene.Radius)

		// Normalize glow to [0,1] inside its documented band
		glowN := (b.Glow[i] - system.GlowMin) / (system.GlowMax - system.GlowMin)
		intensity := glowN*0.7 + 0.3*shade

		ch := intensityGlyph(bodyRamp, intensity)
		col := black.BlendRgb(b.Color[i], shade)

		if b.Highlight[i] {
			// Hovered body renders at full brightness with side marks
			ch = '◉'
			col = b.Color[i]
			buf.Set(x-1, y, '[', col, depth)
			buf.Set(x+1, y, ']', col, depth)
		}

		buf.Set(x, y, ch, col, depth)
	}
}
