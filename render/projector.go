package render

import (
	"github.com/entanglelab/qorbit/scene"
	"github.com/entanglelab/qorbit/vmath"
)

// cellAspect compensates for terminal cells being roughly twice as
// tall as wide
const cellAspect = 0.5

// Projector maps world space onto the cell grid: rotate about Y by the
// current view angle, then orthographic projection centered in the
// viewport. Depth is the rotated Z, positive toward the viewer.
type Projector struct {
	Width, Height int
	Rotation      float64
	scale         float64
}

// NewProjector sizes the projection so a sphere of the given radius
// fits the viewport with a margin
func NewProjector(width, height int, radius, rotation float64) Projector {
	// Leave two rows for the status area and a margin for drift
	usableH := float64(height-2) * 0.92
	usableW := float64(width) * 0.92 * cellAspect
	extent := radius * 2.1 // release drift headroom
	scale := usableH
	if usableW < usableH {
		scale = usableW
	}
	if extent > 0 {
		scale /= extent
	}
	return Projector{
		Width:    width,
		Height:   height,
		Rotation: rotation,
		scale:    scale,
	}
}

// Project returns the screen cell and depth for a world position
// ok is false when the point lands outside the viewport
func (p Projector) Project(v vmath.Vec3) (x, y int, depth float64, ok bool) {
	r := vmath.V3RotateY(v, p.Rotation)

	sx := float64(p.Width)/2 + r.X*p.scale/cellAspect
	sy := float64(p.Height-2)/2 - r.Y*p.scale

	x = int(sx + 0.5)
	y = int(sy + 0.5)
	depth = r.Z
	ok = x >= 0 && x < p.Width && y >= 0 && y < p.Height-2
	return
}

// PickRadius is the hover hit distance in cells
const PickRadius = 2.0

// Pick resolves the pointer cell to the nearest projected body within
// PickRadius, preferring the body closest to the viewer on ties.
// Returns -1 on miss.
func (p Projector) Pick(sc *scene.Scene, px, py int) int {
	if px < 0 || py < 0 {
		return -1
	}

	best := -1
	bestDist := PickRadius * PickRadius
	bestDepth := -1e18

	for i := 0; i < sc.Bodies.Count; i++ {
		x, y, depth, ok := p.Project(sc.Bodies.Pos[i])
		if !ok {
			continue
		}
		dx := float64(x - px)
		dy := float64(y - py)
		d := dx*dx + dy*dy
		if d < bestDist || (d == bestDist && depth > bestDepth) {
			best = i
			bestDist = d
			bestDepth = depth
		}
	}
	return best
}
