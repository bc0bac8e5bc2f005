package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/entanglelab/qorbit/vmath"
)

// Edge connects two body handles. PosA/PosB cache the endpoint
// positions and are refreshed from the store every tick, so a drawn
// edge never goes stale.
type Edge struct {
	A, B       int
	PosA, PosB vmath.Vec3
}

// Kind selects which constellation a scene represents
type Kind int

const (
	KindConstellation Kind = iota
	KindGHZ
)

// Scene is one complete view: bodies, edges, and shared styling state
type Scene struct {
	Kind   Kind
	Name   string
	Radius float64

	Bodies *BodyStore
	Edges  []Edge

	EdgeBaseColor colorful.Color
	EdgeColor     colorful.Color

	// Labels indexed by body handle, shown in the hover tooltip
	Labels []string
}

// Harmonic palette: triad role by index % 3
var triadPalette = []colorful.Color{
	{R: 0.16, G: 0.78, B: 0.89}, // full-rate, cyan
	{R: 0.55, G: 0.36, B: 0.96}, // third-rate, violet
	{R: 0.96, G: 0.76, B: 0.26}, // sixth-rate, amber
}

var (
	edgeColor = colorful.Color{R: 0.22, G: 0.42, B: 0.58}
	hubColor  = colorful.Color{R: 0.98, G: 0.84, B: 0.30}
	spokeCol  = colorful.Color{R: 0.60, G: 0.40, B: 0.95}
)

// NewConstellation builds the satellite view: n bodies on a golden-angle
// shell of the given radius, triad edges between consecutive groups of
// three. Bodies start collapsed at the origin; the expansion system
// carries them out to Base.
func NewConstellation(n int, radius float64) *Scene {
	s := &Scene{
		Kind:          KindConstellation,
		Name:          "constellation",
		Radius:        radius,
		Bodies:        NewBodyStore(n),
		EdgeBaseColor: edgeColor,
		EdgeColor:     edgeColor,
		Labels:        make([]string, n),
	}

	b := s.Bodies
	for i := 0; i < n; i++ {
		b.Base[i] = vmath.SpherePoint(i, n, radius)
		b.Phase[i] = float64(i) * vmath.GoldenAngle
		b.BaseColor[i] = triadPalette[i%3]
		b.Color[i] = b.BaseColor[i]
		b.Glow[i] = 0.12
		s.Labels[i] = satLabel(i)
	}

	// Triad edges: (i, i+1), (i+1, i+2), (i+2, i)
	for i := 0; i+2 < n; i += 3 {
		s.Edges = append(s.Edges,
			Edge{A: i, B: i + 1},
			Edge{A: i + 1, B: i + 2},
			Edge{A: i + 2, B: i},
		)
	}
	return s
}

// NewGHZRing builds the qubit view: n bodies on a smaller shell with hub
// edges from qubit 0 to every other body.
func NewGHZRing(n int, radius float64) *Scene {
	s := &Scene{
		Kind:          KindGHZ,
		Name:          "ghz",
		Radius:        radius,
		Bodies:        NewBodyStore(n),
		EdgeBaseColor: edgeColor,
		EdgeColor:     edgeColor,
		Labels:        make([]string, n),
	}

	b := s.Bodies
	for i := 0; i < n; i++ {
		b.Base[i] = vmath.SpherePoint(i, n, radius)
		b.Phase[i] = float64(i) * vmath.GoldenAngle
		if i == 0 {
			b.BaseColor[i] = hubColor
		} else {
			b.BaseColor[i] = spokeCol
		}
		b.Color[i] = b.BaseColor[i]
		b.Glow[i] = 0.12
		s.Labels[i] = qubitLabel(i)
	}

	for i := 1; i < n; i++ {
		s.Edges = append(s.Edges, Edge{A: 0, B: i})
	}
	return s
}

// RestoreColors resets bodies and edges to their pre-alarm colors
func (s *Scene) RestoreColors() {
	s.Bodies.ResetColors()
	s.EdgeColor = s.EdgeBaseColor
}

func satLabel(i int) string {
	return fmt.Sprintf("SAT-%03d", i)
}

func qubitLabel(i int) string {
	if i == 0 {
		return "Q00 (hub)"
	}
	return fmt.Sprintf("Q%02d", i)
}
