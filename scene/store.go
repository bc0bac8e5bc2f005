package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/entanglelab/qorbit/vmath"
)

// BodyStore holds per-body state in parallel arrays indexed by a stable
// integer handle. Systems iterate the arrays directly; there is no
// per-body property bag.
type BodyStore struct {
	Count int

	// Layout
	Base  []vmath.Vec3 // golden-angle rest position
	Pos   []vmath.Vec3 // current animated position
	Phase []float64    // per-body animation phase offset

	// Progress state
	Expansion []float64 // 0 = at center, 1 = at rest position
	Release   []float64 // outward drift progress, 0 = captured

	// Styling
	BaseColor []colorful.Color
	Color     []colorful.Color
	Glow      []float64
	Highlight []bool
}

// NewBodyStore allocates parallel arrays for n bodies
func NewBodyStore(n int) *BodyStore {
	return &BodyStore{
		Count:     n,
		Base:      make([]vmath.Vec3, n),
		Pos:       make([]vmath.Vec3, n),
		Phase:     make([]float64, n),
		Expansion: make([]float64, n),
		Release:   make([]float64, n),
		BaseColor: make([]colorful.Color, n),
		Color:     make([]colorful.Color, n),
		Glow:      make([]float64, n),
		Highlight: make([]bool, n),
	}
}

// ResetColors restores every body to its base color
func (s *BodyStore) ResetColors() {
	copy(s.Color, s.BaseColor)
}

// TintAll blends every body color toward c by t in [0,1]
// t >= 1 assigns c exactly rather than through the blend arithmetic
func (s *BodyStore) TintAll(c colorful.Color, t float64) {
	if t >= 1 {
		for i := range s.Color {
			s.Color[i] = c
		}
		return
	}
	for i := range s.Color {
		s.Color[i] = s.BaseColor[i].BlendRgb(c, t)
	}
}
