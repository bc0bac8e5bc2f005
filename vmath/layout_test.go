package vmath

import (
	"math"
	"testing"
)

func TestSpherePointEndpoints(t *testing.T) {
	// 144 points, radius 12: poles land exactly on the flattened Y axis
	first := SpherePoint(0, 144, 12)
	if math.Abs(first.X) > 1e-9 || math.Abs(first.Z) > 1e-9 {
		t.Errorf("first point off axis: %+v", first)
	}
	if math.Abs(first.Y-9.6) > 1e-9 {
		t.Errorf("first point Y = %v, want 9.6", first.Y)
	}

	last := SpherePoint(143, 144, 12)
	if math.Abs(last.Y+9.6) > 1e-9 {
		t.Errorf("last point Y = %v, want -9.6", last.Y)
	}
	if math.Abs(last.X) > 1e-6 || math.Abs(last.Z) > 1e-6 {
		t.Errorf("last point off axis: %+v", last)
	}
}

func TestSpherePointsOnShell(t *testing.T) {
	const (
		n      = 144
		radius = 12.0
	)
	for i, p := range SpherePoints(n, radius) {
		// Undo the vertical flattening before measuring the shell distance
		unflat := Vec3{p.X, p.Y / FlattenY, p.Z}
		d := V3Mag(unflat)
		if math.Abs(d-radius) > 1e-9 {
			t.Fatalf("point %d at distance %v, want %v", i, d, radius)
		}
	}
}

func TestSpherePointsDistinct(t *testing.T) {
	for _, n := range []int{2, 12, 144, 1000} {
		pts := SpherePoints(n, 10)
		for i := 0; i < len(pts); i++ {
			for j := i + 1; j < len(pts); j++ {
				if V3Dist(pts[i], pts[j]) < 1e-6 {
					t.Fatalf("n=%d: points %d and %d coincide", n, i, j)
				}
			}
		}
	}
}

func TestSpherePointSingle(t *testing.T) {
	p := SpherePoint(0, 1, 5)
	want := Vec3{0, 5 * FlattenY, 0}
	if V3Dist(p, want) > 1e-9 {
		t.Errorf("single point = %+v, want %+v", p, want)
	}
}

func TestSpherePointsDeterministic(t *testing.T) {
	a := SpherePoints(144, 12)
	b := SpherePoints(144, 12)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("layout not deterministic at %d", i)
		}
	}
}
