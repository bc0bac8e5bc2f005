package vmath

import (
	"math"
	"testing"
)

func TestGradHashRange(t *testing.T) {
	for i := int64(-500); i < 500; i++ {
		g := GradHash(i)
		if g < -1.0 || g > 1.0 {
			t.Fatalf("GradHash(%d) = %v out of [-1,1]", i, g)
		}
	}
}

func TestFractalBounds(t *testing.T) {
	for x := -20.0; x < 20.0; x += 0.037 {
		v := Fractal(x)
		if v < -1.0 || v > 1.0 {
			t.Fatalf("Fractal(%v) = %v out of [-1,1]", x, v)
		}
	}
}

func TestFadeEndpoints(t *testing.T) {
	if Fade(0) != 0 {
		t.Errorf("Fade(0) = %v", Fade(0))
	}
	if Fade(1) != 1 {
		t.Errorf("Fade(1) = %v", Fade(1))
	}
	if math.Abs(Fade(0.5)-0.5) > 1e-12 {
		t.Errorf("Fade(0.5) = %v, want 0.5", Fade(0.5))
	}
}

func TestSmootherConverges(t *testing.T) {
	var s Smoother

	// First sample seeds directly
	first := s.Sample(3.7, 0.1)
	if first != s.Value() {
		t.Fatalf("seed sample %v != carried value %v", first, s.Value())
	}

	// Repeated sampling at a fixed point converges to the raw noise there
	target := Fractal(5.0)
	for i := 0; i < 400; i++ {
		s.Sample(5.0+float64(i)*1e-9, 0.2)
	}
	if math.Abs(s.Value()-target) > 0.01 {
		t.Errorf("smoothed value %v did not converge to %v", s.Value(), target)
	}
}

func TestSmootherSameTimeNoAdvance(t *testing.T) {
	var s Smoother
	s.Sample(1.0, 0.5)
	before := s.Value()
	s.Sample(1.0, 0.5)
	if s.Value() != before {
		t.Error("repeated sample at same time mutated state")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed diverged")
		}
	}
}

func TestFastRandFloatRange(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 = %v out of [0,1)", f)
		}
		v := r.Range(2, 5)
		if v < 2 || v >= 5 {
			t.Fatalf("Range = %v out of [2,5)", v)
		}
	}
}
