package vmath

import (
	"math"
)

// FlattenY is the vertical squash applied to sphere layouts so the
// constellation reads as a slightly oblate shell
const FlattenY = 0.8

// SpherePoint maps index i in [0, n) to a point on a sphere of the given
// radius using golden-angle spacing. Latitude comes from an even vertical
// slicing, longitude advances by GoldenAngle per index, which keeps
// neighboring points near-uniformly separated for any n.
func SpherePoint(i, n int, radius float64) Vec3 {
	var y float64
	if n <= 1 {
		y = 1.0
	} else {
		y = 1.0 - (float64(i)/float64(n-1))*2.0
	}

	// Ring radius at this latitude
	r := math.Sqrt(math.Max(0, 1.0-y*y))
	theta := float64(i) * GoldenAngle
	sin, cos := math.Sincos(theta)

	return Vec3{
		X: cos * r * radius,
		Y: y * radius * FlattenY,
		Z: sin * r * radius,
	}
}

// SpherePoints returns the full n-point golden-angle layout
func SpherePoints(n int, radius float64) []Vec3 {
	pts := make([]Vec3, n)
	for i := 0; i < n; i++ {
		pts[i] = SpherePoint(i, n, radius)
	}
	return pts
}
