package render

// Glyph ramps from dim to bright. Intensity combines glow and depth so
// bodies on the far side of the sphere recede visually.
var (
	bodyRamp = []rune("·∙•○●◉")
	edgeRamp = []rune("·∙")
)

// intensityGlyph picks a rune from ramp for intensity in [0, 1]
func intensityGlyph(ramp []rune, intensity float64) rune {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	idx := int(intensity * float64(len(ramp)-1))
	return ramp[idx]
}

// depthShade maps rotated depth to a brightness factor in [0.35, 1]
// depth ranges roughly [-radius, radius]; nearer is brighter
func depthShade(depth, radius float64) float64 {
	if radius <= 0 {
		return 1
	}
	n := (depth/radius + 1.0) / 2.0
	if n < 0 {
		n = 0
	}
	if n > 1 {
		n = 1
	}
	return 0.35 + 0.65*n
}
