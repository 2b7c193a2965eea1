package hexmath

import "math"

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Smoothstep is the cubic Hermite ramp from 0 at edge0 to 1 at edge1.
// Coincident edges degrade to a hard Step at edge0.
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		return Step(edge0, x)
	}
	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Step returns 0 when x < edge and 1 otherwise.
func Step(edge, x float64) float64 {
	if x < edge {
		return 0
	}
	return 1
}

// Mix interpolates linearly between a and b.
func Mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Remap maps x from [inLo, inHi] onto [outLo, outHi] without clamping.
func Remap(x, inLo, inHi, outLo, outHi float64) float64 {
	return outLo + (x-inLo)*(outHi-outLo)/(inHi-inLo)
}

// Peak is 1 at x == center and falls to 0 at distance width, smoothly.
func Peak(x, center, width float64) float64 {
	return 1 - Smoothstep(0, width, math.Abs(x-center))
}
