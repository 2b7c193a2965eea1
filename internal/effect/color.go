package effect

import "hexwipe/internal/hexmath"

// Color is a linear RGBA value. Channels are not clamped; the glow term
// deliberately pushes them past 1 and the display stage clamps.
type Color struct {
	R, G, B, A float64
}

// Add sums two colors channel-wise.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Scale multiplies every channel by k.
func (c Color) Scale(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A * k}
}

// Clamped limits every channel to [0, 1].
func (c Color) Clamped() Color {
	return Color{
		R: hexmath.Clamp01(c.R),
		G: hexmath.Clamp01(c.G),
		B: hexmath.Clamp01(c.B),
		A: hexmath.Clamp01(c.A),
	}
}

// MixColor interpolates linearly between a and b.
func MixColor(a, b Color, t float64) Color {
	return Color{
		R: hexmath.Mix(a.R, b.R, t),
		G: hexmath.Mix(a.G, b.G, t),
		B: hexmath.Mix(a.B, b.B, t),
		A: hexmath.Mix(a.A, b.A, t),
	}
}
