package effect

import (
	"math"

	"hexwipe/internal/hexmath"

	"seehuhn.de/go/geom/vec"
)

// Sampler is a 2D color field addressed by normalized coordinates with the
// origin at the bottom-left. Coordinates may fall outside [0, 1]; the
// sampler's own edge policy applies.
type Sampler interface {
	Sample(uv vec.Vec2) Color
}

// Uniform is a sampler returning the same color everywhere.
type Uniform Color

// Sample returns the uniform color.
func (u Uniform) Sample(vec.Vec2) Color { return Color(u) }

// Coords holds the distorted coordinates used to read both images.
type Coords struct {
	// Wobble adds the traveling seam ripple to the sample coordinate.
	Wobble vec.Vec2
	// From reads the second image, pulsing with Merge.
	From vec.Vec2
	// To reads the first image, pulsing with BlendCut.
	To vec.Vec2
}

// ComputeCoords derives the sample coordinates of both images at uv from
// its masks. With every mask at rest both coordinates equal uv.
func ComputeCoords(p Params, uv vec.Vec2, m Masks, st State) Coords {
	ripple := m.Pop * math.Sin(uv.Y*p.RippleFrequency-st.Time*p.RippleSpeed) * m.Merge * p.RippleAmplitude
	wobble := uv.Add(vec.Vec2{X: ripple, Y: ripple})
	return Coords{
		Wobble: wobble,
		From:   hexmath.ScaleUniform(wobble, hexmath.Center, 1+m.Jitter*p.PulseAmplitude*m.Merge),
		To:     hexmath.ScaleUniform(wobble, hexmath.Center, 1+m.Jitter*p.PulseAmplitude*m.BlendCut),
	}
}
