package effect

import (
	"math"

	"hexwipe/internal/hexmath"
	"hexwipe/internal/noise"

	"seehuhn.de/go/geom/vec"
)

// Masks are the scalar fields deciding where and how strongly each image
// shows at one sample. Values are not clamped to [0, 1].
type Masks struct {
	// Distance is the hex metric of the sample within its cell.
	Distance float64
	// Border is a thin antialiased ring at the cell edge.
	Border float64
	// Pop peaks sharply toward the cell edge.
	Pop float64
	// Jitter is the per-cell noise value.
	Jitter float64
	// Bounce is 1 mid-transition and 0 at either end.
	Bounce float64
	// BlendCut is the soft, noise-perturbed sweep.
	BlendCut float64
	// Merge isolates the band around the soft sweep boundary.
	Merge float64
	// Cut is the hard reveal: 0 shows the first image, 1 the second.
	Cut float64
}

// Glow is the seam accent weight before the glow gain.
func (m Masks) Glow() float64 {
	return m.Merge * m.Border * m.Bounce
}

// Bounce gates the noise-driven wobble so it only appears mid-transition.
func Bounce(transition float64) float64 {
	return hexmath.Peak(transition, 0.5, 0.5)
}

// ComputeMasks evaluates the mask set for a sample at uv whose hex cell is
// hex. The noise field is sampled once, at the cell id.
func ComputeMasks(p Params, n noise.Field, uv vec.Vec2, hex hexmath.Sample, st State) Masks {
	var m Masks
	m.Distance = hexmath.Distance(hex.Offset)
	m.Border = hexmath.Smoothstep(p.BorderStart, p.BorderStart+p.BorderWidth, m.Distance+p.BorderBias)
	m.Pop = math.Pow(1-math.Max(0, hexmath.EdgeDistance-m.Distance), p.PopExponent) * p.PopGain
	m.Jitter = n.Eval2(hex.Center.X*p.NoiseScale, hex.Center.Y*p.NoiseScale)
	m.Bounce = Bounce(st.Transition)

	margin := p.SweepMargin
	sweep := hexmath.Remap(st.Transition+m.Jitter*p.SweepJitter*m.Bounce, 0, 1, -margin, 1+margin)
	m.BlendCut = hexmath.Smoothstep(uv.Y-margin, uv.Y+margin, sweep)
	m.Merge = hexmath.Peak(m.BlendCut, 0.5, 0.5)

	m.Cut = hexmath.Step(uv.Y, st.Transition+(m.Pop+m.Jitter)*p.CutJitter*m.Bounce)
	return m
}
