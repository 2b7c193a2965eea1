// Package effect implements the hexagonal-tile wipe between two images.
//
// Every sample is a pure function of its coordinate, the frame State and the
// Effect's immutable configuration, so samples may be evaluated in any order
// and from any number of goroutines.
package effect

import (
	"errors"
	"fmt"

	"hexwipe/internal/hexmath"
	"hexwipe/internal/noise"

	"seehuhn.de/go/geom/vec"
)

// ErrNilImage is returned when an evaluation is requested before both
// images are available.
var ErrNilImage = errors.New("effect: both images are required")

// Effect is a configured hex wipe. It is immutable and safe for concurrent use.
type Effect struct {
	params Params
	noise  noise.Field
}

// New validates p and binds it to a noise field.
func New(p Params, n noise.Field) (*Effect, error) {
	if n == nil {
		return nil, errors.New("effect: nil noise field")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Effect{params: p, noise: n}, nil
}

// Params returns a copy of the effect's parameters.
func (e *Effect) Params() Params { return e.params }

// Noise returns the bound noise field.
func (e *Effect) Noise() noise.Field { return e.noise }

// Evaluation is everything computed for one sample except the image reads.
type Evaluation struct {
	Hex    hexmath.Sample
	Masks  Masks
	Coords Coords
}

// Evaluate runs the coordinate and mask stages for uv. uv has its origin at
// the bottom-left of the frame; v grows upward.
func (e *Effect) Evaluate(uv vec.Vec2, st State) Evaluation {
	p := e.params
	aspect := st.aspect()

	// Stretch x by the aspect so cells stay regular on wide frames. The lens
	// only shapes the lattice; the images are read from uv itself.
	frameUV := hexmath.Scale(uv, hexmath.Center, vec.Vec2{X: aspect, Y: 1})
	lensFactor := 1 / (1 + frameUV.Sub(hexmath.Center).Length())
	hexUV := hexmath.ScaleUniform(frameUV, hexmath.Center, lensFactor).Mul(p.Tiling)

	hex := hexmath.Coordinates(hexUV)
	m := ComputeMasks(p, e.noise, uv, hex, st)
	return Evaluation{
		Hex:    hex,
		Masks:  m,
		Coords: ComputeCoords(p, uv, m, st),
	}
}

// Shade returns the final color at uv. The first image is read at the To
// coordinate, the second at From. Both samplers must be non-nil; frame-level
// callers check this once rather than per sample.
func (e *Effect) Shade(uv vec.Vec2, st State, first, second Sampler) Color {
	ev := e.Evaluate(uv, st)
	return Composite(e.params, first.Sample(ev.Coords.To), second.Sample(ev.Coords.From), ev.Masks)
}

// Composite picks between the two image samples with the hard cut and adds
// the seam glow.
func Composite(p Params, first, second Color, m Masks) Color {
	base := MixColor(first, second, m.Cut)
	return base.Add(p.Glow.Scale(m.Glow() * p.GlowGain))
}

// CheckImages reports ErrNilImage unless both samplers are present.
func CheckImages(first, second Sampler) error {
	if first == nil || second == nil {
		return fmt.Errorf("%w (first=%t, second=%t)", ErrNilImage, first != nil, second != nil)
	}
	return nil
}
