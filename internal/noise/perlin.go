package noise

import "github.com/aquilax/go-perlin"

// KindPerlin is single-octave gradient noise.
const KindPerlin Kind = "perlin"

const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinN     = 1

	// Single-octave 2D Perlin peaks near ±1/√2.
	perlinGain = 1.4142135623730951

	// Shifts integer inputs off the lattice, where the raw field is zero.
	perlinOffsetX = 0.37
	perlinOffsetY = 0.61
)

// Perlin is a classic gradient noise field rescaled to [-1, 1].
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin seeds a Perlin field.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)}
}

// Eval2 samples the field.
func (p *Perlin) Eval2(x, y float64) float64 {
	v := p.p.Noise2D(x+perlinOffsetX, y+perlinOffsetY) * perlinGain
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func init() {
	Register(KindPerlin, func(seed int64) Field { return NewPerlin(seed) })
}
