package render

import (
	"fmt"
	"image"
	"math"

	"hexwipe/internal/effect"

	"seehuhn.de/go/geom/vec"
)

// Edge selects how a texture answers coordinates outside [0, 1].
type Edge int

const (
	// EdgeClamp repeats the outermost texels.
	EdgeClamp Edge = iota
	// EdgeRepeat tiles the texture.
	EdgeRepeat
	// EdgeMirror tiles the texture, flipping every other copy.
	EdgeMirror
)

// ParseEdge maps a flag value to an Edge.
func ParseEdge(s string) (Edge, error) {
	switch s {
	case "", "clamp":
		return EdgeClamp, nil
	case "repeat":
		return EdgeRepeat, nil
	case "mirror":
		return EdgeMirror, nil
	}
	return EdgeClamp, fmt.Errorf("unknown edge mode %q (want clamp, repeat or mirror)", s)
}

// String returns the flag spelling of e.
func (e Edge) String() string {
	switch e {
	case EdgeRepeat:
		return "repeat"
	case EdgeMirror:
		return "mirror"
	default:
		return "clamp"
	}
}

// Texture is an immutable linear RGBA image with bilinear filtering. Row 0 is
// the top of the image; v = 1 addresses it.
type Texture struct {
	W, H int
	Pix  []float32
	Edge Edge
}

// NewTexture converts img to linear light. Color channels are decoded from
// sRGB and alpha is kept unassociated.
func NewTexture(img image.Image, edge Edge) *Texture {
	b := img.Bounds()
	t := &Texture{W: b.Dx(), H: b.Dy(), Edge: edge}
	t.Pix = make([]float32, 4*t.W*t.H)
	switch src := img.(type) {
	case *image.NRGBA:
		t.fillNRGBA(src)
		return t
	case *image.RGBA:
		t.fillRGBA(src)
		return t
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if a > 0 && a < 0xffff {
				r = r * 0xffff / a
				g = g * 0xffff / a
				bl = bl * 0xffff / a
			}
			t.Pix[i+0] = srgbDecode[r>>8]
			t.Pix[i+1] = srgbDecode[g>>8]
			t.Pix[i+2] = srgbDecode[bl>>8]
			t.Pix[i+3] = float32(a) / 0xffff
			i += 4
		}
	}
	return t
}

func (t *Texture) fillNRGBA(src *image.NRGBA) {
	b := src.Bounds()
	for y := 0; y < t.H; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		dst := t.Pix[4*t.W*y : 4*t.W*(y+1)]
		for x := 0; x < t.W; x++ {
			p := row[4*x : 4*x+4 : 4*x+4]
			dst[4*x+0] = srgbDecode[p[0]]
			dst[4*x+1] = srgbDecode[p[1]]
			dst[4*x+2] = srgbDecode[p[2]]
			dst[4*x+3] = float32(p[3]) / 0xff
		}
	}
}

func (t *Texture) fillRGBA(src *image.RGBA) {
	b := src.Bounds()
	for y := 0; y < t.H; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		dst := t.Pix[4*t.W*y : 4*t.W*(y+1)]
		for x := 0; x < t.W; x++ {
			p := row[4*x : 4*x+4 : 4*x+4]
			r, g, bl, a := uint32(p[0]), uint32(p[1]), uint32(p[2]), uint32(p[3])
			if a > 0 && a < 0xff {
				r = min(r*0xff/a, 0xff)
				g = min(g*0xff/a, 0xff)
				bl = min(bl*0xff/a, 0xff)
			}
			dst[4*x+0] = srgbDecode[r]
			dst[4*x+1] = srgbDecode[g]
			dst[4*x+2] = srgbDecode[bl]
			dst[4*x+3] = float32(a) / 0xff
		}
	}
}

// SolidTexture is a 1x1 texture of c, already linear.
func SolidTexture(c effect.Color) *Texture {
	return &Texture{W: 1, H: 1, Pix: []float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}}
}

// Sample filters the four texels around uv. A nil or empty texture is
// transparent black.
func (t *Texture) Sample(uv vec.Vec2) effect.Color {
	if t == nil || t.W == 0 || t.H == 0 {
		return effect.Color{}
	}
	x := uv.X*float64(t.W) - 0.5
	y := (1-uv.Y)*float64(t.H) - 0.5
	if math.IsNaN(x) || math.IsNaN(y) {
		return effect.Color{}
	}
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0
	ix, iy := clampInt(x0), clampInt(y0)

	top := effect.MixColor(t.texel(ix, iy), t.texel(ix+1, iy), fx)
	bottom := effect.MixColor(t.texel(ix, iy+1), t.texel(ix+1, iy+1), fx)
	return effect.MixColor(top, bottom, fy)
}

func (t *Texture) texel(x, y int) effect.Color {
	x = wrapIndex(x, t.W, t.Edge)
	y = wrapIndex(y, t.H, t.Edge)
	i := 4 * (y*t.W + x)
	p := t.Pix[i : i+4 : i+4]
	return effect.Color{R: float64(p[0]), G: float64(p[1]), B: float64(p[2]), A: float64(p[3])}
}

func wrapIndex(i, n int, edge Edge) int {
	switch edge {
	case EdgeRepeat:
		return (i%n + n) % n
	case EdgeMirror:
		period := 2 * n
		m := (i%period + period) % period
		if m >= n {
			m = period - 1 - m
		}
		return m
	default:
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}

// clampInt keeps far-off coordinates inside int range before conversion.
func clampInt(v float64) int {
	const limit = 1 << 30
	if v < -limit {
		return -limit
	}
	if v > limit {
		return limit
	}
	return int(v)
}
