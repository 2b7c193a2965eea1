// Package render evaluates the hex wipe over whole frames and moves pixels
// between Go images, linear float buffers and display bytes.
package render

import (
	"hexwipe/internal/core"
	"hexwipe/internal/effect"

	"seehuhn.de/go/geom/vec"
)

// Frame is a linear HDR RGBA buffer in row-major order, top row first.
// Channels may exceed 1 until the frame is encoded for display.
type Frame struct {
	W, H int
	Pix  []float32
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, Pix: make([]float32, 4*w*h)}
}

// Size returns the frame dimensions.
func (f *Frame) Size() core.Size { return core.Size{W: f.W, H: f.H} }

// UV returns the normalized coordinate of the center of pixel (x, y). The
// origin is the bottom-left corner, so v grows toward the top row.
func (f *Frame) UV(x, y int) vec.Vec2 {
	return vec.Vec2{
		X: (float64(x) + 0.5) / float64(f.W),
		Y: 1 - (float64(y)+0.5)/float64(f.H),
	}
}

// Row exposes the 4*W channel values of row y.
func (f *Frame) Row(y int) []float32 {
	i := 4 * y * f.W
	return f.Pix[i : i+4*f.W]
}

// At returns the color of pixel (x, y).
func (f *Frame) At(x, y int) effect.Color {
	i := 4 * (y*f.W + x)
	p := f.Pix[i : i+4 : i+4]
	return effect.Color{R: float64(p[0]), G: float64(p[1]), B: float64(p[2]), A: float64(p[3])}
}

// Set stores c at pixel (x, y).
func (f *Frame) Set(x, y int, c effect.Color) {
	i := 4 * (y*f.W + x)
	p := f.Pix[i : i+4 : i+4]
	p[0] = float32(c.R)
	p[1] = float32(c.G)
	p[2] = float32(c.B)
	p[3] = float32(c.A)
}
