//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads HDR frames to a GPU image for display.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFramePainter allocates a painter for frames of size w*h.
func NewFramePainter(w, h int) *FramePainter {
	fp := &FramePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit encodes f, uploads it and draws it onto dst at the given scale.
func (fp *FramePainter) Blit(dst *ebiten.Image, f *Frame, scale float64) {
	if f.W != fp.w || f.H != fp.h {
		return
	}
	EncodePremultiplied(fp.buf, f)
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
