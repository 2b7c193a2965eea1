package render

import (
	"image"

	"github.com/chewxy/math32"
)

// srgbDecode maps 8-bit sRGB codes to linear light.
var srgbDecode = buildDecodeTable()

func buildDecodeTable() [256]float32 {
	var table [256]float32
	for i := range table {
		table[i] = SRGBToLinear(float32(i) / 255)
	}
	return table
}

// SRGBToLinear applies the sRGB electro-optical transfer function.
func SRGBToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// LinearToSRGB is the inverse of SRGBToLinear. Input is clamped to [0, 1].
func LinearToSRGB(v float32) float32 {
	v = clamp01(v)
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, 1/2.4) - 0.055
}

func clamp01(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return math32.Max(0, math32.Min(1, v))
}

func toByte(v float32) uint8 {
	return uint8(math32.Floor(clamp01(v)*255 + 0.5))
}

// EncodeNRGBA writes f into buf as unassociated sRGB bytes, clamping the
// HDR values. buf must hold 4*W*H bytes.
func EncodeNRGBA(buf []byte, f *Frame) {
	encode(buf, f, false)
}

// EncodePremultiplied writes f into buf as alpha-premultiplied sRGB bytes,
// the layout ebiten expects for pixel uploads.
func EncodePremultiplied(buf []byte, f *Frame) {
	encode(buf, f, true)
}

func encode(buf []byte, f *Frame, premultiply bool) {
	n := f.W * f.H
	if len(buf) < 4*n || len(f.Pix) < 4*n {
		return
	}
	for i := 0; i < n; i++ {
		base := i * 4
		a := clamp01(f.Pix[base+3])
		r := LinearToSRGB(f.Pix[base+0])
		g := LinearToSRGB(f.Pix[base+1])
		b := LinearToSRGB(f.Pix[base+2])
		if premultiply {
			r *= a
			g *= a
			b *= a
		}
		buf[base+0] = toByte(r)
		buf[base+1] = toByte(g)
		buf[base+2] = toByte(b)
		buf[base+3] = toByte(a)
	}
}

// NRGBA converts the frame to an image for encoding to disk.
func (f *Frame) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.W, f.H))
	EncodeNRGBA(img.Pix, f)
	return img
}
