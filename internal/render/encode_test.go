package render

import (
	"math"
	"testing"

	"hexwipe/internal/effect"
)

func TestSRGBRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		lin := srgbDecode[i]
		if got := toByte(LinearToSRGB(lin)); int(got) != i {
			t.Fatalf("byte %d decoded to %v and re-encoded to %d", i, lin, got)
		}
	}
	if srgbDecode[0] != 0 || math.Abs(float64(srgbDecode[255])-1) > 1e-6 {
		t.Fatalf("table endpoints %v, %v", srgbDecode[0], srgbDecode[255])
	}
}

func TestEncodeClampsHDR(t *testing.T) {
	f := NewFrame(2, 1)
	f.Set(0, 0, effect.Color{R: 3.1, G: -0.4, B: math.NaN(), A: 2})
	f.Set(1, 0, effect.Color{R: 1, G: 1, B: 1, A: 0.5})

	buf := make([]byte, 8)
	EncodeNRGBA(buf, f)
	want := []byte{255, 0, 0, 255}
	for i, w := range want {
		if buf[i] != w {
			t.Fatalf("channel %d=%d, expected %d (buf=%v)", i, buf[i], w, buf)
		}
	}
	if buf[4] != 255 || buf[7] != 128 {
		t.Fatalf("straight alpha pixel encoded as %v", buf[4:])
	}

	EncodePremultiplied(buf, f)
	if d := int(buf[4]) - 128; d < -1 || d > 1 {
		t.Fatalf("premultiplied red=%d, expected ~128", buf[4])
	}
	if buf[7] != 128 {
		t.Fatalf("premultiplied alpha=%d, expected 128", buf[7])
	}
}

func TestFrameNRGBA(t *testing.T) {
	f := NewFrame(3, 2)
	f.Set(1, 1, effect.Color{G: 1, A: 1})
	img := f.NRGBA()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds=%v", img.Bounds())
	}
	c := img.NRGBAAt(1, 1)
	if c.G != 255 || c.A != 255 || c.R != 0 {
		t.Fatalf("pixel=%+v", c)
	}
}
