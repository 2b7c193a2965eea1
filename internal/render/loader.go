package render

import (
	"fmt"
	"image"
	"io"
	"os"

	// Registered decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"
)

// LoadOptions controls how source images become textures.
type LoadOptions struct {
	// MaxSize bounds the longer side of the texture. Larger images are
	// resampled down. Zero keeps the source resolution.
	MaxSize int
	Edge    Edge
}

// LoadTexture decodes the image file at path.
func LoadTexture(path string, opts LoadOptions) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := DecodeTexture(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// DecodeTexture decodes any registered image format from r.
func DecodeTexture(r io.Reader, opts LoadOptions) (*Texture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decode %s: empty image", format)
	}
	return NewTexture(Fit(img, opts.MaxSize), opts.Edge), nil
}

// Fit resamples img so its longer side is at most maxSize, keeping the
// aspect ratio. Images already small enough are returned unchanged.
func Fit(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}
	if w >= h {
		h = max(1, h*maxSize/w)
		w = maxSize
	} else {
		w = max(1, w*maxSize/h)
		h = maxSize
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
