//go:build ebiten

package ui

import (
	"context"
	"image/color"
	"math"

	"hexwipe/internal/core"
	"hexwipe/internal/effect"
	"hexwipe/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type maskLayer struct {
	key   ebiten.Key
	label string
	tint  color.RGBA
	pick  func(effect.Masks) float64
}

var maskLayers = []maskLayer{
	{ebiten.KeyDigit1, "border", color.RGBA{R: 64, G: 164, B: 223}, func(m effect.Masks) float64 { return m.Border }},
	{ebiten.KeyDigit2, "merge", color.RGBA{R: 255, G: 120, B: 40}, func(m effect.Masks) float64 { return m.Merge }},
	{ebiten.KeyDigit3, "cut", color.RGBA{R: 120, G: 220, B: 120}, func(m effect.Masks) float64 { return m.Cut }},
	{ebiten.KeyDigit4, "blend cut", color.RGBA{R: 220, G: 120, B: 220}, func(m effect.Masks) float64 { return m.BlendCut }},
}

// Overlay tints one of the intermediate masks over the rendered frame.
type Overlay struct {
	renderer *render.Renderer
	size     core.Size
	scale    float64

	// active indexes maskLayers, or -1 when hidden.
	active  int
	mask    []float32
	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs an overlay for frames of the given size.
func NewOverlay(r *render.Renderer, size core.Size, scale float64) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{renderer: r, size: size, scale: scale, active: -1}
}

// Update toggles layers from the number keys. Selecting the visible layer
// hides it.
func (o *Overlay) Update() {
	for i, layer := range maskLayers {
		if !inpututil.IsKeyJustPressed(layer.key) {
			continue
		}
		if o.active == i {
			o.active = -1
		} else {
			o.active = i
		}
	}
}

// Label names the visible layer, or returns "" when none is shown.
func (o *Overlay) Label() string {
	if o.active < 0 {
		return ""
	}
	return "mask: " + maskLayers[o.active].label
}

// Draw renders the active mask for st onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, st effect.State) {
	if o.active < 0 || !o.size.Valid() {
		return
	}
	total := o.size.W * o.size.H
	if o.maskImg == nil {
		o.maskImg = ebiten.NewImage(o.size.W, o.size.H)
		o.mask = make([]float32, total)
		o.maskBuf = make([]byte, 4*total)
	}
	layer := maskLayers[o.active]
	if err := o.renderer.RenderMask(context.Background(), o.mask, o.size, st, layer.pick); err != nil {
		return
	}
	o.drawMask(screen, layer.tint)
}

func (o *Overlay) drawMask(screen *ebiten.Image, tint color.RGBA) {
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)

	for i, v := range o.mask {
		base := i * 4
		intensity := clamp01(float64(v))
		if intensity == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}

		alpha := maxAlpha * math.Pow(intensity, intensityBias)
		glow := glowBase + glowRange*math.Sqrt(intensity)

		// WritePixels expects premultiplied alpha.
		o.maskBuf[base+0] = scaleColorComponent(tint.R, glow*alpha/255)
		o.maskBuf[base+1] = scaleColorComponent(tint.G, glow*alpha/255)
		o.maskBuf[base+2] = scaleColorComponent(tint.B, glow*alpha/255)
		o.maskBuf[base+3] = uint8(math.Round(alpha))
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(o.scale, o.scale)
	screen.DrawImage(o.maskImg, op)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
