//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"hexwipe/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the control panel to the right of the transition view.
type HUD struct {
	set        core.ControlSet
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls     []hudControlState
	panelOffsetX int
	title        string
	status       string

	// dragging is the index of the slider held by the mouse, or -1.
	dragging int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided control set and panel width.
func NewHUD(set core.ControlSet, title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	if title == "" {
		title = "Controls"
	}
	h := &HUD{set: set, width: width, title: title, dragging: -1}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if set != nil {
		controls := set.Controls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	return h
}

// SetStatus replaces the line printed under the controls.
func (h *HUD) SetStatus(s string) {
	if h == nil {
		return
	}
	h.status = s
}

// Update refreshes the cached values and handles HUD interactions.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.set == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		v, ok := h.set.Value(state.control.Key)
		state.hasValue = ok
		if !ok {
			state.value = "--"
			continue
		}
		state.floatValue = v
		state.value = state.control.Format(v)
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.panelOffsetX

	if h.dragging >= 0 {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			h.dragging = -1
			return
		}
		h.applySlider(&h.controls[h.dragging], px)
		return
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || px < 0 {
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
		if state.control.Slider && pointInRect(px, my, state.sliderRect) {
			h.dragging = i
			h.applySlider(state, px)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if !state.control.CanNudge(state.floatValue, direction) {
		return
	}
	h.apply(state, state.control.Nudge(state.floatValue, direction))
}

func (h *HUD) applySlider(state *hudControlState, px int) {
	r := state.sliderRect
	if r.Dx() <= 0 {
		return
	}
	f := float64(px-r.Min.X) / float64(r.Dx())
	h.apply(state, state.control.At(f))
}

func (h *HUD) apply(state *hudControlState, target float64) {
	if h.set.SetValue(state.control.Key, target) {
		state.floatValue = target
		state.value = state.control.Format(target)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		infoY := headerY + infoSpacing
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, infoY, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	bottom := controlsTop
	for i := range h.controls {
		state := &h.controls[i]
		top := state.top
		labelY := top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		value := state.value
		valueWidth := text.BoundString(face, value).Dx()
		valueX := state.minusRect.Min.X - buttonGap - valueWidth
		text.Draw(h.panel, value, face, valueX, labelY, valueColor)

		minusEnabled := state.hasValue && state.control.CanNudge(state.floatValue, -1)
		plusEnabled := state.hasValue && state.control.CanNudge(state.floatValue, 1)
		h.drawButton(state.minusRect, "-", minusEnabled)
		h.drawButton(state.plusRect, "+", plusEnabled)
		if state.control.Slider {
			h.drawSlider(state)
		}
		bottom = state.bottom
	}
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, bottom+infoSpacing/2, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
}

func (h *HUD) drawSlider(state *hudControlState) {
	r := state.sliderRect
	h.fillRect(r, color.RGBA{R: 32, G: 34, B: 40, A: 255})
	filled := int(float64(r.Dx()) * state.control.Fraction(state.floatValue))
	if filled > 0 {
		h.fillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+filled, r.Max.Y), color.RGBA{R: 230, G: 120, B: 40, A: 255})
	}
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	top := controlsTop
	for i := range h.controls {
		state := &h.controls[i]
		buttonY := top + (lineHeight-buttonSize)/2
		state.top = top
		state.plusRect = image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		state.minusRect = image.Rect(state.plusRect.Min.X-buttonGap-buttonSize, buttonY, state.plusRect.Min.X-buttonGap, buttonY+buttonSize)
		top += lineHeight
		if state.control.Slider {
			state.sliderRect = image.Rect(panelPadding, top, h.width-panelPadding, top+sliderHeight)
			top += sliderHeight + buttonGap
		}
		state.bottom = top
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

type hudControlState struct {
	control core.Control
	value   string

	floatValue float64
	hasValue   bool

	top        int
	bottom     int
	minusRect  image.Rectangle
	plusRect   image.Rectangle
	sliderRect image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	sliderHeight   = 10
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
