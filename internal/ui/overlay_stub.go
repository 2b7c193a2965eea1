//go:build !ebiten

package ui

import (
	"hexwipe/internal/core"
	"hexwipe/internal/render"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*render.Renderer, core.Size, float64) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Label always reports no layer in headless builds.
func (o *Overlay) Label() string { return "" }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, any) {}
