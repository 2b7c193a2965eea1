package core

import (
	"math"
	"strconv"
)

// Control describes one live-tunable value shown on the HUD.
type Control struct {
	Key   string
	Label string

	// Step is the increment applied by a single nudge. Zero means 0.05.
	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool

	// Slider draws a draggable bar between Min and Max.
	Slider bool
}

// Clamp limits v to the control's bounds.
func (c Control) Clamp(v float64) float64 {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// Nudge moves v by direction steps and clamps the result.
func (c Control) Nudge(v float64, direction int) float64 {
	return c.Clamp(v + float64(direction)*c.step())
}

// CanNudge reports whether a nudge in direction changes v.
func (c Control) CanNudge(v float64, direction int) bool {
	return math.Abs(c.Nudge(v, direction)-v) > 1e-9
}

// Fraction maps v onto [0, 1] across the bounds. Unbounded controls report 0.
func (c Control) Fraction(v float64) float64 {
	if !c.HasMin || !c.HasMax || c.Max <= c.Min {
		return 0
	}
	f := (c.Clamp(v) - c.Min) / (c.Max - c.Min)
	return f
}

// At is the inverse of Fraction, snapped to the step grid.
func (c Control) At(fraction float64) float64 {
	if !c.HasMin || !c.HasMax {
		return 0
	}
	v := c.Min + fraction*(c.Max-c.Min)
	step := c.step()
	v = c.Min + math.Round((v-c.Min)/step)*step
	return c.Clamp(v)
}

// Format renders v with a precision matching the step.
func (c Control) Format(v float64) string {
	precision := 1
	switch step := c.step(); {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func (c Control) step() float64 {
	if c.Step <= 0 {
		return 0.05
	}
	return c.Step
}

// ControlSet exposes live-tunable values to the HUD.
type ControlSet interface {
	Controls() []Control
	Value(key string) (float64, bool)
	SetValue(key string, v float64) bool
}
