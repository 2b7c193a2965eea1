package app

import (
	"math"

	"hexwipe/internal/core"
)

// TransitionControl is the live slider for the transition value.
var TransitionControl = core.Control{
	Key:    "transition",
	Label:  "Transition",
	Step:   0.01,
	Min:    0,
	Max:    1,
	HasMin: true,
	HasMax: true,
	Slider: true,
}

// Driver owns the transition value between frames. With a positive speed it
// sweeps back and forth across [0, 1]; otherwise it holds whatever was set.
type Driver struct {
	// phase runs over [0, 2): the first half rises, the second falls.
	phase float64
	speed float64
}

// NewDriver starts at transition start, rising, at the given speed.
func NewDriver(start, speed float64) *Driver {
	d := &Driver{}
	d.Set(start)
	d.SetSpeed(speed)
	return d
}

// Transition returns the current value in [0, 1].
func (d *Driver) Transition() float64 {
	if d.phase <= 1 {
		return d.phase
	}
	return 2 - d.phase
}

// Set jumps to v, clamped, keeping the current direction.
func (d *Driver) Set(v float64) {
	v = TransitionControl.Clamp(v)
	if math.IsNaN(v) {
		v = 0
	}
	if d.phase > 1 && v > 0 && v < 1 {
		d.phase = 2 - v
		return
	}
	d.phase = v
}

// Speed returns the autoplay rate in transitions per second.
func (d *Driver) Speed() float64 { return d.speed }

// SetSpeed changes the autoplay rate. Negative rates stop autoplay.
func (d *Driver) SetSpeed(s float64) {
	if s < 0 || math.IsNaN(s) {
		s = 0
	}
	d.speed = s
}

// Playing reports whether autoplay is active.
func (d *Driver) Playing() bool { return d.speed > 0 }

// Advance moves the transition by dt seconds of autoplay.
func (d *Driver) Advance(dt float64) {
	if d.speed <= 0 || dt <= 0 {
		return
	}
	d.phase = math.Mod(d.phase+d.speed*dt, 2)
}
