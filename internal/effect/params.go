package effect

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// ErrInvalidParams reports a Params value the effect cannot render with.
var ErrInvalidParams = errors.New("effect: invalid params")

// Params holds the tunable constants of the hex wipe.
type Params struct {
	// Tiling is the number of hex cells across the unit square.
	Tiling float64

	// Border ring: smoothstep(BorderStart, BorderStart+BorderWidth, d+BorderBias).
	BorderStart float64
	BorderWidth float64
	BorderBias  float64

	// Per-cell pop amplitude: (1 - max(0, 0.5-d))^PopExponent * PopGain.
	PopExponent float64
	PopGain     float64

	// NoiseScale multiplies the cell id before it is fed to the noise field.
	NoiseScale float64

	// SweepMargin is the half width of the soft sweep band and the overshoot
	// of the remapped transition past either frame edge.
	SweepMargin float64
	// SweepJitter scales the noise perturbation of the soft sweep.
	SweepJitter float64
	// CutJitter scales the pop+noise perturbation of the hard cut.
	CutJitter float64

	// Seam ripple: Pop * sin(v*RippleFrequency - time*RippleSpeed) * merge * RippleAmplitude.
	RippleFrequency float64
	RippleSpeed     float64
	RippleAmplitude float64

	// PulseAmplitude scales the per-image zoom pulse.
	PulseAmplitude float64

	// Glow is the seam accent color, added GlowGain times the glow mask.
	Glow     Color
	GlowGain float64
}

// DefaultParams returns the reference look.
func DefaultParams() Params {
	return Params{
		Tiling:          20,
		BorderStart:     0.51,
		BorderWidth:     0.03,
		BorderBias:      0.03,
		PopExponent:     10,
		PopGain:         1.5,
		NoiseScale:      0.6,
		SweepMargin:     0.2,
		SweepJitter:     0.08,
		CutJitter:       0.15,
		RippleFrequency: 15,
		RippleSpeed:     0.5,
		RippleAmplitude: 0.025,
		PulseAmplitude:  0.2,
		Glow:            Color{R: 1, G: 0.4, B: 0, A: 1},
		GlowGain:        2,
	}
}

// Validate checks that every field is finite and that the ramps are well formed.
func (p Params) Validate() error {
	for key, ptr := range p.fields() {
		if math.IsNaN(*ptr) || math.IsInf(*ptr, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, key)
		}
	}
	if p.Tiling <= 0 {
		return fmt.Errorf("%w: tiling must be positive, got %v", ErrInvalidParams, p.Tiling)
	}
	if p.BorderWidth <= 0 {
		return fmt.Errorf("%w: border.width must be positive, got %v", ErrInvalidParams, p.BorderWidth)
	}
	if p.SweepMargin <= 0 {
		return fmt.Errorf("%w: sweep.margin must be positive, got %v", ErrInvalidParams, p.SweepMargin)
	}
	if p.PopExponent < 0 {
		return fmt.Errorf("%w: pop.exponent must not be negative, got %v", ErrInvalidParams, p.PopExponent)
	}
	if p.GlowGain < 0 {
		return fmt.Errorf("%w: glow.gain must not be negative, got %v", ErrInvalidParams, p.GlowGain)
	}
	return nil
}

// Apply overrides fields from key=value pairs as produced by repeated
// -set flags. Unknown keys and unparsable values are errors.
func (p *Params) Apply(overrides map[string]string) error {
	fields := p.fields()
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		ptr, ok := fields[k]
		if !ok {
			return fmt.Errorf("%w: unknown key %q", ErrInvalidParams, k)
		}
		v, err := strconv.ParseFloat(overrides[k], 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidParams, k, err)
		}
		*ptr = v
	}
	return nil
}

// Keys lists the names accepted by Apply.
func (p *Params) Keys() []string {
	fields := p.fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *Params) fields() map[string]*float64 {
	return map[string]*float64{
		"tiling":           &p.Tiling,
		"border.start":     &p.BorderStart,
		"border.width":     &p.BorderWidth,
		"border.bias":      &p.BorderBias,
		"pop.exponent":     &p.PopExponent,
		"pop.gain":         &p.PopGain,
		"noise.scale":      &p.NoiseScale,
		"sweep.margin":     &p.SweepMargin,
		"sweep.jitter":     &p.SweepJitter,
		"cut.jitter":       &p.CutJitter,
		"ripple.frequency": &p.RippleFrequency,
		"ripple.speed":     &p.RippleSpeed,
		"ripple.amplitude": &p.RippleAmplitude,
		"pulse.amplitude":  &p.PulseAmplitude,
		"glow.r":           &p.Glow.R,
		"glow.g":           &p.Glow.G,
		"glow.b":           &p.Glow.B,
		"glow.a":           &p.Glow.A,
		"glow.gain":        &p.GlowGain,
	}
}
