package effect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParamsValid(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(p *Params){
		"zero tiling":     func(p *Params) { p.Tiling = 0 },
		"flat border":     func(p *Params) { p.BorderWidth = 0 },
		"no sweep margin": func(p *Params) { p.SweepMargin = -0.1 },
		"negative pop":    func(p *Params) { p.PopExponent = -1 },
		"negative glow":   func(p *Params) { p.GlowGain = -2 },
		"nan ripple":      func(p *Params) { p.RippleSpeed = math.NaN() },
		"inf glow color":  func(p *Params) { p.Glow.G = math.Inf(1) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := DefaultParams()
			mutate(&p)
			require.ErrorIs(t, p.Validate(), ErrInvalidParams)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	p := DefaultParams()
	err := p.Apply(map[string]string{
		"tiling":    "12",
		"glow.g":    "0.8",
		"glow.gain": "3.5",
	})
	require.NoError(t, err)
	assert.Equal(t, 12.0, p.Tiling)
	assert.Equal(t, 0.8, p.Glow.G)
	assert.Equal(t, 3.5, p.GlowGain)
	assert.Equal(t, DefaultParams().CutJitter, p.CutJitter)

	require.ErrorIs(t, p.Apply(map[string]string{"tilling": "3"}), ErrInvalidParams)
	require.ErrorIs(t, p.Apply(map[string]string{"tiling": "many"}), ErrInvalidParams)
}

func TestKeysSorted(t *testing.T) {
	p := DefaultParams()
	keys := p.Keys()
	require.NotEmpty(t, keys)
	assert.Contains(t, keys, "sweep.margin")
	assert.IsIncreasing(t, keys)
}

func TestStateClamped(t *testing.T) {
	got := State{Transition: 1.7, Time: -3, Aspect: -1}.Clamped()
	assert.Equal(t, State{Transition: 1, Time: 0, Aspect: 1}, got)

	got = State{Transition: math.NaN(), Time: 2, Aspect: 1.5}.Clamped()
	assert.Equal(t, State{Transition: 0, Time: 2, Aspect: 1.5}, got)

	inRange := State{Transition: 0.3, Time: 8, Aspect: 0.75}
	assert.Equal(t, inRange, inRange.Clamped())
}
