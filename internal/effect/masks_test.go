package effect

import (
	"math"
	"testing"

	"hexwipe/internal/hexmath"
	"hexwipe/internal/noise"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func interiorUVs(n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pts = append(pts, vec.Vec2{
				X: (float64(i) + 0.5) / float64(n),
				Y: (float64(j) + 0.5) / float64(n),
			})
		}
	}
	return pts
}

func newTestEffect(t *testing.T, p Params, n noise.Field) *Effect {
	t.Helper()
	e, err := New(p, n)
	require.NoError(t, err)
	return e
}

func TestBounce(t *testing.T) {
	assert.Equal(t, 0.0, Bounce(0))
	assert.Equal(t, 0.0, Bounce(1))
	assert.Equal(t, 1.0, Bounce(0.5))
	assert.Greater(t, Bounce(0.4), Bounce(0.2))
	assert.InDelta(t, Bounce(0.3), Bounce(0.7), 1e-12)
}

func TestCutAtRestStates(t *testing.T) {
	e := newTestEffect(t, DefaultParams(), noise.NewSimplex(11))
	for _, uv := range interiorUVs(64) {
		at0 := e.Evaluate(uv, State{Transition: 0, Aspect: 1})
		require.Equal(t, 0.0, at0.Masks.Cut, "uv=%v", uv)
		require.Equal(t, 0.0, at0.Masks.Glow(), "uv=%v", uv)

		at1 := e.Evaluate(uv, State{Transition: 1, Time: 4, Aspect: 1})
		require.Equal(t, 1.0, at1.Masks.Cut, "uv=%v", uv)
		require.Equal(t, 0.0, at1.Masks.Glow(), "uv=%v", uv)
	}
}

func TestSweepFlipOrdering(t *testing.T) {
	p := DefaultParams()
	p.CutJitter = 0
	e := newTestEffect(t, p, noise.NewSimplex(5))

	flipAt := func(uv vec.Vec2) float64 {
		for i := 0; i <= 1000; i++ {
			tr := float64(i) / 1000
			if e.Evaluate(uv, State{Transition: tr, Aspect: 1}).Masks.Cut == 1 {
				return tr
			}
		}
		return math.Inf(1)
	}

	for _, x := range []float64{0.13, 0.5, 0.77} {
		prev := -1.0
		for j := 0; j < 20; j++ {
			uv := vec.Vec2{X: x, Y: (float64(j) + 0.5) / 20}
			flip := flipAt(uv)
			require.Greater(t, flip, prev, "flip point not increasing at %v", uv)
			prev = flip
		}
	}
}

func TestSweepFlipStaysNearRow(t *testing.T) {
	p := DefaultParams()
	e := newTestEffect(t, p, noise.NewSimplex(5))
	bound := (p.PopGain + 1) * p.CutJitter

	for _, uv := range interiorUVs(16) {
		flip := math.Inf(1)
		for i := 0; i <= 500; i++ {
			tr := float64(i) / 500
			if e.Evaluate(uv, State{Transition: tr, Aspect: 1}).Masks.Cut == 1 {
				flip = tr
				break
			}
		}
		require.LessOrEqual(t, math.Abs(flip-uv.Y), bound+0.002, "uv=%v", uv)
	}
}

func TestMergeTracksBlendCut(t *testing.T) {
	e := newTestEffect(t, DefaultParams(), noise.Constant(0))
	st := State{Transition: 0.5, Aspect: 1}

	onBand := e.Evaluate(vec.Vec2{X: 0.31, Y: 0.5}, st).Masks
	assert.InDelta(t, 0.5, onBand.BlendCut, 1e-9)
	assert.InDelta(t, 1.0, onBand.Merge, 1e-9)

	farBelow := e.Evaluate(vec.Vec2{X: 0.31, Y: 0.05}, st).Masks
	assert.Equal(t, 1.0, farBelow.BlendCut)
	assert.Equal(t, 0.0, farBelow.Merge)
}

func TestBorderRing(t *testing.T) {
	p := DefaultParams()
	n := noise.Constant(0)
	center := ComputeMasks(p, n, vec.Vec2{Y: 0.5}, hexSampleAt(0), State{Transition: 0.5})
	assert.Equal(t, 0.0, center.Border)
	assert.InDelta(t, math.Pow(0.5, p.PopExponent)*p.PopGain, center.Pop, 1e-12)

	// The bias pulls the ring inward but a cell edge sits two thirds up the ramp.
	edge := ComputeMasks(p, n, vec.Vec2{Y: 0.5}, hexSampleAt(0.5), State{Transition: 0.5})
	assert.InDelta(t, 20.0/27.0, edge.Border, 1e-9)
	assert.InDelta(t, p.PopGain, edge.Pop, 1e-12)

	outside := ComputeMasks(p, n, vec.Vec2{Y: 0.5}, hexSampleAt(0.52), State{Transition: 0.5})
	assert.Equal(t, 1.0, outside.Border)
}

func TestCoordsUndisturbedAtRest(t *testing.T) {
	e := newTestEffect(t, DefaultParams(), noise.NewSimplex(2))
	for _, tr := range []float64{0, 1} {
		for _, uv := range interiorUVs(12) {
			c := e.Evaluate(uv, State{Transition: tr, Time: 9.5, Aspect: 1}).Coords
			for _, got := range []vec.Vec2{c.Wobble, c.From, c.To} {
				require.InDelta(t, uv.X, got.X, 1e-12, "transition=%v uv=%v", tr, uv)
				require.InDelta(t, uv.Y, got.Y, 1e-12, "transition=%v uv=%v", tr, uv)
			}
		}
	}
}

func TestCoordsRippleAndPulse(t *testing.T) {
	const z = 0.4
	e := newTestEffect(t, DefaultParams(), noise.Constant(z))
	st := State{Transition: 0.5, Time: 1.5, Aspect: 1}
	later := st
	later.Time = 3.5

	found, split := 0, 0
	maxShift := 0.0
	for _, uv := range interiorUVs(200) {
		ev := e.Evaluate(uv, st)
		m := ev.Masks
		if m.Merge < 0.5 || m.Pop < 0.5 {
			continue
		}
		found++
		c := ev.Coords

		ripple := m.Pop * math.Sin(uv.Y*15-st.Time*0.5) * m.Merge * 0.025
		require.InDelta(t, ripple, c.Wobble.X-uv.X, 1e-12, "uv=%v", uv)
		require.InDelta(t, ripple, c.Wobble.Y-uv.Y, 1e-12, "uv=%v", uv)

		from := hexmath.ScaleUniform(c.Wobble, hexmath.Center, 1+z*0.2*m.Merge)
		to := hexmath.ScaleUniform(c.Wobble, hexmath.Center, 1+z*0.2*m.BlendCut)
		require.InDelta(t, from.X, c.From.X, 1e-12, "uv=%v", uv)
		require.InDelta(t, from.Y, c.From.Y, 1e-12, "uv=%v", uv)
		require.InDelta(t, to.X, c.To.X, 1e-12, "uv=%v", uv)
		require.InDelta(t, to.Y, c.To.Y, 1e-12, "uv=%v", uv)
		if math.Abs(m.Merge-m.BlendCut) > 0.1 {
			split++
		}

		moved := e.Evaluate(uv, later).Coords.Wobble
		maxShift = math.Max(maxShift, math.Abs(moved.X-c.Wobble.X))
	}
	require.Greater(t, found, 100, "no strong seam samples on the sweep band")
	assert.Greater(t, split, 10, "merge and blend cut never differ")
	assert.Greater(t, maxShift, 1e-3, "ripple does not move with time")
}

func TestJitterSampledAtSignedCellID(t *testing.T) {
	var gotX, gotY float64
	field := noise.Func(func(x, y float64) float64 {
		gotX, gotY = x, y
		return -0.75
	})
	cell := hexmath.Sample{Center: vec.Vec2{X: -5, Y: 3}}
	m := ComputeMasks(DefaultParams(), field, vec.Vec2{Y: 0.5}, cell, State{Transition: 0.5})
	assert.InDelta(t, -3.0, gotX, 1e-12)
	assert.InDelta(t, 1.8, gotY, 1e-12)
	assert.Equal(t, -0.75, m.Jitter)
}
