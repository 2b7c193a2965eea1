package hexmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func gridPoints(lo, hi float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n*n)
	step := (hi - lo) / float64(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// Irrational-ish jitter keeps samples off exact lattice ties.
			x := lo + (float64(i)+0.5)*step + 1e-3*math.Sqrt2
			y := lo + (float64(j)+0.5)*step + 1e-3*math.Pi
			pts = append(pts, vec.Vec2{X: x, Y: y})
		}
	}
	return pts
}

func TestScaleIdentityAtUnitFactor(t *testing.T) {
	centers := []vec.Vec2{Center, {X: 0, Y: 0}, {X: -3.5, Y: 12.25}}
	for _, c := range centers {
		for _, p := range gridPoints(-4, 4, 9) {
			got := Scale(p, c, vec.Vec2{X: 1, Y: 1})
			assert.InDelta(t, p.X, got.X, 1e-12)
			assert.InDelta(t, p.Y, got.Y, 1e-12)

			got = ScaleUniform(p, c, 1)
			assert.InDelta(t, p.X, got.X, 1e-12)
			assert.InDelta(t, p.Y, got.Y, 1e-12)
		}
	}
}

func TestScaleZoomsAboutCenter(t *testing.T) {
	got := ScaleUniform(vec.Vec2{X: 1, Y: 0}, Center, 0.5)
	assert.InDelta(t, 0.75, got.X, 1e-12)
	assert.InDelta(t, 0.25, got.Y, 1e-12)

	got = Scale(vec.Vec2{X: 1, Y: 1}, Center, vec.Vec2{X: 2, Y: 1})
	assert.InDelta(t, 1.5, got.X, 1e-12)
	assert.InDelta(t, 1.0, got.Y, 1e-12)

	// The center itself is a fixed point for any factor.
	got = ScaleUniform(Center, Center, 17)
	assert.Equal(t, Center, got)
}

func TestDistanceSymmetry(t *testing.T) {
	for _, p := range gridPoints(-3, 3, 25) {
		neg := vec.Vec2{X: -p.X, Y: -p.Y}
		require.Equal(t, Distance(p), Distance(neg), "p=%v", p)
		mirrored := vec.Vec2{X: -p.X, Y: p.Y}
		require.Equal(t, Distance(p), Distance(mirrored), "p=%v", p)
	}
}

func TestDistanceLevels(t *testing.T) {
	assert.Equal(t, 0.0, Distance(vec.Vec2{}))
	// Flat edge facing +x.
	assert.InDelta(t, EdgeDistance, Distance(vec.Vec2{X: 0.5, Y: 0}), 1e-12)
	// Vertex above the center.
	assert.InDelta(t, EdgeDistance, Distance(vec.Vec2{X: 0, Y: 1 / math.Sqrt(3)}), 1e-12)
	// Midpoint between two neighboring centers lies on the shared edge.
	mid := vec.Vec2{X: 0.25, Y: math.Sqrt(3) / 4}
	assert.InDelta(t, EdgeDistance, Distance(mid), 1e-12)
	// Linear growth along a ray.
	assert.InDelta(t, 2*Distance(mid), Distance(mid.Mul(2)), 1e-12)
}

func TestCoordinatesDeterministic(t *testing.T) {
	for _, p := range gridPoints(-20, 20, 40) {
		a := Coordinates(p)
		b := Coordinates(p)
		require.Equal(t, a, b)
	}
}

func TestCoordinatesReconstructInput(t *testing.T) {
	for _, p := range gridPoints(-20, 20, 40) {
		s := Coordinates(p)
		back := s.Origin().Add(s.Offset)
		require.InDelta(t, p.X, back.X, 1e-9)
		require.InDelta(t, p.Y, back.Y, 1e-9)

		require.Equal(t, math.Round(s.Center.X), s.Center.X)
		require.Equal(t, math.Round(s.Center.Y), s.Center.Y)
	}
}

func TestCoordinatesStayInsideCell(t *testing.T) {
	for _, p := range gridPoints(-15, 15, 120) {
		s := Coordinates(p)
		d := Distance(s.Offset)
		require.LessOrEqual(t, d, EdgeDistance+1e-9, "p=%v sample=%+v", p, s)
	}
}

func TestCoordinatesPicksNearestCandidate(t *testing.T) {
	for _, p := range gridPoints(-6, 6, 30) {
		c1 := snap(divElem(p, Stride))
		c2 := snap(divElem(p.Sub(vec.Vec2{X: 0.5, Y: 1}), Stride))
		o1 := p.Sub(mulElem(c1, Stride))
		o2 := p.Sub(mulElem(c2.Add(staggerShift), Stride))
		d1, d2 := o1.Dot(o1), o2.Dot(o2)
		require.NotEqual(t, d1, d2, "generic input produced a tie at %v", p)

		s := Coordinates(p)
		if d1 < d2 {
			require.False(t, s.Staggered)
			require.Equal(t, c1, s.Center)
		} else {
			require.True(t, s.Staggered)
			require.Equal(t, c2, s.Center)
		}
	}
}

func TestCoordinatesKnownCells(t *testing.T) {
	s := Coordinates(vec.Vec2{X: 0.01, Y: 0.02})
	assert.False(t, s.Staggered)
	assert.Equal(t, vec.Vec2{}, s.Center)

	s = Coordinates(vec.Vec2{X: 0.5, Y: math.Sqrt(3) / 2})
	assert.True(t, s.Staggered)
	assert.Equal(t, vec.Vec2{}, s.Center)
	assert.InDelta(t, 0, s.Offset.Length(), 1e-12)

	s = Coordinates(vec.Vec2{X: 3.02, Y: 2 * math.Sqrt(3)})
	assert.False(t, s.Staggered)
	assert.Equal(t, vec.Vec2{X: 3, Y: 2}, s.Center)
}
