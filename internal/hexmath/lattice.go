// Package hexmath maps plane coordinates onto a hexagonal tiling and provides
// the scalar shaping functions shared by the transition stages.
package hexmath

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Stride holds the lattice constants (1, √3). Under Distance, the level set
// at EdgeDistance is a regular hexagon whose edges touch the six neighbors.
var Stride = vec.Vec2{X: 1, Y: math.Sqrt(3)}

// Center is the middle of the unit UV square.
var Center = vec.Vec2{X: 0.5, Y: 0.5}

// EdgeDistance is the value Distance reports on a cell edge.
const EdgeDistance = 0.5

// staggerShift moves the second lattice by half a cell on both axes.
var staggerShift = vec.Vec2{X: 0.5, Y: 0.5}

// Sample locates a coordinate inside the hex tiling.
type Sample struct {
	// Offset is the coordinate relative to the owning cell's center.
	Offset vec.Vec2
	// Center identifies the cell on its lattice. It is integer valued.
	Center vec.Vec2
	// Staggered reports that the cell belongs to the shifted lattice.
	Staggered bool
}

// Origin returns the cell center in the same space as the input coordinate.
func (s Sample) Origin() vec.Vec2 {
	c := s.Center
	if s.Staggered {
		c = c.Add(staggerShift)
	}
	return mulElem(c, Stride)
}

// Scale zooms uv about center by a per-axis factor.
func Scale(uv, center, factor vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: (uv.X-center.X)*factor.X + center.X,
		Y: (uv.Y-center.Y)*factor.Y + center.Y,
	}
}

// ScaleUniform zooms uv about center by the same factor on both axes.
func ScaleUniform(uv, center vec.Vec2, factor float64) vec.Vec2 {
	return uv.Sub(center).Mul(factor).Add(center)
}

// Distance is the hexagonal metric of p: 0 at a cell center, EdgeDistance on
// the cell boundary, growing linearly outward. Distance(p) == Distance(-p).
func Distance(p vec.Vec2) float64 {
	ax, ay := math.Abs(p.X), math.Abs(p.Y)
	return math.Max(ax*Stride.X*0.5+ay*Stride.Y*0.5, ax)
}

// Coordinates finds the hex cell containing uv. The tiling is the union of
// two rectangular lattices offset by half a cell; the candidate with the
// smaller squared offset wins, ties going to the staggered lattice.
func Coordinates(uv vec.Vec2) Sample {
	c1 := snap(divElem(uv, Stride))
	c2 := snap(divElem(uv.Sub(vec.Vec2{X: 0.5, Y: 1}), Stride))

	o1 := uv.Sub(mulElem(c1, Stride))
	o2 := uv.Sub(mulElem(c2.Add(staggerShift), Stride))

	if o1.Dot(o1) < o2.Dot(o2) {
		return Sample{Offset: o1, Center: c1}
	}
	return Sample{Offset: o2, Center: c2, Staggered: true}
}

// snap rounds both components to the nearest integer, halves away from zero.
func snap(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: math.Round(v.X), Y: math.Round(v.Y)}
}

func mulElem(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: a.X * b.X, Y: a.Y * b.Y}
}

func divElem(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: a.X / b.X, Y: a.Y / b.Y}
}
