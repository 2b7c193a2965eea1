package effect

import (
	"hexwipe/internal/hexmath"

	"seehuhn.de/go/geom/vec"
)

// hexSampleAt builds a cell sample whose offset has hex distance d.
func hexSampleAt(d float64) hexmath.Sample {
	return hexmath.Sample{Offset: vec.Vec2{X: d}}
}
