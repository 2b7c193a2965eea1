package noise

import "github.com/ojrac/opensimplex-go"

// KindSimplex is OpenSimplex noise, the default backend.
const KindSimplex Kind = "simplex"

// Simplex is a 2D OpenSimplex field in [-1, 1].
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex seeds an OpenSimplex field.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Eval2 samples the field.
func (s *Simplex) Eval2(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

func init() {
	Register(KindSimplex, func(seed int64) Field { return NewSimplex(seed) })
}
