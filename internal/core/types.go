package core

// Size describes frame dimensions in pixels.
type Size struct {
	W int
	H int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// Aspect returns width over height, or 1 for an empty size.
func (s Size) Aspect() float64 {
	if !s.Valid() {
		return 1
	}
	return float64(s.W) / float64(s.H)
}

// Scaled multiplies both dimensions by k.
func (s Size) Scaled(k int) Size {
	return Size{W: s.W * k, H: s.H * k}
}
