package effect

import "math"

// State is the per-frame input owned by the caller. The effect reads it and
// never retains it between calls.
type State struct {
	// Transition runs from 0 (first image) to 1 (second image). Values
	// outside the range extrapolate the sweep; nothing is clamped here.
	Transition float64
	// Time is monotonic seconds since the effect started.
	Time float64
	// Aspect is frame width over height.
	Aspect float64
}

// Clamped returns a copy with Transition in [0, 1], Time non-negative and a
// usable Aspect. Drivers call this before handing the state over.
func (s State) Clamped() State {
	out := s
	switch {
	case math.IsNaN(out.Transition) || out.Transition < 0:
		out.Transition = 0
	case out.Transition > 1:
		out.Transition = 1
	}
	if math.IsNaN(out.Time) || out.Time < 0 {
		out.Time = 0
	}
	out.Aspect = s.aspect()
	return out
}

// aspect treats non-positive or non-finite ratios as square.
func (s State) aspect() float64 {
	if s.Aspect > 0 && !math.IsInf(s.Aspect, 0) {
		return s.Aspect
	}
	return 1
}
