package core

import "time"

// Clock reports monotonic elapsed seconds since the effect started. Paused
// time is not counted, so the reading never jumps and never decreases.
type Clock struct {
	now     func() time.Time
	start   time.Time
	paused  bool
	pausedT time.Time
	skipped time.Duration
}

// NewClock starts a clock on the wall time source.
func NewClock() *Clock {
	return NewClockWith(time.Now)
}

// NewClockWith starts a clock reading the provided time source.
func NewClockWith(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	c := &Clock{now: now}
	c.Reset()
	return c
}

// Reset restarts the clock at zero, keeping the pause state.
func (c *Clock) Reset() {
	t := c.now()
	c.start = t
	c.pausedT = t
	c.skipped = 0
}

// Elapsed returns running seconds since the last Reset.
func (c *Clock) Elapsed() float64 {
	end := c.now()
	if c.paused {
		end = c.pausedT
	}
	d := end.Sub(c.start) - c.skipped
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// Paused reports whether the clock is stopped.
func (c *Clock) Paused() bool { return c.paused }

// SetPaused stops or resumes the clock.
func (c *Clock) SetPaused(p bool) {
	if p == c.paused {
		return
	}
	t := c.now()
	if p {
		c.pausedT = t
	} else {
		c.skipped += t.Sub(c.pausedT)
	}
	c.paused = p
}

// Toggle flips the pause state.
func (c *Clock) Toggle() { c.SetPaused(!c.paused) }
