package core

import "time"

// Clock supplies monotonic time and blocking delays to the control loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks for d.
func (SystemClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// ManualClock is a simulated clock: Sleep advances time instantly. It is not
// safe for concurrent use.
type ManualClock struct {
	now   time.Time
	slept time.Duration
}

// NewManualClock starts a simulated clock at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the simulated time.
func (c *ManualClock) Now() time.Time { return c.now }

// Sleep advances the simulated time by d.
func (c *ManualClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	c.now = c.now.Add(d)
	c.slept += d
}

// Advance moves the clock forward without counting it as sleep.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Slept reports the total time spent in Sleep.
func (c *ManualClock) Slept() time.Duration { return c.slept }
