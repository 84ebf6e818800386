package core

import "time"

// FixedStep paces a control loop at a steady ticks-per-second rate.
type FixedStep struct {
	step time.Duration
	next time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Wait schedules the next tick and returns how long the caller should sleep
// before running it. A loop that fell behind the schedule (for instance after
// a blocking presentation) is resynchronised to now instead of bursting
// through the missed ticks.
func (f *FixedStep) Wait(now time.Time) time.Duration {
	if f.next.IsZero() {
		f.next = now
	}
	f.next = f.next.Add(f.step)
	wait := f.next.Sub(now)
	if wait <= 0 {
		f.next = now
		return 0
	}
	if wait > f.step {
		// Clock went backwards.
		f.next = now.Add(f.step)
		return f.step
	}
	return wait
}

// Reset forgets the schedule; the next Wait starts a fresh one.
func (f *FixedStep) Reset() { f.next = time.Time{} }
