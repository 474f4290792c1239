package component

// Timer is a one-shot countdown in seconds.
type Timer struct {
	Duration float64
	Elapsed  float64
}

func NewTimer(duration float64) Timer {
	if duration < 0 {
		duration = 0
	}
	return Timer{Duration: duration}
}

// Tick advances the timer; it never runs past Duration.
func (t *Timer) Tick(dt float64) {
	t.Elapsed += dt
	if t.Elapsed > t.Duration {
		t.Elapsed = t.Duration
	}
}

// Finished reports whether the full duration has elapsed.
func (t Timer) Finished() bool {
	return t.Elapsed >= t.Duration
}

// Remaining is the time left before Finished.
func (t Timer) Remaining() float64 {
	return t.Duration - t.Elapsed
}

// Fraction is elapsed/duration in [0,1]; a zero-length timer is complete.
func (t Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return t.Elapsed / t.Duration
}
