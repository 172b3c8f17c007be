package sim

import "time"

// TimerMode selects whether a timer stops or wraps when it runs out.
type TimerMode int

const (
	Once TimerMode = iota
	Repeating
)

// Timer counts elapsed simulation time toward a target duration.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode

	finished     bool
	justFinished bool
	times        int
}

// NewTimer creates a stopped-at-zero timer.
func NewTimer(d time.Duration, mode TimerMode) *Timer {
	return &Timer{duration: d, mode: mode}
}

// Tick advances the timer by dt.
func (t *Timer) Tick(dt time.Duration) {
	t.justFinished = false
	t.times = 0

	if t.mode == Once && t.finished {
		return
	}

	t.elapsed += dt
	if t.elapsed < t.duration {
		if t.mode == Repeating {
			t.finished = false
		}
		return
	}

	t.finished = true
	t.justFinished = true

	if t.mode == Once {
		t.elapsed = t.duration
		t.times = 1
		return
	}

	if t.duration <= 0 {
		t.elapsed = 0
		t.times = 1
		return
	}
	t.times = int(t.elapsed / t.duration)
	t.elapsed %= t.duration
}

// Finished reports whether the timer has run out. A repeating timer is
// finished only on the tick it wrapped.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the last Tick crossed the target.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// TimesFinishedThisTick returns how many periods the last Tick completed.
func (t *Timer) TimesFinishedThisTick() int {
	return t.times
}

// Reset rewinds the timer to zero elapsed.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
	t.times = 0
}

// Elapsed returns time accumulated in the current period.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the target duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// SetDuration changes the target without touching elapsed time. A shorter
// target fires on the next Tick if elapsed already exceeds it.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

// Remaining returns time left in the current period.
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Fraction returns elapsed/duration in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	return float64(t.elapsed) / float64(t.duration)
}
