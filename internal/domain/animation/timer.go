package animation

import "time"

// TimerMode controls what a Timer does once its duration elapses
type TimerMode int

const (
	// Once stops at the duration and stays finished
	Once TimerMode = iota
	// Repeating wraps around and finishes again every duration
	Repeating
)

// Timer counts elapsed time against a fixed duration.
//
// A repeating timer reports Finished only for the tick in which it wrapped;
// the overflow is carried into the next cycle.
type Timer struct {
	duration      time.Duration
	elapsed       time.Duration
	mode          TimerMode
	finished      bool
	timesFinished int
}

// NewTimer creates a timer with the given duration and mode
func NewTimer(duration time.Duration, mode TimerMode) Timer {
	return Timer{duration: duration, mode: mode}
}

// Tick advances the timer by delta
func (t *Timer) Tick(delta time.Duration) {
	if t.mode == Once && t.finished {
		t.timesFinished = 0
		return
	}

	t.elapsed += delta
	if t.elapsed < t.duration {
		t.finished = false
		t.timesFinished = 0
		return
	}

	t.finished = true
	if t.mode == Once {
		t.elapsed = t.duration
		t.timesFinished = 1
		return
	}

	if t.duration <= 0 {
		t.elapsed = 0
		t.timesFinished = 1
		return
	}
	t.timesFinished = int(t.elapsed / t.duration)
	t.elapsed %= t.duration
}

// Finished reports whether the timer finished on the last tick
// (repeating) or has reached its duration (once).
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the last tick crossed the duration
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinishedThisTick returns how many cycles the last tick completed
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Remaining returns the time left until the next completion
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Elapsed returns the time accumulated in the current cycle
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the cycle length
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Mode returns the timer mode
func (t *Timer) Mode() TimerMode {
	return t.mode
}

// Reset clears elapsed time and the finished flags
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}
