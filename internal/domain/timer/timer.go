// Package timer provides simulated-time countdowns and frame animations.
// Time is accumulated from the delta time passed to Update (seconds) and
// compared in milliseconds, so behaviour is independent of wall-clock time.
package timer

// Timer fires once after Length milliseconds of accumulated update time
type Timer struct {
	Length  float64 // ms
	elapsed float64 // ms
	started bool
	done    bool
}

// New creates a timer of length ms, optionally already running
func New(length float64, started bool) *Timer {
	return &Timer{Length: length, started: started}
}

// Start begins counting from zero
func (t *Timer) Start() {
	t.started = true
	t.done = false
	t.elapsed = 0
}

// Reset stops the timer and clears its progress
func (t *Timer) Reset() {
	t.started = false
	t.done = false
	t.elapsed = 0
}

// Restart is Reset followed by Start
func (t *Timer) Restart() {
	t.Reset()
	t.Start()
}

// Update advances a running timer by dt seconds
func (t *Timer) Update(dt float64) {
	if !t.started || t.done {
		return
	}
	t.elapsed += dt * 1000
	if t.elapsed >= t.Length {
		t.done = true
	}
}

// Done reports whether the timer has elapsed
func (t *Timer) Done() bool { return t.done }

// Started reports whether the timer is running or finished
func (t *Timer) Started() bool { return t.started }

// Elapsed returns the accumulated time in milliseconds
func (t *Timer) Elapsed() float64 { return t.elapsed }

// Remaining returns the milliseconds left, never negative
func (t *Timer) Remaining() float64 {
	if t.elapsed >= t.Length {
		return 0
	}
	return t.Length - t.elapsed
}
