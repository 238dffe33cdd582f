package timer

// Animation cycles through Frames frames, FrameDuration ms each.
// Columns is the strip width in the atlas.
type Animation struct {
	Frames        int
	Columns       int
	FrameDuration float64

	current int
	clock   *Timer
}

// NewAnimation creates a looping animation
func NewAnimation(frames, columns int, frameDuration float64) *Animation {
	return &Animation{
		Frames:        frames,
		Columns:       columns,
		FrameDuration: frameDuration,
		clock:         New(frameDuration, true),
	}
}

// Update advances the animation by dt seconds
func (a *Animation) Update(dt float64) {
	a.clock.Update(dt)
	if a.clock.Done() {
		a.current = (a.current + 1) % a.Frames
		a.clock.Restart()
	}
}

// Frame returns the current frame index
func (a *Animation) Frame() int { return a.current }

// Rewind returns to the first frame
func (a *Animation) Rewind() {
	a.current = 0
	a.clock.Restart()
}
