package sim

// timeEpsilon absorbs float accumulation error so that N ticks of 1/N
// seconds finish a one-second timer on the Nth tick.
const timeEpsilon = 1e-9

// Timer is a countdown measured in simulated seconds.
// It only advances when ticked, so host pauses never expire it.
type Timer struct {
	Duration float64
	Elapsed  float64
}

// NewTimer creates a timer that finishes after d seconds.
func NewTimer(d float64) Timer {
	return Timer{Duration: d}
}

// Tick advances the timer and reports whether it has finished.
func (t *Timer) Tick(dt float64) bool {
	if !t.Finished() {
		t.Elapsed += dt
	}
	return t.Finished()
}

// Finished reports whether the full duration has elapsed.
func (t Timer) Finished() bool {
	return t.Elapsed+timeEpsilon >= t.Duration
}

// Restart rewinds the timer to zero.
func (t *Timer) Restart() {
	t.Elapsed = 0
}

// Animation is a looping frame counter. The core never picks sprite frames;
// it only tracks which frame of a cycle is current so that cycle completion
// can drive state changes.
type Animation struct {
	Frames    int
	FrameTime float64
	Frame     int
	Paused    bool
	acc       float64
}

// NewAnimation creates an animation cycle.
func NewAnimation(frames int, frameTime float64) Animation {
	return Animation{Frames: frames, FrameTime: frameTime}
}

// Configure switches the cycle length without rewinding.
func (a *Animation) Configure(frames int, frameTime float64) {
	a.Frames = frames
	a.FrameTime = frameTime
	if frames > 0 {
		a.Frame %= frames
	}
}

// Restart switches to a cycle and rewinds to its first frame.
func (a *Animation) Restart(frames int, frameTime float64) {
	a.Frames = frames
	a.FrameTime = frameTime
	a.Frame = 0
	a.acc = 0
}

// Rewind returns to the first frame of the current cycle.
func (a *Animation) Rewind() {
	a.Frame = 0
	a.acc = 0
}

// Advance steps the clock by dt and reports whether the cycle wrapped back
// to frame 0. At most one frame advances per call.
func (a *Animation) Advance(dt float64) bool {
	if a.Paused || a.Frames <= 0 || a.FrameTime <= 0 {
		return false
	}

	a.acc += dt
	if a.acc+timeEpsilon < a.FrameTime {
		return false
	}
	a.acc -= a.FrameTime
	if a.acc < 0 {
		a.acc = 0
	}

	a.Frame = (a.Frame + 1) % a.Frames
	return a.Frame == 0
}
