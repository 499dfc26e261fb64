package game

// Throttle rate-limits spawning while the trigger is held. It counts frames,
// not wall time, so the cadence follows the frame cap.
type Throttle struct {
	threshold int
	frames    int
}

// NewThrottle returns a throttle that allows one spawn every threshold+1
// held frames.
func NewThrottle(threshold int) *Throttle {
	return &Throttle{threshold: threshold}
}

// TrySpawn counts one frame while held and reports whether a spawn is due.
// A released trigger leaves the counter untouched, so a quick release and
// re-press resumes the old count.
func (t *Throttle) TrySpawn(held bool) bool {
	if !held {
		return false
	}
	t.frames++
	if t.frames > t.threshold {
		t.frames = 0
		return true
	}
	return false
}

// Frames returns the held frames counted since the last spawn.
func (t *Throttle) Frames() int { return t.frames }

// Threshold returns the configured threshold.
func (t *Throttle) Threshold() int { return t.threshold }

// SetThreshold changes the threshold. The current count is kept, so a
// lowered threshold fires on the next held frame.
func (t *Throttle) SetThreshold(threshold int) { t.threshold = threshold }

// Reset zeroes the counter.
func (t *Throttle) Reset() { t.frames = 0 }
