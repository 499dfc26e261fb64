// Package timing caps the presentation rate of the frame loop.
package timing

import "time"

// spinWindow is how close to the deadline Wait stops sleeping and spins.
const spinWindow = 200 * time.Microsecond

// Limiter paces frames to a fixed rate.
type Limiter struct {
	fps  int
	next time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter returns a limiter for fps frames per second. fps <= 0 disables it.
func NewLimiter(fps int) *Limiter {
	return &Limiter{fps: fps, now: time.Now, sleep: time.Sleep}
}

// FPS returns the configured cap.
func (l *Limiter) FPS() int {
	return l.fps
}

// SetFPS changes the cap. Pacing restarts from the next Wait.
func (l *Limiter) SetFPS(fps int) {
	l.fps = fps
	l.next = time.Time{}
}

// Interval returns the target frame duration, zero when uncapped.
func (l *Limiter) Interval() time.Duration {
	if l.fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(l.fps)
}

// Wait blocks until the next frame is due. It sleeps for most of the gap
// and spins the last few microseconds. A frame that overruns by more than
// one interval resynchronizes instead of trying to catch up.
func (l *Limiter) Wait() {
	target := l.Interval()
	if target == 0 {
		l.next = time.Time{}
		return
	}

	if l.next.IsZero() {
		l.next = l.now().Add(target)
	} else {
		l.next = l.next.Add(target)
	}

	for {
		remaining := l.next.Sub(l.now())
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			l.sleep(remaining - spinWindow)
		}
	}

	if now := l.now(); now.Sub(l.next) > target {
		l.next = now
	}
}
