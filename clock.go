package easel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Clock tracks frame timing for an Applet. Delta is the wall-clock time
// between the starts of consecutive logic frames; the engine's frame pacing
// (the blocking wait that enforces the FPS cap) happens outside the Clock,
// inside the engine loop.
type Clock struct {
	frames uint64
	delta  float64
	last   time.Time
}

// minDelta keeps Delta strictly positive. The GUI rejects zero or negative
// frame deltas.
const minDelta = 1e-6

// tick records the start of a new logic frame. targetFPS supplies the
// first-frame fallback delta before any interval has been measured.
func (c *Clock) tick(targetFPS int) {
	now := time.Now()
	if c.last.IsZero() {
		c.delta = 1.0 / float64(max(targetFPS, 1))
	} else {
		c.delta = now.Sub(c.last).Seconds()
		if c.delta < minDelta {
			c.delta = minDelta
		}
	}
	c.last = now
	c.frames++
}

// reset clears the clock so the next tick is treated as a first frame.
func (c *Clock) reset() {
	c.frames = 0
	c.delta = 0
	c.last = time.Time{}
}

// Delta returns the seconds elapsed between the last two logic frames.
// Zero before the first frame.
func (c *Clock) Delta() float64 {
	return c.delta
}

// FrameCount returns the number of logic frames started since Run began.
func (c *Clock) FrameCount() uint64 {
	return c.frames
}

// FPS returns the engine's measured frames (draws) per second.
func (c *Clock) FPS() float64 {
	return ebiten.ActualFPS()
}

// TPS returns the engine's measured logic ticks per second.
func (c *Clock) TPS() float64 {
	return ebiten.ActualTPS()
}
