package easel

import (
	"testing"
	"time"
)

func TestClockFirstTick(t *testing.T) {
	var c Clock
	c.tick(60)

	if got, want := c.Delta(), 1.0/60.0; got != want {
		t.Errorf("Delta = %v, want %v", got, want)
	}
	if got := c.FrameCount(); got != 1 {
		t.Errorf("FrameCount = %d, want 1", got)
	}
}

func TestClockMeasuredDelta(t *testing.T) {
	var c Clock
	c.tick(60)
	time.Sleep(5 * time.Millisecond)
	c.tick(60)

	if got := c.Delta(); got < 0.004 {
		t.Errorf("Delta = %v, want at least ~5ms", got)
	}
	if got := c.FrameCount(); got != 2 {
		t.Errorf("FrameCount = %d, want 2", got)
	}
}

func TestClockDeltaFloor(t *testing.T) {
	var c Clock
	c.tick(60)
	c.tick(60) // back to back, near-zero interval

	if got := c.Delta(); got < minDelta {
		t.Errorf("Delta = %v, want at least %v", got, minDelta)
	}
}

func TestClockReset(t *testing.T) {
	var c Clock
	c.tick(60)
	c.tick(60)
	c.reset()

	if got := c.FrameCount(); got != 0 {
		t.Errorf("FrameCount after reset = %d, want 0", got)
	}
	if got := c.Delta(); got != 0 {
		t.Errorf("Delta after reset = %v, want 0", got)
	}

	// The next tick is a first frame again, using the target fallback.
	c.tick(30)
	if got, want := c.Delta(), 1.0/30.0; got != want {
		t.Errorf("Delta = %v, want %v", got, want)
	}
}

func TestClockZeroTargetFPS(t *testing.T) {
	var c Clock
	c.tick(0)

	if got := c.Delta(); got != 1.0 {
		t.Errorf("Delta = %v, want 1.0 (target clamped to 1)", got)
	}
}
