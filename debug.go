package easel

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// frameStats holds per-frame pipeline timing metrics.
// Only populated when the applet is in debug mode.
type frameStats struct {
	events   int
	poll     time.Duration
	dispatch time.Duration
	tick     time.Duration
	gui      time.Duration
	draw     time.Duration
}

// debugLog prints pipeline timing to stderr once per frame.
func (a *Applet) debugLog() {
	if !a.debug {
		return
	}
	stats := a.stats
	total := stats.poll + stats.dispatch + stats.tick + stats.gui
	_, _ = fmt.Fprintf(os.Stderr,
		"[easel] poll: %v | dispatch: %v | tick: %v | gui: %v | update total: %v\n",
		stats.poll, stats.dispatch, stats.tick, stats.gui, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[easel] events: %d | draw: %v | fps: %.1f\n",
		stats.events, stats.draw, ebiten.ActualFPS())
}
