package easel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// game adapts an Applet to the engine's Game interface. The engine owns
// frame pacing and presentation; the applet owns everything in between.
type game struct {
	app *Applet
}

func (g *game) Update() error {
	return g.app.update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.app.draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.app.width, g.app.height
}

// update runs the logic half of the frame pipeline:
//
//	running check -> poll -> dispatch -> tick -> GUI build
//
// The running flag is checked before anything else, so the frame that
// cleared it has already completed in full by the time the loop stops.
func (a *Applet) update() error {
	if err := a.drawErr; err != nil {
		a.drawErr = nil
		return err
	}
	if !a.running {
		return ebiten.Termination
	}

	a.clock.tick(a.targetFPS)

	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	if a.script != nil {
		a.script.step(a)
	}
	a.pollEvents()
	if a.debug {
		a.stats.events = len(a.events)
		a.stats.poll = time.Since(t0)
		t0 = time.Now()
	}

	if err := a.dispatchEvents(); err != nil {
		return err
	}
	if a.debug {
		a.stats.dispatch = time.Since(t0)
		t0 = time.Now()
	}

	if a.onTick != nil {
		if err := a.onTick(); err != nil {
			return err
		}
	}
	if a.debug {
		a.stats.tick = time.Since(t0)
		t0 = time.Now()
	}

	// The GUI frame must be closed even when the build callback fails,
	// otherwise the context is left mid-frame.
	a.gui.beginFrame(a.width, a.height, a.clock.Delta())
	var guiErr error
	if a.onGUI != nil {
		guiErr = a.onGUI()
	}
	a.gui.endFrame()
	if a.debug {
		a.stats.gui = time.Since(t0)
	}
	return guiErr
}

// dispatchEvents feeds the frame's events through the GUI, the event sink,
// and the input callback, in event order. A Close event clears the running
// flag instead of going to the GUI; the rest of the list still drains, so
// late events in a closing frame are not lost.
func (a *Applet) dispatchEvents() error {
	for _, ev := range a.events {
		if ev.Type == EventClose {
			a.running = false
		} else {
			a.gui.processEvent(ev)
		}
		if a.sink != nil {
			a.sink.EmitEvent(ev)
		}
		if a.onInput != nil {
			if err := a.onInput(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// draw runs the draw half of the frame pipeline:
//
//	clear -> render callback -> GUI draw data -> overlays
//
// A render callback error cannot abort the engine's draw phase, so it is
// held and returned from the next update.
func (a *Applet) draw(screen *ebiten.Image) {
	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	a.surface = screen
	screen.Fill(a.clearColor)

	if a.onRender != nil && a.drawErr == nil {
		if err := a.onRender(screen); err != nil {
			a.drawErr = err
		}
	}

	a.gui.render(screen)

	if a.showFPS {
		a.fps.draw(screen, a.clock.Delta())
	}
	a.flushScreenshots(screen)

	if a.debug {
		a.stats.draw = time.Since(t0)
		a.debugLog()
	}
}
