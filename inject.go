package easel

import "github.com/hajimehoshi/ebiten/v2"

// Injected events let tests and scripts drive the applet without a real
// mouse or keyboard. Queued events are consumed one per frame, appended to
// the end of that frame's polled event list, so a press and a release land
// on consecutive frames the way real input does. The GUI layer only
// registers a click when it sees the press and the release on separate
// frames, which is why InjectClick consumes two frames rather than one.

// InjectEvent queues a raw event for a later frame.
func (a *Applet) InjectEvent(ev Event) {
	a.injectQueue = append(a.injectQueue, ev)
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next frame's pollEvents call.
func (a *Applet) InjectPress(x, y float64) {
	a.InjectEvent(Event{Type: EventMouseDown, Button: MouseButtonLeft, X: x, Y: y})
}

// InjectMove queues a pointer move to the given screen coordinates.
func (a *Applet) InjectMove(x, y float64) {
	a.InjectEvent(Event{Type: EventMouseMove, X: x, Y: y})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (a *Applet) InjectRelease(x, y float64) {
	a.InjectEvent(Event{Type: EventMouseUp, Button: MouseButtonLeft, X: x, Y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (a *Applet) InjectClick(x, y float64) {
	a.InjectPress(x, y)
	a.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (a *Applet) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	a.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		a.InjectMove(x, y)
	}
	a.InjectRelease(toX, toY)
}

// InjectKeyPress queues a key-down event.
func (a *Applet) InjectKeyPress(key ebiten.Key) {
	a.InjectEvent(Event{Type: EventKeyDown, Key: key})
}

// InjectKeyRelease queues a key-up event.
func (a *Applet) InjectKeyRelease(key ebiten.Key) {
	a.InjectEvent(Event{Type: EventKeyUp, Key: key})
}

// InjectKeyTap queues a key press followed by its release. Consumes two
// frames.
func (a *Applet) InjectKeyTap(key ebiten.Key) {
	a.InjectKeyPress(key)
	a.InjectKeyRelease(key)
}

// InjectText queues one character event per rune of s. Consumes one frame
// per rune.
func (a *Applet) InjectText(s string) {
	for _, r := range s {
		a.InjectEvent(Event{Type: EventChar, Rune: r})
	}
}

// InjectWheel queues a scroll wheel event.
func (a *Applet) InjectWheel(dx, dy float64) {
	a.InjectEvent(Event{Type: EventWheel, WheelX: dx, WheelY: dy})
}

// InjectClose queues a window close request.
func (a *Applet) InjectClose() {
	a.InjectEvent(Event{Type: EventClose})
}

// takeInjected pops the oldest queued event, if any.
func (a *Applet) takeInjected() (Event, bool) {
	if len(a.injectQueue) == 0 {
		return Event{}, false
	}
	ev := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]
	return ev, true
}
