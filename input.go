package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// pollEvents rebuilds the frame's event list from the engine's polled input
// state. The engine has no event queue, so state edges are turned into
// events here, in a fixed order: Close first (making the post-close drain
// observable), then key downs, key ups, typed characters, mouse buttons,
// cursor movement, and wheel. One pending injected event, if any, is
// appended last.
func (a *Applet) pollEvents() {
	a.events = a.events[:0]
	mods := readModifiers()

	if ebiten.IsWindowBeingClosed() {
		a.events = append(a.events, Event{Type: EventClose, Mods: mods})
	}

	a.keyBuf = inpututil.AppendJustPressedKeys(a.keyBuf[:0])
	for _, k := range a.keyBuf {
		a.events = append(a.events, Event{Type: EventKeyDown, Key: k, Mods: mods})
	}
	a.keyBuf = inpututil.AppendJustReleasedKeys(a.keyBuf[:0])
	for _, k := range a.keyBuf {
		a.events = append(a.events, Event{Type: EventKeyUp, Key: k, Mods: mods})
	}

	a.runeBuf = ebiten.AppendInputChars(a.runeBuf[:0])
	for _, r := range a.runeBuf {
		a.events = append(a.events, Event{Type: EventChar, Rune: r, Mods: mods})
	}

	cx, cy := ebiten.CursorPosition()
	fx, fy := float64(cx), float64(cy)
	for b := MouseButtonLeft; b <= MouseButtonMiddle; b++ {
		if inpututil.IsMouseButtonJustPressed(b.ebitenButton()) {
			a.events = append(a.events, Event{Type: EventMouseDown, Button: b, X: fx, Y: fy, Mods: mods})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebitenButton()) {
			a.events = append(a.events, Event{Type: EventMouseUp, Button: b, X: fx, Y: fy, Mods: mods})
		}
	}
	if cx != a.prevCursorX || cy != a.prevCursorY {
		a.events = append(a.events, Event{Type: EventMouseMove, X: fx, Y: fy, Mods: mods})
		a.prevCursorX = cx
		a.prevCursorY = cy
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		a.events = append(a.events, Event{Type: EventWheel, WheelX: wx, WheelY: wy, X: fx, Y: fy, Mods: mods})
	}

	if ev, ok := a.takeInjected(); ok {
		a.events = append(a.events, ev)
	}
}
