package easel

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to the engine.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA implements the color.Color interface, so a Color can be passed
// straight to engine fills. Components are premultiplied by alpha per that
// interface's contract, quantized to 8 bits the way the engine stores them.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R*c.A)*255) * 0x101
	g = uint32(clamp01(c.G*c.A)*255) * 0x101
	b = uint32(clamp01(c.B*c.A)*255) * 0x101
	a = uint32(clamp01(c.A)*255) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventKeyDown   EventType = iota // a key went down this frame
	EventKeyUp                      // a key went up this frame
	EventChar                       // a printable character was typed
	EventMouseMove                  // the cursor moved
	EventMouseDown                  // a mouse button went down
	EventMouseUp                    // a mouse button went up
	EventWheel                      // the scroll wheel moved
	EventClose                      // the window close button was pressed
)

// MouseButton identifies a mouse button. The numeric values double as the
// GUI backend's button indices.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// ebitenButton returns the engine button corresponding to this MouseButton.
func (b MouseButton) ebitenButton() ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Event is a single input event delivered to the GUI and the input callback.
// Only the fields relevant to Type are set: Key for key events, Rune for
// character events, X/Y for mouse events (cursor position), WheelX/WheelY
// for wheel events, Button for mouse button events. Mods carries the
// modifier state at the time the event was captured.
type Event struct {
	Type           EventType
	Key            ebiten.Key
	Rune           rune
	X, Y           float64
	WheelX, WheelY float64
	Button         MouseButton
	Mods           KeyModifiers
}

// EventSink receives every dispatched event, after the GUI has seen it and
// before the input callback runs. Attach one with [Applet.SetEventSink];
// the easel/ecs submodule provides a Donburi-backed implementation.
type EventSink interface {
	EmitEvent(Event)
}
