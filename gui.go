package easel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/inkyblackness/imgui-go/v4"
)

// guiDriver is the seam between the frame loop and the immediate-mode GUI
// backend.
type guiDriver interface {
	processEvent(ev Event)
	beginFrame(width, height int, delta float64)
	endFrame()
	render(target *ebiten.Image)
	dispose()
}

// imguiDriver owns one GUI context and its render backend. Every entry
// point makes its own context current first, so several applets can
// coexist in one process without trampling each other's GUI state.
type imguiDriver struct {
	ctx      *imgui.Context
	io       imgui.IO
	renderer *Renderer
}

func newImguiDriver() (*imguiDriver, error) {
	ctx := imgui.CreateContext(nil)
	if err := ctx.SetCurrent(); err != nil {
		ctx.Destroy()
		return nil, fmt.Errorf("activate gui context: %w", err)
	}
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	io.SetBackendFlags(imgui.BackendFlagsHasMouseCursors)
	setKeyMapping(io)

	return &imguiDriver{ctx: ctx, io: io, renderer: newRenderer(io)}, nil
}

func (d *imguiDriver) makeCurrent() bool {
	if d.ctx == nil {
		return false
	}
	return d.ctx.SetCurrent() == nil
}

func (d *imguiDriver) processEvent(ev Event) {
	if !d.makeCurrent() {
		return
	}
	switch ev.Type {
	case EventMouseMove:
		d.io.SetMousePosition(imgui.Vec2{X: float32(ev.X), Y: float32(ev.Y)})
	case EventMouseDown:
		d.io.SetMousePosition(imgui.Vec2{X: float32(ev.X), Y: float32(ev.Y)})
		d.io.SetMouseButtonDown(int(ev.Button), true)
	case EventMouseUp:
		d.io.SetMousePosition(imgui.Vec2{X: float32(ev.X), Y: float32(ev.Y)})
		d.io.SetMouseButtonDown(int(ev.Button), false)
	case EventWheel:
		d.io.AddMouseWheelDelta(float32(ev.WheelX), float32(ev.WheelY))
	case EventChar:
		d.io.AddInputCharacters(string(ev.Rune))
	case EventKeyDown:
		d.io.KeyPress(int(ev.Key))
		d.syncModifiers()
	case EventKeyUp:
		d.io.KeyRelease(int(ev.Key))
		d.syncModifiers()
	}
}

// syncModifiers recomputes the GUI's modifier state from the sided modifier
// keys, which arrive as ordinary key events. Modifier flags on the event
// itself are not used here; they exist for input callbacks.
func (d *imguiDriver) syncModifiers() {
	d.io.KeyShift(int(ebiten.KeyShiftLeft), int(ebiten.KeyShiftRight))
	d.io.KeyCtrl(int(ebiten.KeyControlLeft), int(ebiten.KeyControlRight))
	d.io.KeyAlt(int(ebiten.KeyAltLeft), int(ebiten.KeyAltRight))
	d.io.KeySuper(int(ebiten.KeyMetaLeft), int(ebiten.KeyMetaRight))
}

func (d *imguiDriver) beginFrame(width, height int, delta float64) {
	if !d.makeCurrent() {
		return
	}
	d.io.SetDisplaySize(imgui.Vec2{X: float32(width), Y: float32(height)})
	d.io.SetDeltaTime(float32(delta))
	imgui.NewFrame()
}

func (d *imguiDriver) endFrame() {
	if !d.makeCurrent() {
		return
	}
	imgui.Render()
	syncCursorShape()
}

func (d *imguiDriver) render(target *ebiten.Image) {
	if !d.makeCurrent() {
		return
	}
	d.renderer.draw(target, imgui.RenderedDrawData())
}

func (d *imguiDriver) dispose() {
	if d.ctx == nil {
		return
	}
	_ = d.ctx.SetCurrent()
	d.renderer.dispose()
	d.ctx.Destroy()
	d.ctx = nil
}

// setKeyMapping tells the GUI which engine key indices correspond to the
// keys it handles specially (text navigation, clipboard shortcuts).
func setKeyMapping(io imgui.IO) {
	io.KeyMap(imgui.KeyTab, int(ebiten.KeyTab))
	io.KeyMap(imgui.KeyLeftArrow, int(ebiten.KeyArrowLeft))
	io.KeyMap(imgui.KeyRightArrow, int(ebiten.KeyArrowRight))
	io.KeyMap(imgui.KeyUpArrow, int(ebiten.KeyArrowUp))
	io.KeyMap(imgui.KeyDownArrow, int(ebiten.KeyArrowDown))
	io.KeyMap(imgui.KeyPageUp, int(ebiten.KeyPageUp))
	io.KeyMap(imgui.KeyPageDown, int(ebiten.KeyPageDown))
	io.KeyMap(imgui.KeyHome, int(ebiten.KeyHome))
	io.KeyMap(imgui.KeyEnd, int(ebiten.KeyEnd))
	io.KeyMap(imgui.KeyInsert, int(ebiten.KeyInsert))
	io.KeyMap(imgui.KeyDelete, int(ebiten.KeyDelete))
	io.KeyMap(imgui.KeyBackspace, int(ebiten.KeyBackspace))
	io.KeyMap(imgui.KeySpace, int(ebiten.KeySpace))
	io.KeyMap(imgui.KeyEnter, int(ebiten.KeyEnter))
	io.KeyMap(imgui.KeyEscape, int(ebiten.KeyEscape))
	io.KeyMap(imgui.KeyKeyPadEnter, int(ebiten.KeyNumpadEnter))
	io.KeyMap(imgui.KeyA, int(ebiten.KeyA))
	io.KeyMap(imgui.KeyC, int(ebiten.KeyC))
	io.KeyMap(imgui.KeyV, int(ebiten.KeyV))
	io.KeyMap(imgui.KeyX, int(ebiten.KeyX))
	io.KeyMap(imgui.KeyY, int(ebiten.KeyY))
	io.KeyMap(imgui.KeyZ, int(ebiten.KeyZ))
}

// syncCursorShape mirrors the GUI's desired cursor onto the window.
func syncCursorShape() {
	var shape ebiten.CursorShapeType
	switch imgui.MouseCursor() {
	case imgui.MouseCursorTextInput:
		shape = ebiten.CursorShapeText
	case imgui.MouseCursorResizeAll:
		shape = ebiten.CursorShapeMove
	case imgui.MouseCursorResizeNS:
		shape = ebiten.CursorShapeNSResize
	case imgui.MouseCursorResizeEW:
		shape = ebiten.CursorShapeEWResize
	case imgui.MouseCursorResizeNESW:
		shape = ebiten.CursorShapeNESWResize
	case imgui.MouseCursorResizeNWSE:
		shape = ebiten.CursorShapeNWSEResize
	case imgui.MouseCursorHand:
		shape = ebiten.CursorShapePointer
	default:
		shape = ebiten.CursorShapeDefault
	}
	if ebiten.CursorShape() != shape {
		ebiten.SetCursorShape(shape)
	}
}
