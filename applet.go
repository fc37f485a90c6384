package easel

import (
	"fmt"
	"image"
	"os"

	// Window icons load through image.Decode.
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/inkyblackness/imgui-go/v4"
)

// Defaults applied by New for zero-value Config fields.
const (
	DefaultTitle     = "Easel Application"
	DefaultWidth     = 1280
	DefaultHeight    = 720
	DefaultTargetFPS = 60
)

// DefaultClearColor is the near-black background applied when
// Config.ClearColor is the zero value.
var DefaultClearColor = Color{R: 0.1, G: 0.1, B: 0.1, A: 1}

// Config configures a new Applet. Zero values select the defaults above.
type Config struct {
	// Title is the window title.
	Title string
	// Width and Height are the logical surface dimensions in pixels.
	Width  int
	Height int
	// IconPath optionally names an image file (PNG or JPEG) used as the
	// window icon. A path that cannot be opened or decoded makes New fail.
	IconPath string
	// TargetFPS caps the frame rate. The engine blocks each frame to hold
	// this rate.
	TargetFPS int
	// ClearColor is the color the surface is cleared to at the start of
	// every draw.
	ClearColor Color
	// ShowFPS overlays a small FPS/TPS readout on top of everything.
	ShowFPS bool
}

// Applet wires the engine window and an immediate-mode GUI context into a
// single frame loop. Behavior is supplied through registered callbacks; see
// the package documentation for the per-frame pipeline.
//
// An Applet is single-threaded: every callback runs on the engine's frame
// goroutine, and no method is safe for concurrent use.
type Applet struct {
	title  string
	width  int
	height int
	icon   image.Image

	clearColor Color
	targetFPS  int
	showFPS    bool
	running    bool
	debug      bool

	ctx      *imgui.Context
	io       imgui.IO
	renderer *Renderer
	gui      guiDriver

	clock   Clock
	surface *ebiten.Image
	fps     fpsOverlay

	onInput  func(Event) error
	onTick   func() error
	onGUI    func() error
	onRender func(*ebiten.Image) error
	onEnd    func() error

	sink   EventSink
	script *ScriptRunner

	screenshotDir string
	shotQueue     []string

	events      []Event
	injectQueue []Event
	keyBuf      []ebiten.Key
	runeBuf     []rune
	prevCursorX int
	prevCursorY int

	drawErr error
	stats   frameStats
}

// New constructs an Applet with its own GUI context and renderer. The
// context is created immediately so accessors and injected frames work
// before Run; it is made current for every GUI operation, so multiple
// applets in one process (or test) never share GUI state.
func New(cfg Config) (*Applet, error) {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.TargetFPS <= 0 {
		cfg.TargetFPS = DefaultTargetFPS
	}
	if cfg.ClearColor == (Color{}) {
		cfg.ClearColor = DefaultClearColor
	}

	var icon image.Image
	if cfg.IconPath != "" {
		img, err := loadIcon(cfg.IconPath)
		if err != nil {
			return nil, err
		}
		icon = img
	}

	gui, err := newImguiDriver()
	if err != nil {
		return nil, err
	}
	return &Applet{
		title:         cfg.Title,
		width:         cfg.Width,
		height:        cfg.Height,
		icon:          icon,
		clearColor:    cfg.ClearColor,
		targetFPS:     cfg.TargetFPS,
		showFPS:       cfg.ShowFPS,
		screenshotDir: "screenshots",
		ctx:           gui.ctx,
		io:            gui.io,
		renderer:      gui.renderer,
		gui:           gui,
	}, nil
}

// loadIcon opens and decodes a window icon image.
func loadIcon(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load icon: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %q: %w", path, err)
	}
	return img, nil
}

// --- Accessors ---

// Title returns the window title.
func (a *Applet) Title() string {
	return a.title
}

// SetTitle changes the window title, live if the window is already up.
func (a *Applet) SetTitle(title string) {
	a.title = title
	ebiten.SetWindowTitle(title)
}

// Size returns the logical surface dimensions.
func (a *Applet) Size() (w, h int) {
	return a.width, a.height
}

// Surface returns the current frame's render target. It is nil until the
// first frame has been drawn; inside the render callback prefer the image
// passed to the callback, which is the same object.
func (a *Applet) Surface() *ebiten.Image {
	return a.surface
}

// IO returns the GUI IO handle for the applet's context.
func (a *Applet) IO() imgui.IO {
	return a.io
}

// Renderer returns the GUI renderer bridge. Use it to register engine
// textures for display inside GUI widgets.
func (a *Applet) Renderer() *Renderer {
	return a.renderer
}

// Context returns the applet's GUI context handle.
func (a *Applet) Context() *imgui.Context {
	return a.ctx
}

// Clock returns the applet's frame clock.
func (a *Applet) Clock() *Clock {
	return &a.clock
}

// ClearColor returns the per-frame clear color.
func (a *Applet) ClearColor() Color {
	return a.clearColor
}

// SetClearColor changes the per-frame clear color.
func (a *Applet) SetClearColor(c Color) {
	a.clearColor = c
}

// Running reports whether the frame loop is (or should keep) running.
func (a *Applet) Running() bool {
	return a.running
}

// SetRunning sets the cooperative run flag. Clearing it from inside a
// callback lets the current frame finish; the loop exits before the next
// frame's callbacks.
func (a *Applet) SetRunning(running bool) {
	a.running = running
}

// TargetFPS returns the frame-rate cap.
func (a *Applet) TargetFPS() int {
	return a.targetFPS
}

// SetTargetFPS changes the frame-rate cap, live if the loop is running.
func (a *Applet) SetTargetFPS(fps int) {
	a.targetFPS = fps
	ebiten.SetTPS(fps)
}

// SetEventSink attaches a sink that receives every dispatched event.
// Pass nil to detach.
func (a *Applet) SetEventSink(sink EventSink) {
	a.sink = sink
}

// SetDebugMode toggles per-frame pipeline stats on stderr.
func (a *Applet) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// --- Callback registration ---

// Each slot holds at most one callback: registering replaces whatever was
// registered before, and registering nil clears the slot.

// RegisterInputCallback sets the callback invoked once per input event,
// after the event has been offered to the GUI. It receives every event,
// including Close.
func (a *Applet) RegisterInputCallback(fn func(Event) error) {
	a.onInput = fn
}

// RegisterTickCallback sets the per-frame logic callback, invoked after
// event dispatch and before the GUI build.
func (a *Applet) RegisterTickCallback(fn func() error) {
	a.onTick = fn
}

// RegisterGUICallback sets the GUI build callback. It runs between the GUI
// frame begin and end, and is the only place widget calls are valid.
func (a *Applet) RegisterGUICallback(fn func() error) {
	a.onGUI = fn
}

// RegisterRenderCallback sets the surface draw callback. It runs after the
// surface has been cleared and before the GUI draw data is rendered, so
// everything it draws appears under the GUI.
func (a *Applet) RegisterRenderCallback(fn func(screen *ebiten.Image) error) {
	a.onRender = fn
}

// RegisterEndCallback sets the callback invoked once after the loop exits
// cleanly, before Run returns.
func (a *Applet) RegisterEndCallback(fn func() error) {
	a.onEnd = fn
}

// --- Run ---

// Run opens the window and drives the frame loop until the running flag is
// cleared or a callback returns an error. A clean exit runs the end
// callback and then destroys the applet; callback errors are returned
// unchanged with the applet left intact.
func (a *Applet) Run() error {
	ebiten.SetWindowTitle(a.title)
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(a.targetFPS)
	if a.icon != nil {
		ebiten.SetWindowIcon([]image.Image{a.icon})
	}

	a.running = true
	a.clock.reset()

	err := ebiten.RunGame(&game{app: a})
	a.running = false
	if err != nil {
		return err
	}
	if a.onEnd != nil {
		if err := a.onEnd(); err != nil {
			return err
		}
	}
	a.Destroy()
	return nil
}

// Destroy releases the GUI context and renderer textures. Idempotent; the
// applet must not be used afterwards. Run calls Destroy itself on a clean
// exit.
func (a *Applet) Destroy() {
	if a.gui != nil {
		a.gui.dispose()
	}
	a.ctx = nil
}
