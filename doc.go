// Package easel is a thin application shell that glues [Ebitengine] and the
// [Dear ImGui] immediate-mode GUI into a single window with one frame loop.
//
// Easel owns the window, the GUI context, and the per-frame pipeline;
// applications supply behavior through registered callbacks and keep full
// access to both underlying libraries.
//
// # Quick start
//
//	app, err := easel.New(easel.Config{Title: "Hello"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	app.RegisterGUICallback(func() error {
//		imgui.Begin("window")
//		imgui.Text("Hello, world!")
//		imgui.End()
//		return nil
//	})
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Frame pipeline
//
// Every frame runs the same fixed sequence:
//
//	1. poll input, appending one injected event if queued
//	2. dispatch each event to the GUI, the event sink, and the input callback
//	3. tick callback
//	4. GUI build callback, between the GUI frame begin and end
//	5. clear the surface to the clear color
//	6. render callback (everything it draws appears under the GUI)
//	7. render the GUI draw data
//	8. present, blocking until the FPS cap allows the next frame
//
// A window close request clears the running flag instead of reaching the
// GUI; the input callback still sees it, along with every event after it in
// the same frame. Clearing the flag from any callback (see
// [Applet.SetRunning]) lets the current frame finish and stops the loop
// before the next one.
//
// # Callbacks
//
// Each slot holds at most one callback; registering again replaces it, and
// registering nil clears it. Callbacks return an error, and any non-nil
// error stops the loop and is returned from [Applet.Run] unchanged.
//
// # Key features
//
// Easel includes synthetic input injection for tests ([Applet.InjectClick]
// and friends), JSON input scripts ([LoadScript]), labeled screenshots,
// an FPS overlay, field tweens (via [gween]), and ECS event fan-out (via
// the [Donburi] adapter in easel/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [Dear ImGui]: https://github.com/inkyblackness/imgui-go
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package easel
