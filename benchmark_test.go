package easel

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/inkyblackness/imgui-go/v4"
)

// --- Frame Pipeline Benchmarks ---

func BenchmarkUpdate_NoCallbacks(b *testing.B) {
	a := newTestApplet(nil)

	a.update() // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := a.update(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPollEvents(b *testing.B) {
	a := newTestApplet(nil)

	a.pollEvents() // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a.pollEvents()
	}
}

func BenchmarkDispatchEvents(b *testing.B) {
	a := newTestApplet(nil)
	a.RegisterInputCallback(func(ev Event) error { return nil })

	frame := make([]Event, 16)
	for i := range frame {
		frame[i] = Event{Type: EventMouseMove, X: float64(i), Y: float64(i)}
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a.events = frame
		if err := a.dispatchEvents(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGUIFrame(b *testing.B) {
	d, err := newImguiDriver()
	if err != nil {
		b.Fatal(err)
	}
	defer d.dispose()
	target := ebiten.NewImage(1280, 720)

	// warmup
	d.beginFrame(1280, 720, 1.0/60)
	imgui.Begin("bench")
	imgui.Text("frame")
	imgui.End()
	d.endFrame()
	d.render(target)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.beginFrame(1280, 720, 1.0/60)
		imgui.Begin("bench")
		imgui.Text("frame")
		imgui.End()
		d.endFrame()
		d.render(target)
	}
}
