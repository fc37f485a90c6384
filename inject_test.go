package easel

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInjectClick(t *testing.T) {
	a := newTestApplet(nil)
	a.InjectClick(50, 60)

	if got := len(a.injectQueue); got != 2 {
		t.Fatalf("queue length = %d, want 2", got)
	}

	// Frame 1: press.
	a.pollEvents()
	if len(a.events) != 1 {
		t.Fatalf("frame 1 events = %d, want 1", len(a.events))
	}
	ev := a.events[0]
	if ev.Type != EventMouseDown || ev.Button != MouseButtonLeft || ev.X != 50 || ev.Y != 60 {
		t.Errorf("frame 1 event = %+v, want left press at (50, 60)", ev)
	}

	// Frame 2: release.
	a.pollEvents()
	if len(a.events) != 1 {
		t.Fatalf("frame 2 events = %d, want 1", len(a.events))
	}
	ev = a.events[0]
	if ev.Type != EventMouseUp || ev.X != 50 || ev.Y != 60 {
		t.Errorf("frame 2 event = %+v, want left release at (50, 60)", ev)
	}

	// Frame 3: nothing left.
	a.pollEvents()
	if len(a.events) != 0 {
		t.Errorf("frame 3 events = %d, want 0", len(a.events))
	}
}

func TestInjectDrag(t *testing.T) {
	a := newTestApplet(nil)

	// 5 frames: press, 3 interpolated moves, release.
	a.InjectDrag(10, 10, 200, 200, 5)
	if got := len(a.injectQueue); got != 5 {
		t.Fatalf("queue length = %d, want 5", got)
	}

	if ev := a.injectQueue[0]; ev.Type != EventMouseDown || ev.X != 10 || ev.Y != 10 {
		t.Errorf("first event = %+v, want press at (10, 10)", ev)
	}
	if ev := a.injectQueue[4]; ev.Type != EventMouseUp || ev.X != 200 || ev.Y != 200 {
		t.Errorf("last event = %+v, want release at (200, 200)", ev)
	}
	for i := 1; i <= 3; i++ {
		ev := a.injectQueue[i]
		if ev.Type != EventMouseMove {
			t.Errorf("event %d type = %v, want EventMouseMove", i, ev.Type)
		}
		if ev.X <= 10 || ev.X >= 200 || ev.Y <= 10 || ev.Y >= 200 {
			t.Errorf("event %d at (%v, %v), want strictly between endpoints", i, ev.X, ev.Y)
		}
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	a := newTestApplet(nil)
	a.InjectDrag(0, 0, 100, 100, 0)

	// Clamped to press + release.
	if got := len(a.injectQueue); got != 2 {
		t.Fatalf("queue length = %d, want 2", got)
	}
	if a.injectQueue[0].Type != EventMouseDown || a.injectQueue[1].Type != EventMouseUp {
		t.Errorf("queue = %+v, want press then release", a.injectQueue)
	}
}

func TestInjectKeyTap(t *testing.T) {
	a := newTestApplet(nil)
	a.InjectKeyTap(ebiten.KeyEnter)

	a.pollEvents()
	if len(a.events) != 1 || a.events[0].Type != EventKeyDown || a.events[0].Key != ebiten.KeyEnter {
		t.Errorf("frame 1 events = %+v, want enter key down", a.events)
	}
	a.pollEvents()
	if len(a.events) != 1 || a.events[0].Type != EventKeyUp || a.events[0].Key != ebiten.KeyEnter {
		t.Errorf("frame 2 events = %+v, want enter key up", a.events)
	}
}

func TestTakeInjectedOrder(t *testing.T) {
	a := newTestApplet(nil)
	a.InjectText("xyz")

	want := []rune{'x', 'y', 'z'}
	for i, r := range want {
		ev, ok := a.takeInjected()
		if !ok {
			t.Fatalf("takeInjected %d: queue unexpectedly empty", i)
		}
		if ev.Type != EventChar || ev.Rune != r {
			t.Errorf("event %d = %+v, want char %q", i, ev, r)
		}
	}
	if _, ok := a.takeInjected(); ok {
		t.Error("queue should be empty after draining")
	}
}
