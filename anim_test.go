package easel

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-3 && d > -1e-3
}

func TestTweenFloat(t *testing.T) {
	v := 0.0
	g := TweenFloat(&v, 100, 1.0, ease.Linear)

	g.Update(0.5)
	if !almostEqual(v, 50) {
		t.Errorf("v = %v, want ~50 at the halfway point", v)
	}
	if g.Done {
		t.Error("Done should be false mid-tween")
	}

	g.Update(0.5)
	if !almostEqual(v, 100) {
		t.Errorf("v = %v, want ~100 at the end", v)
	}
	if !g.Done {
		t.Error("Done should be true at the end")
	}
}

func TestTweenPoint(t *testing.T) {
	x, y := 10.0, 20.0
	g := TweenPoint(&x, &y, 110, 220, 2.0, ease.Linear)

	g.Update(1.0)
	if !almostEqual(x, 60) || !almostEqual(y, 120) {
		t.Errorf("point = (%v, %v), want ~(60, 120) at the halfway point", x, y)
	}
}

func TestTweenColor(t *testing.T) {
	c := Color{0, 0, 0, 0}
	g := TweenColor(&c, ColorWhite, 1.0, ease.Linear)

	g.Update(0.5)
	for i, v := range []float64{c.R, c.G, c.B, c.A} {
		if !almostEqual(v, 0.5) {
			t.Errorf("component %d = %v, want ~0.5 at the halfway point", i, v)
		}
	}

	// Overshooting the duration clamps to the target.
	g.Update(0.6)
	if !almostEqual(c.R, 1) || !almostEqual(c.A, 1) {
		t.Errorf("color = %+v, want white after overshoot", c)
	}
	if !g.Done {
		t.Error("Done should be true after overshoot")
	}
}

func TestTweenGroupDoneStops(t *testing.T) {
	v := 0.0
	g := TweenFloat(&v, 1, 0.1, ease.Linear)
	g.Update(1) // finish

	if !g.Done {
		t.Fatal("Done should be true")
	}
	v = 123
	g.Update(1)
	if v != 123 {
		t.Errorf("v = %v, want 123 (a finished group must not write)", v)
	}
}

func TestTweenUpdateAllocs(t *testing.T) {
	v := 0.0
	g := TweenFloat(&v, 1, 1000, ease.Linear)

	allocs := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if allocs != 0 {
		t.Errorf("Update allocates %v times per call, want 0", allocs)
	}
}
