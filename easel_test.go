package easel

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name       string
		c          Color
		r, g, b, a uint32
	}{
		{"white", Color{1, 1, 1, 1}, 0xffff, 0xffff, 0xffff, 0xffff},
		{"black", Color{0, 0, 0, 1}, 0, 0, 0, 0xffff},
		{"transparent", Color{1, 1, 1, 0}, 0, 0, 0, 0},
		{"half alpha", Color{1, 1, 1, 0.5}, 0x7f7f, 0x7f7f, 0x7f7f, 0x7f7f},
		{"clamped", Color{2, -1, 0.5, 1}, 0xffff, 0, 0x7f7f, 0xffff},
	}
	for _, tt := range tests {
		r, g, b, a := tt.c.RGBA()
		if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
			t.Errorf("%s: RGBA() = (%#x, %#x, %#x, %#x), want (%#x, %#x, %#x, %#x)",
				tt.name, r, g, b, a, tt.r, tt.g, tt.b, tt.a)
		}
	}
}

func TestMouseButtonEbiten(t *testing.T) {
	tests := []struct {
		b    MouseButton
		want ebiten.MouseButton
	}{
		{MouseButtonLeft, ebiten.MouseButtonLeft},
		{MouseButtonRight, ebiten.MouseButtonRight},
		{MouseButtonMiddle, ebiten.MouseButtonMiddle},
	}
	for _, tt := range tests {
		if got := tt.b.ebitenButton(); got != tt.want {
			t.Errorf("ebitenButton(%d) = %v, want %v", tt.b, got, tt.want)
		}
	}
}
