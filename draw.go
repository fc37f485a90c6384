package easel

import "github.com/hajimehoshi/ebiten/v2"

// NewSolidImage returns a w x h image filled with the given color.
func NewSolidImage(w, h int, c Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}

// DrawImageAt draws img onto target with its top-left corner at (x, y).
func DrawImageAt(target, img *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	target.DrawImage(img, op)
}

// DrawImageCentered draws img onto target centered on (x, y).
func DrawImageCentered(target, img *ebiten.Image, x, y float64) {
	b := img.Bounds()
	DrawImageAt(target, img, x-float64(b.Dx())/2, y-float64(b.Dy())/2)
}
