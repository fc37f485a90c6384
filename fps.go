package easel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshInterval is how often the overlay text is re-rendered, in
// seconds. The counters move too fast to be readable at full rate.
const fpsRefreshInterval = 0.5

// fpsOverlay draws the current FPS and TPS in the top-left corner of the
// surface. Enabled with Config.ShowFPS; drawn on top of everything,
// including the GUI.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
}

func (f *fpsOverlay) draw(target *ebiten.Image, dt float64) {
	if f.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		f.img = ebiten.NewImage(100, 32)
		f.elapsed = fpsRefreshInterval
	}

	f.elapsed += dt
	if f.elapsed >= fpsRefreshInterval {
		f.elapsed = 0

		f.img.Clear()
		// Semi-transparent background for readability
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}

	target.DrawImage(f.img, nil)
}
