package easel

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's draw. The resulting PNG is written to the screenshot
// directory with a timestamped filename. Safe to call from any callback.
func (a *Applet) Screenshot(label string) {
	a.shotQueue = append(a.shotQueue, label)
}

// SetScreenshotDir changes the directory screenshots are written to.
// The default is "screenshots".
func (a *Applet) SetScreenshotDir(dir string) {
	a.screenshotDir = dir
}

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG file. Called at the end of the applet's draw.
func (a *Applet) flushScreenshots(screen *ebiten.Image) {
	if len(a.shotQueue) == 0 {
		return
	}

	if err := os.MkdirAll(a.screenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[easel] screenshot: mkdir %s: %v\n", a.screenshotDir, err)
		a.shotQueue = a.shotQueue[:0]
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	img := &image.NRGBA{
		Pix:    unpremultiplyAlpha(pixels),
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}

	stamp := time.Now().Format("20060102_150405")

	for _, label := range a.shotQueue {
		safe := sanitizeLabel(label)
		path := fmt.Sprintf("%s/%s_%s.png", a.screenshotDir, stamp, safe)
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[easel] screenshot: %v\n", err)
		}
	}

	a.shotQueue = a.shotQueue[:0]
}

// unpremultiplyAlpha converts premultiplied RGBA pixels, as read back from
// the engine, to the straight-alpha form PNG encoding expects. The inverse
// of premultiplyAlpha.
func unpremultiplyAlpha(src []byte) []byte {
	out := make([]byte, len(src))
	for i := 0; i+3 < len(src); i += 4 {
		r, g, b, a := src[i], src[i+1], src[i+2], src[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		out[i], out[i+1], out[i+2], out[i+3] = r, g, b, a
	}
	return out
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
