package easel

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	Text   string  `json:"text,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON input script against a running applet for
// automated testing: one scripted action is injected at a time, and the
// runner waits for its events to drain before advancing. Attach to an
// Applet via SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// keyByName maps script key names to engine keys.
var keyByName = map[string]ebiten.Key{
	"enter":     ebiten.KeyEnter,
	"escape":    ebiten.KeyEscape,
	"tab":       ebiten.KeyTab,
	"space":     ebiten.KeySpace,
	"backspace": ebiten.KeyBackspace,
	"delete":    ebiten.KeyDelete,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"home":      ebiten.KeyHome,
	"end":       ebiten.KeyEnd,
	"pageup":    ebiten.KeyPageUp,
	"pagedown":  ebiten.KeyPageDown,
}

// LoadScript parses a JSON input script and returns a ScriptRunner ready to
// be attached to an Applet via SetScript. Key steps are validated against
// the known key names up front.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		if st.Action == "key" {
			if _, ok := keyByName[st.Key]; !ok {
				return nil, fmt.Errorf("parse input script: step %d: unknown key %q", i, st.Key)
			}
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScript attaches a ScriptRunner to the applet. The runner's step method
// is called at the start of every update, before input polling, so injected
// events enter the same frame's dispatch.
func (a *Applet) SetScript(runner *ScriptRunner) {
	a.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from the applet's update.
func (r *ScriptRunner) step(a *Applet) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(a.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		a.InjectClick(st.X, st.Y)
	case "move":
		a.InjectMove(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		a.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "key":
		a.InjectKeyTap(keyByName[st.Key])
	case "text":
		a.InjectText(st.Text)
	case "wheel":
		a.InjectWheel(st.DX, st.DY)
	case "screenshot":
		a.Screenshot(st.Label)
	case "close":
		// The close stops the loop, so nothing after it will run.
		a.InjectClose()
		r.done = true
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(a.injectQueue) == 0 {
		r.done = true
	}
}
