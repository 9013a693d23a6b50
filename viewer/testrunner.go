package viewer

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/fractal"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Text   string `json:"text,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// stepActions maps script action names to the single action they inject.
var stepActions = map[string]ActionType{
	"backspace": ActionBackspace,
	"submit":    ActionSubmit,
	"nextKind":  ActionNextKind,
	"zoomIn":    ActionZoomIn,
	"zoomOut":   ActionZoomOut,
	"reset":     ActionResetZoom,
	"dismiss":   ActionDismiss,
	"quit":      ActionQuit,
}

// TestRunner sequences injected actions and screenshots across frames for
// automated visual testing. Attach to a Game via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready to
// be attached to a Game via SetTestRunner.
//
//	{"steps": [
//		{"action": "type", "text": "4"},
//		{"action": "kind", "kind": "menger"},
//		{"action": "submit"},
//		{"action": "zoomIn"},
//		{"action": "wait", "frames": 10},
//		{"action": "screenshot", "label": "menger-zoomed"}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "type", "screenshot", "wait":
		case "kind":
			if _, err := fractal.ParseKind(st.Kind); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		default:
			if _, ok := stepActions[st.Action]; !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
			}
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the game. The runner's step method
// is called from Game.Update before input is processed each frame.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Game.Update.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(g.injectQueue) > 0 {
		return
	}
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
	case "screenshot":
		g.Screenshot(st.Label)
	case "type":
		g.InjectText(st.Text)
	case "kind":
		k, _ := fractal.ParseKind(st.Kind)
		g.InjectKind(k)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		g.Inject(Action{Type: stepActions[st.Action]})
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}
