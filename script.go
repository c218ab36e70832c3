package compass

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Label  string  `json:"label,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptTarget receives the actions of a ScriptRunner. SelectorTarget drives
// a Selector directly; the host package provides one that injects pointer
// input instead.
type ScriptTarget interface {
	Drag(x, y float64)
	Release()
	Enter()
	Exit()
}

// Screenshotter is implemented by script targets that can capture the
// rendered frame. The "screenshot" action is skipped for other targets.
type Screenshotter interface {
	Screenshot(label string)
}

// SelectorTarget adapts a Selector with a fixed pivot to ScriptTarget.
type SelectorTarget struct {
	Selector *Selector
	PivotX   float64
	PivotY   float64
}

func (t SelectorTarget) Drag(x, y float64) { t.Selector.DragMove(x, y, t.PivotX, t.PivotY) }
func (t SelectorTarget) Release()          { t.Selector.DragEnd() }
func (t SelectorTarget) Enter()            { t.Selector.EnterClicked() }
func (t SelectorTarget) Exit()             { t.Selector.ExitClicked() }

// ScriptRunner replays a JSON input script one step per frame.
//
// Actions: "drag" (x, y), "release", "enter", "exit", "wait" (frames),
// "screenshot" (label).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := sonic.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "drag", "release", "enter", "exit", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *ScriptRunner) Step(t ScriptTarget) {
	if r.done {
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
	case "drag":
		t.Drag(st.X, st.Y)
	case "release":
		t.Release()
	case "enter":
		t.Enter()
	case "exit":
		t.Exit()
	case "screenshot":
		if sc, ok := t.(Screenshotter); ok {
			sc.Screenshot(st.Label)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
