package glide

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptStep is a single action in a scroll script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
	// Duration is in seconds, for "scrollTo".
	Duration float64 `json:"duration,omitempty"`
}

type scrollScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScrollScript sequences injected input and engine commands across frames
// for automated runs. Actions: wheel (dy), touch (dy, frames), pointer
// (x, y), wait (frames), lock, unlock, scrollTo (y, duration) and
// screenshot (label).
type ScrollScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	input     *InjectedInput
}

var errEmptyScript = errors.New("no steps")

// LoadScrollScript parses a JSON scroll script. The returned script feeds
// input through in, which must be the engine's input source.
func LoadScrollScript(data []byte, in *InjectedInput) (*ScrollScript, error) {
	var s scrollScript
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scroll script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse scroll script: %w", errEmptyScript)
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "wheel", "touch", "pointer", "wait", "lock", "unlock", "scrollTo", "screenshot":
		default:
			return nil, fmt.Errorf("parse scroll script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScrollScript{steps: s.Steps, input: in}, nil
}

// Done reports whether every step has executed and its input drained.
func (r *ScrollScript) Done() bool {
	return r.done
}

// Step advances the script by one frame. Call it before Engine.Update.
func (r *ScrollScript) Step(e *Engine) {
	if r.done {
		return
	}
	if r.input.Pending() > 0 {
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
	case "wheel":
		r.input.InjectWheel(st.DY)
	case "touch":
		r.input.InjectTouchDrag(st.DY, st.Frames)
	case "pointer":
		r.input.InjectPointer(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "lock":
		e.LockScroll()
	case "unlock":
		e.UnlockScroll()
	case "scrollTo":
		e.ScrollTo(st.Y, st.Duration)
	case "screenshot":
		e.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.input.Pending() == 0 {
		r.done = true
	}
}
