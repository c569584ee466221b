package ivy

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	ID     int     `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Steps  int     `json:"steps,omitempty"`
	DeltaX float64 `json:"deltaX,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a replayable sequence of synthetic input events for automated
// interaction testing. Load one from JSON and play it through a
// SyntheticSource bound to the system under test.
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON input script.
//
// Supported actions: press, move, release, click, leave, wheel (deltaX,
// deltaY), drag (x/y to toX/toY over steps intermediate moves), and the
// touch family touchstart, touchmove, touchend, touchcancel (id selects the
// contact).
func LoadScript(jsonData []byte) (*Script, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	return &Script{steps: script.Steps}, nil
}

// Len returns the number of steps in the script.
func (sc *Script) Len() int {
	return len(sc.steps)
}

// Play replays every step through src in order, synchronously. An unknown
// action stops playback with an error; steps before it have already fired.
func (sc *Script) Play(src *SyntheticSource) error {
	for i, st := range sc.steps {
		switch st.Action {
		case "press":
			src.InjectPress(st.X, st.Y)
		case "move":
			src.InjectMove(st.X, st.Y)
		case "release":
			src.InjectRelease(st.X, st.Y)
		case "click":
			src.InjectClick(st.X, st.Y)
		case "leave":
			src.InjectLeave(st.X, st.Y)
		case "wheel":
			src.InjectWheel(st.X, st.Y, st.DeltaX, st.DeltaY)
		case "drag":
			sc.playDrag(src, st)
		case "touchstart":
			src.InjectTouchStart(st.ID, st.X, st.Y)
		case "touchmove":
			src.InjectTouchMove(st.ID, st.X, st.Y)
		case "touchend":
			src.InjectTouchEnd(st.ID, st.X, st.Y)
		case "touchcancel":
			src.InjectTouchCancel(st.ID, st.X, st.Y)
		default:
			return fmt.Errorf("play input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return nil
}

// playDrag expands a drag step into press, linearly interpolated moves, and
// release.
func (sc *Script) playDrag(src *SyntheticSource, st scriptStep) {
	src.InjectPress(st.X, st.Y)
	for i := 1; i <= st.Steps; i++ {
		t := float64(i) / float64(st.Steps+1)
		x := st.X + (st.ToX-st.X)*t
		y := st.Y + (st.ToY-st.Y)*t
		src.InjectMove(x, y)
	}
	src.InjectRelease(st.ToX, st.ToY)
}
