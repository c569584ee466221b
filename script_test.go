package ivy

import (
	"strings"
	"testing"
)

func TestLoadScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed json", `{steps: [}`},
		{"no steps", `{"steps": []}`},
		{"missing steps key", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.json)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestScriptPlay_Click(t *testing.T) {
	script, err := LoadScript([]byte(`{"steps": [
		{"action": "move", "x": 120, "y": 120},
		{"action": "click", "x": 120, "y": 120}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if script.Len() != 2 {
		t.Fatalf("Len = %d, want 2", script.Len())
	}

	src := &SyntheticSource{}
	sys := NewInteractionSystem(src, StaticSurface{Width: 640, Height: 480}, Config{})
	sys.Bind()
	box := NewRegion("box", 100, 100, HitRect{Width: 50, Height: 50})
	sys.AddHitTarget(box)
	rec := &recorder{}
	rec.listen(sys)

	if err := script.Play(src); err != nil {
		t.Fatal(err)
	}

	rec.check(t, "hoverstart:box", "move:box", "down:box", "click:box", "up:box")
}

func TestScriptPlay_Drag(t *testing.T) {
	script, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "x": 0, "y": 0, "toX": 100, "toY": 0, "steps": 3}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	src := &SyntheticSource{}
	sys := NewInteractionSystem(src, StaticSurface{Width: 640, Height: 480}, Config{})
	sys.Bind()

	if err := script.Play(src); err != nil {
		t.Fatal(err)
	}

	p := sys.PointerByID(0)
	if p == nil {
		t.Fatal("drag should have driven pointer 0")
	}
	if p.IsDown {
		t.Error("pointer should be released after the drag")
	}
	if p.WorldX != 100 || p.WorldY != 0 {
		t.Errorf("end position = (%v,%v), want (100,0)", p.WorldX, p.WorldY)
	}
	// The release normalizes without delta computation.
	if p.DeltaX != 0 || p.DeltaY != 0 {
		t.Errorf("deltas after release = (%v,%v), want (0,0)", p.DeltaX, p.DeltaY)
	}
}

func TestScriptPlay_TouchAndWheel(t *testing.T) {
	script, err := LoadScript([]byte(`{"steps": [
		{"action": "touchstart", "id": 2, "x": 10, "y": 10},
		{"action": "touchmove", "id": 2, "x": 20, "y": 10},
		{"action": "touchend", "id": 2, "x": 20, "y": 10},
		{"action": "wheel", "x": 5, "y": 5, "deltaY": -3}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	src := &SyntheticSource{TouchEvents: true}
	sys := NewInteractionSystem(src, StaticSurface{Width: 640, Height: 480}, Config{})
	sys.Bind()

	if err := script.Play(src); err != nil {
		t.Fatal(err)
	}

	if sys.PointerByID(2) == nil {
		t.Error("touch steps should have driven pointer 2")
	}
	if p := sys.PointerByID(0); p == nil || p.ScrollDeltaY != -3 {
		t.Error("wheel step should have driven pointer 0's scroll deltas")
	}
}

func TestScriptPlay_UnknownAction(t *testing.T) {
	script, err := LoadScript([]byte(`{"steps": [
		{"action": "press", "x": 1, "y": 1},
		{"action": "teleport", "x": 2, "y": 2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	err = script.Play(&SyntheticSource{})
	if err == nil {
		t.Fatal("expected an error for the unknown action")
	}
	if !strings.Contains(err.Error(), "teleport") {
		t.Errorf("error should name the action: %v", err)
	}
}
