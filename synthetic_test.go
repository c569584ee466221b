package ivy

import "testing"

func newSyntheticSystem(t *testing.T) (*SyntheticSource, *InteractionSystem, *recorder) {
	t.Helper()
	src := &SyntheticSource{TouchEvents: true}
	sys := NewInteractionSystem(src, StaticSurface{Width: 640, Height: 480}, Config{})
	sys.Bind()
	rec := &recorder{}
	rec.listen(sys)
	return src, sys, rec
}

func TestSyntheticSource_DispatchWithoutListeners(t *testing.T) {
	src := &SyntheticSource{}
	src.InjectClick(10, 10) // nothing bound; must not panic
}

func TestSyntheticSource_FullClickPipeline(t *testing.T) {
	src, sys, rec := newSyntheticSystem(t)
	box := NewRegion("box", 100, 100, HitRect{Width: 50, Height: 50})
	sys.AddHitTarget(box)

	src.InjectClick(120, 120)

	rec.check(t, "down:box", "click:box", "up:box")
	p := sys.PointerByID(0)
	if p.Type != PointerMouse {
		t.Errorf("Type = %v, want PointerMouse (mouse kind heuristic)", p.Type)
	}
}

func TestSyntheticSource_LeaveCancels(t *testing.T) {
	src, sys, rec := newSyntheticSystem(t)
	box := NewRegion("box", 100, 100, HitRect{Width: 50, Height: 50})
	sys.AddHitTarget(box)

	src.InjectPress(120, 120)
	src.InjectLeave(700, 120)

	rec.check(t, "down:box", "cancel:box", "upoutside:box")
	if sys.PointerByID(0).IsDown {
		t.Error("leave should cancel the press")
	}
}

func TestSyntheticSource_TouchCancel(t *testing.T) {
	src, sys, rec := newSyntheticSystem(t)
	box := NewRegion("box", 100, 100, HitRect{Width: 50, Height: 50})
	sys.AddHitTarget(box)

	src.InjectTouchStart(1, 120, 120)
	src.InjectTouchCancel(1, 120, 120)

	rec.check(t, "down:box", "cancel:box", "upoutside:box")
	p := sys.PointerByID(1)
	if p.Target != nil || p.HoverTarget != nil || p.ScrollTarget != nil {
		t.Error("touch cancel should reset every target reference")
	}
}

func TestSyntheticSource_WheelScroll(t *testing.T) {
	src, sys, rec := newSyntheticSystem(t)
	box := NewRegion("box", 100, 100, HitRect{Width: 50, Height: 50})
	sys.AddHitTarget(box)

	src.InjectWheel(120, 120, 0, -5)

	rec.check(t, "scroll:box")
	p := sys.PointerByID(0)
	if p.ScrollDeltaY != -5 {
		t.Errorf("ScrollDeltaY = %v, want -5", p.ScrollDeltaY)
	}
	if p.ScrollTarget != Hittable(box) {
		t.Error("scroll target should be the box")
	}
}

func TestSyntheticSource_CapabilityFlags(t *testing.T) {
	tests := []struct {
		name        string
		src         SyntheticSource
		wantPointer bool
		wantTouch   bool
	}{
		{"mouse only", SyntheticSource{}, false, false},
		{"mouse and touch", SyntheticSource{TouchEvents: true}, false, true},
		{"pointer events", SyntheticSource{PointerEvents: true, TouchEvents: true}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.src.PointerEventsSupported(); got != tt.wantPointer {
				t.Errorf("PointerEventsSupported = %v, want %v", got, tt.wantPointer)
			}
			if got := tt.src.TouchEventsSupported(); got != tt.wantTouch {
				t.Errorf("TouchEventsSupported = %v, want %v", got, tt.wantTouch)
			}
		})
	}
}
