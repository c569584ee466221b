package ivy

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxTouchSlots = 10 // slot 0 = mouse, 1-9 = touch

// EbitenSource adapts Ebitengine's polled input model to the raw event
// model. Call Update once per frame from the game loop; differences against
// the previous frame's state are dispatched as mouse, touch, and wheel
// events to whatever listeners an InteractionSystem has bound.
type EbitenSource struct {
	listeners map[EventKind]func(RawEvent)

	mouseSeen bool
	mouseDown bool
	mouseX    int
	mouseY    int

	touchMap  [maxTouchSlots]ebiten.TouchID
	touchUsed [maxTouchSlots]bool
	touchX    [maxTouchSlots]int
	touchY    [maxTouchSlots]int
	touchIDs  []ebiten.TouchID
}

// ScreenSurface returns a Surface for an ebiten logical screen of the given
// size. Cursor coordinates are already in logical pixels, so intrinsic and
// layout sizes match and the origin is zero.
func ScreenSurface(width, height float64) StaticSurface {
	return StaticSurface{Width: width, Height: height}
}

// AddListener implements EventSource.
func (s *EbitenSource) AddListener(kind EventKind, fn func(RawEvent)) {
	if s.listeners == nil {
		s.listeners = make(map[EventKind]func(RawEvent))
	}
	s.listeners[kind] = fn
}

// RemoveListener implements EventSource.
func (s *EbitenSource) RemoveListener(kind EventKind) {
	delete(s.listeners, kind)
}

// PointerEventsSupported implements EventSource. Ebiten exposes separate
// mouse and touch state, not a unified pointer stream.
func (s *EbitenSource) PointerEventsSupported() bool {
	return false
}

// TouchEventsSupported implements EventSource.
func (s *EbitenSource) TouchEventsSupported() bool {
	return true
}

func (s *EbitenSource) emit(ev RawEvent) {
	if fn := s.listeners[ev.Kind]; fn != nil {
		fn(ev)
	}
}

// Update polls ebiten input state and dispatches the events implied by the
// change since the previous frame. Call exactly once per Update tick.
func (s *EbitenSource) Update() {
	s.updateMouse()
	s.updateWheel()
	s.updateTouches()
}

func (s *EbitenSource) updateMouse() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	moved := s.mouseSeen && (mx != s.mouseX || my != s.mouseY)
	data := PointerData{Hint: "mouse", ClientX: float64(mx), ClientY: float64(my)}

	// Moves dispatch before press/release edges so a press lands with
	// up-to-date hover state, matching platform delivery order.
	if moved {
		s.emit(RawEvent{Kind: EventMouseMove, Data: data})
	}
	if pressed && !s.mouseDown {
		s.emit(RawEvent{Kind: EventMouseDown, Data: data})
	} else if !pressed && s.mouseDown {
		s.emit(RawEvent{Kind: EventMouseUp, Data: data})
	}

	s.mouseSeen = true
	s.mouseDown = pressed
	s.mouseX = mx
	s.mouseY = my
}

func (s *EbitenSource) updateWheel() {
	dx, dy := ebiten.Wheel()
	if dx == 0 && dy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	s.emit(RawEvent{Kind: EventWheel, Data: PointerData{
		Hint:    "mouse",
		ClientX: float64(mx), ClientY: float64(my),
		DeltaX: dx, DeltaY: dy,
	}})
}

func (s *EbitenSource) updateTouches() {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	var active [maxTouchSlots]bool
	for _, tid := range s.touchIDs {
		slot, started := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		data := PointerData{
			PointerID: slot,
			Hint:      "touch",
			ClientX:   float64(tx), ClientY: float64(ty),
		}
		if started {
			s.emit(RawEvent{Kind: EventTouchStart, Changed: []PointerData{data}})
		} else if tx != s.touchX[slot] || ty != s.touchY[slot] {
			s.emit(RawEvent{Kind: EventTouchMove, Changed: []PointerData{data}})
		}
		s.touchX[slot] = tx
		s.touchY[slot] = ty
	}

	// Contacts that vanished this frame ended at their last known position.
	for i := 1; i < maxTouchSlots; i++ {
		if s.touchUsed[i] && !active[i] {
			s.emit(RawEvent{Kind: EventTouchEnd, Changed: []PointerData{{
				PointerID: i,
				Hint:      "touch",
				ClientX:   float64(s.touchX[i]), ClientY: float64(s.touchY[i]),
			}}})
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a contact slot (1-9), allocating one
// for unseen ids. started reports a fresh allocation; slot is -1 when all
// slots are in use.
func (s *EbitenSource) touchSlot(tid ebiten.TouchID) (slot int, started bool) {
	for i := 1; i < maxTouchSlots; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i, false
		}
	}
	for i := 1; i < maxTouchSlots; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i, true
		}
	}
	return -1, false
}
