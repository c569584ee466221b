package ivy

// SyntheticSource is an EventSource driven by code instead of a platform.
// Injected events dispatch synchronously to whatever listener is bound for
// their kind, so a full press/move/release sequence can be scripted without
// a window or input device. Used by automated input replay and tests.
//
// The zero value reports a classic mouse+touch platform; set PointerEvents
// to exercise the unified pointer-event binding path instead.
type SyntheticSource struct {
	PointerEvents bool
	TouchEvents   bool

	listeners map[EventKind]func(RawEvent)
}

// AddListener implements EventSource.
func (s *SyntheticSource) AddListener(kind EventKind, fn func(RawEvent)) {
	if s.listeners == nil {
		s.listeners = make(map[EventKind]func(RawEvent))
	}
	s.listeners[kind] = fn
}

// RemoveListener implements EventSource.
func (s *SyntheticSource) RemoveListener(kind EventKind) {
	delete(s.listeners, kind)
}

// PointerEventsSupported implements EventSource.
func (s *SyntheticSource) PointerEventsSupported() bool {
	return s.PointerEvents
}

// TouchEventsSupported implements EventSource.
func (s *SyntheticSource) TouchEventsSupported() bool {
	return !s.PointerEvents && s.TouchEvents
}

// ListenerCount returns how many event kinds currently have a listener.
func (s *SyntheticSource) ListenerCount() int {
	return len(s.listeners)
}

// Dispatch delivers ev to the listener bound for its kind, if any.
// Events land in injection order; nothing is buffered or coalesced.
func (s *SyntheticSource) Dispatch(ev RawEvent) {
	if fn := s.listeners[ev.Kind]; fn != nil {
		fn(ev)
	}
}

// --- Mouse injection ---

// InjectPress dispatches a mouse press at client coordinates (x, y).
func (s *SyntheticSource) InjectPress(x, y float64) {
	s.Dispatch(RawEvent{Kind: EventMouseDown, Data: PointerData{ClientX: x, ClientY: y}})
}

// InjectMove dispatches a mouse move at client coordinates (x, y).
func (s *SyntheticSource) InjectMove(x, y float64) {
	s.Dispatch(RawEvent{Kind: EventMouseMove, Data: PointerData{ClientX: x, ClientY: y}})
}

// InjectRelease dispatches a mouse release at client coordinates (x, y).
func (s *SyntheticSource) InjectRelease(x, y float64) {
	s.Dispatch(RawEvent{Kind: EventMouseUp, Data: PointerData{ClientX: x, ClientY: y}})
}

// InjectClick is a convenience that dispatches a press followed by a
// release at the same client coordinates.
func (s *SyntheticSource) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectLeave dispatches a mouse-out (contact left the surface).
func (s *SyntheticSource) InjectLeave(x, y float64) {
	s.Dispatch(RawEvent{Kind: EventMouseOut, Data: PointerData{ClientX: x, ClientY: y}})
}

// InjectWheel dispatches a wheel event at client coordinates (x, y).
func (s *SyntheticSource) InjectWheel(x, y, deltaX, deltaY float64) {
	s.Dispatch(RawEvent{Kind: EventWheel, Data: PointerData{
		ClientX: x, ClientY: y, DeltaX: deltaX, DeltaY: deltaY,
	}})
}

// --- Touch injection ---

// InjectTouchStart dispatches a touch start for contact id at (x, y).
func (s *SyntheticSource) InjectTouchStart(id int, x, y float64) {
	s.Dispatch(touchEvent(EventTouchStart, id, x, y))
}

// InjectTouchMove dispatches a touch move for contact id at (x, y).
func (s *SyntheticSource) InjectTouchMove(id int, x, y float64) {
	s.Dispatch(touchEvent(EventTouchMove, id, x, y))
}

// InjectTouchEnd dispatches a touch end for contact id at (x, y).
func (s *SyntheticSource) InjectTouchEnd(id int, x, y float64) {
	s.Dispatch(touchEvent(EventTouchEnd, id, x, y))
}

// InjectTouchCancel dispatches a touch cancel for contact id at (x, y).
func (s *SyntheticSource) InjectTouchCancel(id int, x, y float64) {
	s.Dispatch(touchEvent(EventTouchCancel, id, x, y))
}

func touchEvent(kind EventKind, id int, x, y float64) RawEvent {
	return RawEvent{Kind: kind, Changed: []PointerData{
		{PointerID: id, ClientX: x, ClientY: y},
	}}
}
