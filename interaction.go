package ivy

import "fmt"

// PreconditionError reports a usage-precondition violation: starting an
// already-down pointer, binding twice, or unbinding when not bound. It is
// only raised when the system was built with Config.Debug; release
// configurations proceed with best-effort behavior instead.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Config configures an InteractionSystem.
type Config struct {
	// Debug turns usage-precondition violations into panics carrying a
	// *PreconditionError. Leave false in release builds.
	Debug bool
}

type transition uint8

const (
	transitionStart transition = iota
	transitionEnd
	transitionMove
	transitionCancel
	transitionScroll
)

// transitionForKind is the fixed category-to-transition routing table
// covering the mouse, touch, pointer, and wheel event families. Leave-style
// events (mouseout, pointerout) route to cancel: the contact left the
// surface.
var transitionForKind = map[EventKind]transition{
	EventMouseDown:     transitionStart,
	EventMouseUp:       transitionEnd,
	EventMouseMove:     transitionMove,
	EventMouseOut:      transitionCancel,
	EventTouchStart:    transitionStart,
	EventTouchEnd:      transitionEnd,
	EventTouchMove:     transitionMove,
	EventTouchCancel:   transitionCancel,
	EventPointerDown:   transitionStart,
	EventPointerUp:     transitionEnd,
	EventPointerMove:   transitionMove,
	EventPointerOut:    transitionCancel,
	EventPointerCancel: transitionCancel,
	EventWheel:         transitionScroll,
}

// InteractionSystem routes raw input events onto per-contact Pointer state
// machines. It converts device coordinates to world space through the
// managed Surface, resolves the object under each contact through the
// registered hit-test candidates, and broadcasts the outcome on nine named
// signals.
//
// All methods must be called from a single goroutine; dispatch is
// synchronous and events are processed strictly in delivery order.
type InteractionSystem struct {
	// Broadcast channels, one per interaction event category. Listeners
	// receive (target, pointer); OnCancel and OnScroll may deliver a nil
	// target.
	OnDown       Signal
	OnUp         Signal
	OnUpOutside  Signal
	OnMove       Signal
	OnCancel     Signal
	OnScroll     Signal
	OnClick      Signal
	OnHoverStart Signal
	OnHoverEnd   Signal

	source  EventSource
	surface Surface
	debug   bool

	bound      bool
	boundKinds []EventKind

	pointers []*Pointer
	targets  []Hittable
}

// NewInteractionSystem creates a system reading raw events from source and
// converting coordinates against surface. Either may be nil for routing
// layers that call HandleEvent directly.
func NewInteractionSystem(source EventSource, surface Surface, cfg Config) *InteractionSystem {
	return &InteractionSystem{
		source:  source,
		surface: surface,
		debug:   cfg.Debug,
	}
}

// --- Scheduler contract ---

// Test reports whether the scheduler should track entity for this system.
// Always false: the interaction system is purely event-driven and tracks no
// entities.
func (s *InteractionSystem) Test(entity any) bool {
	return false
}

// NeedsUpdate reports whether the scheduler should tick this system.
// Always false; all work happens in HandleEvent.
func (s *InteractionSystem) NeedsUpdate() bool {
	return false
}

// Initialize is the scheduler attach hook. Binds raw event listeners.
func (s *InteractionSystem) Initialize() {
	s.Bind()
}

// Dispose is the scheduler detach hook. Unbinds raw event listeners.
func (s *InteractionSystem) Dispose() {
	s.Unbind()
}

// --- Listener binding ---

// Bind registers the fixed raw listener set on the event source, chosen by
// platform capability: the pointer-event family when supported, otherwise
// the mouse family plus the touch family when supported, plus wheel in
// every configuration. Binding twice without unbinding is a usage error.
func (s *InteractionSystem) Bind() {
	if s.bound {
		if s.debug {
			panic(&PreconditionError{Op: "InteractionSystem.Bind", Reason: "listeners already bound"})
		}
		return
	}
	if s.source == nil {
		return
	}

	kinds := make([]EventKind, 0, 9)
	if s.source.PointerEventsSupported() {
		kinds = append(kinds,
			EventPointerDown, EventPointerUp, EventPointerMove,
			EventPointerOut, EventPointerCancel)
	} else {
		kinds = append(kinds,
			EventMouseDown, EventMouseUp, EventMouseMove, EventMouseOut)
		if s.source.TouchEventsSupported() {
			kinds = append(kinds,
				EventTouchStart, EventTouchEnd, EventTouchMove, EventTouchCancel)
		}
	}
	kinds = append(kinds, EventWheel)

	for _, kind := range kinds {
		s.source.AddListener(kind, s.HandleEvent)
	}
	s.boundKinds = kinds
	s.bound = true
}

// Unbind removes the listeners registered by Bind. Unbinding when not bound
// is a usage error.
func (s *InteractionSystem) Unbind() {
	if !s.bound {
		if s.debug {
			panic(&PreconditionError{Op: "InteractionSystem.Unbind", Reason: "listeners not bound"})
		}
		return
	}
	for _, kind := range s.boundKinds {
		s.source.RemoveListener(kind)
	}
	s.boundKinds = nil
	s.bound = false
}

// Bound reports whether raw listeners are currently registered.
func (s *InteractionSystem) Bound() bool {
	return s.bound
}

// --- Hit-test candidates ---

// AddHitTarget appends t to the hit-test candidate list. Candidates are
// scanned in registration order and the first hit wins, so earlier
// registration means higher priority.
func (s *InteractionSystem) AddHitTarget(t Hittable) {
	s.targets = append(s.targets, t)
}

// RemoveHitTarget removes t (by identity) from the candidate list.
func (s *InteractionSystem) RemoveHitTarget(t Hittable) {
	for i := range s.targets {
		if s.targets[i] == t {
			copy(s.targets[i:], s.targets[i+1:])
			s.targets[len(s.targets)-1] = nil
			s.targets = s.targets[:len(s.targets)-1]
			return
		}
	}
}

// HitTest scans the registered candidates in order and returns the first
// non-nil result, without consulting the remaining candidates. Returns nil
// when nothing is hit; that is a valid outcome, not an error.
func (s *InteractionSystem) HitTest(x, y float64) Hittable {
	for _, t := range s.targets {
		if hit := t.HitTest(x, y); hit != nil {
			return hit
		}
	}
	return nil
}

// --- Pointer registry ---

// Pointers returns the live pointer collection in creation order. Callers
// must not mutate it.
func (s *InteractionSystem) Pointers() []*Pointer {
	return s.pointers
}

// PointerByID returns the pointer for a contact id, or nil if that id has
// never been seen.
func (s *InteractionSystem) PointerByID(id int) *Pointer {
	for _, p := range s.pointers {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// pointerForID resolves or lazily creates the Pointer for a contact id.
// Pointers are never removed here; ended contacts keep their entry so a
// reused id retains its history.
func (s *InteractionSystem) pointerForID(id int) *Pointer {
	if p := s.PointerByID(id); p != nil {
		return p
	}
	p := NewPointer(id)
	p.sys = s
	p.debug = s.debug
	s.pointers = append(s.pointers, p)
	return p
}

// --- Event routing ---

// HandleEvent routes one raw event. Touch-family events fan out to every
// changed contact, each with its own coordinate conversion and hit test;
// all other families carry a single contact. Unknown categories are
// ignored.
func (s *InteractionSystem) HandleEvent(ev RawEvent) {
	tr, ok := transitionForKind[ev.Kind]
	if !ok {
		return
	}
	if isTouchKind(ev.Kind) {
		for _, data := range ev.Changed {
			data.Kind = ev.Kind
			s.dispatch(tr, data)
		}
		return
	}
	data := ev.Data
	data.Kind = ev.Kind
	s.dispatch(tr, data)
}

// dispatch runs one contact through conversion, hit testing, and the
// pointer transition the routing table selected.
func (s *InteractionSystem) dispatch(tr transition, data PointerData) {
	id := data.PointerID
	if isMouseKind(data.Kind) {
		// Mouse events carry no contact id; unify them on pointer 0.
		id = 0
	}
	p := s.pointerForID(id)

	wx, wy := s.ConvertPosition(data.ClientX, data.ClientY)
	hit := s.HitTest(wx, wy)

	switch tr {
	case transitionStart:
		p.Start(data, hit, wx, wy)
	case transitionEnd:
		p.End(data, hit, wx, wy)
	case transitionMove:
		p.Move(data, hit, wx, wy)
	case transitionCancel:
		p.Cancel(data, hit, wx, wy)
	case transitionScroll:
		p.Scroll(data, hit, wx, wy)
	}
}

// ConvertPosition maps device-space client coordinates into the surface's
// world coordinate space: offset by the surface origin, scaled by the ratio
// of intrinsic to layout size. Surface geometry is read per call, never
// cached, since layout can change between events.
func (s *InteractionSystem) ConvertPosition(clientX, clientY float64) (float64, float64) {
	if s.surface == nil {
		return clientX, clientY
	}
	iw, ih := s.surface.IntrinsicSize()
	lw, lh := s.surface.LayoutSize()
	ox, oy := s.surface.Origin()

	scaleX, scaleY := 1.0, 1.0
	if lw != 0 {
		scaleX = iw / lw
	}
	if lh != 0 {
		scaleY = ih / lh
	}
	return (clientX - ox) * scaleX, (clientY - oy) * scaleY
}

// --- Teardown ---

// Destroy unbinds listeners if bound, releases every signal's listener set,
// clears the pointer collection, and drops the surface and source
// references. The system must not be used afterward.
func (s *InteractionSystem) Destroy() {
	if s.bound {
		s.Unbind()
	}
	s.OnDown.ReleaseAll()
	s.OnUp.ReleaseAll()
	s.OnUpOutside.ReleaseAll()
	s.OnMove.ReleaseAll()
	s.OnCancel.ReleaseAll()
	s.OnScroll.ReleaseAll()
	s.OnClick.ReleaseAll()
	s.OnHoverStart.ReleaseAll()
	s.OnHoverEnd.ReleaseAll()
	s.pointers = nil
	s.targets = nil
	s.surface = nil
	s.source = nil
}
