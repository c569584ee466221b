package ivy

import "strings"

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// PointerType identifies the physical device behind a contact.
type PointerType uint8

const (
	PointerUnknown PointerType = iota // no device hint resolved yet
	PointerMouse                      // legacy or pointer-event mouse contact
	PointerTouch                      // touch contact (finger)
	PointerPen                        // stylus contact
)

// ParsePointerType maps a raw device hint string ("mouse", "touch", "pen")
// to a PointerType. Unrecognized or empty hints map to PointerUnknown.
func ParsePointerType(hint string) PointerType {
	switch hint {
	case "mouse":
		return PointerMouse
	case "touch":
		return PointerTouch
	case "pen":
		return PointerPen
	default:
		return PointerUnknown
	}
}

// EventKind names a raw platform event category. The names follow the
// platform's own event vocabulary so source adapters can pass categories
// through unchanged.
type EventKind string

const (
	EventMouseDown     EventKind = "mousedown"
	EventMouseUp       EventKind = "mouseup"
	EventMouseMove     EventKind = "mousemove"
	EventMouseOut      EventKind = "mouseout"
	EventTouchStart    EventKind = "touchstart"
	EventTouchEnd      EventKind = "touchend"
	EventTouchMove     EventKind = "touchmove"
	EventTouchCancel   EventKind = "touchcancel"
	EventPointerDown   EventKind = "pointerdown"
	EventPointerUp     EventKind = "pointerup"
	EventPointerMove   EventKind = "pointermove"
	EventPointerOut    EventKind = "pointerout"
	EventPointerCancel EventKind = "pointercancel"
	EventWheel         EventKind = "wheel"
)

// isMouseKind reports whether kind belongs to the legacy mouse event family.
// Mouse events carry no contact id; all of them map onto pointer id 0.
func isMouseKind(kind EventKind) bool {
	return strings.HasPrefix(string(kind), "mouse")
}

// isTouchKind reports whether kind belongs to the touch event family.
// Touch events may carry multiple changed contacts per event.
func isTouchKind(kind EventKind) bool {
	return strings.HasPrefix(string(kind), "touch")
}

// PointerData is the normalized payload of one raw contact. Source adapters
// fill in whatever fields the platform event carried; zero values mean
// "absent" and are resolved to documented defaults during normalization,
// mirroring the falsy coalescing of the original event model.
type PointerData struct {
	// Kind is the raw event category this payload arrived on. Used by the
	// device-type heuristic when no explicit Hint is present.
	Kind EventKind

	// PointerID is the platform contact identifier. Ignored for mouse-family
	// events, which always resolve to pointer id 0.
	PointerID int

	// Hint is the platform's explicit device-type string ("mouse", "touch",
	// "pen"), if any.
	Hint string

	// ClientX, ClientY are device-space coordinates.
	ClientX, ClientY float64

	// Pressure and Force are alternative names for contact pressure;
	// Pressure wins when both are set. Zero means absent (defaults to 1).
	Pressure float64
	Force    float64

	// Width/Height and RadiusX/RadiusY are alternative contact geometry
	// encodings; explicit width/height win, radii are doubled. Zero means
	// absent (defaults to 1).
	Width, Height    float64
	RadiusX, RadiusY float64

	// DeltaX/Y/Z are wheel scroll deltas, meaningful only on wheel events.
	DeltaX, DeltaY, DeltaZ float64
}

// RawEvent is one raw platform input event as delivered by an EventSource.
type RawEvent struct {
	Kind EventKind

	// Data is the payload for single-contact events (mouse, pointer, wheel).
	Data PointerData

	// Changed holds every changed contact of a touch-family event. Each is
	// routed independently with its own coordinate conversion and hit test.
	Changed []PointerData
}

// Hittable is the scene hit-test capability. HitTest returns the object hit
// at world coordinates (x, y): the receiver itself for a direct hit, another
// object to delegate (a container returning a contained target), or nil for
// a miss. The interaction system holds only transient identity references to
// returned objects and never owns their lifetime.
type Hittable interface {
	HitTest(x, y float64) Hittable
}

// Surface describes the managed rendering surface for coordinate conversion:
// intrinsic pixel size, displayed layout size, and on-screen origin. The
// interaction system reads it per event, never caching, since layout can
// change between events.
type Surface interface {
	IntrinsicSize() (w, h float64)
	LayoutSize() (w, h float64)
	Origin() (x, y float64)
}

// StaticSurface is a Surface with fixed dimensions. A zero LayoutWidth or
// LayoutHeight falls back to the intrinsic size (no scaling on that axis).
type StaticSurface struct {
	Width, Height             float64
	LayoutWidth, LayoutHeight float64
	OriginX, OriginY          float64
}

// IntrinsicSize returns the surface's pixel dimensions.
func (s StaticSurface) IntrinsicSize() (float64, float64) {
	return s.Width, s.Height
}

// LayoutSize returns the surface's displayed dimensions.
func (s StaticSurface) LayoutSize() (float64, float64) {
	w, h := s.LayoutWidth, s.LayoutHeight
	if w == 0 {
		w = s.Width
	}
	if h == 0 {
		h = s.Height
	}
	return w, h
}

// Origin returns the surface's on-screen top-left corner.
func (s StaticSurface) Origin() (float64, float64) {
	return s.OriginX, s.OriginY
}

// EventSource delivers raw platform input events. At most one listener is
// registered per event kind; the interaction system binds a fixed listener
// set chosen by the capabilities the source reports.
type EventSource interface {
	AddListener(kind EventKind, fn func(RawEvent))
	RemoveListener(kind EventKind)

	// PointerEventsSupported reports whether the platform delivers the
	// unified pointer event family. When true, mouse and touch families are
	// not bound.
	PointerEventsSupported() bool

	// TouchEventsSupported reports whether the platform delivers touch
	// events. Only consulted when pointer events are unsupported.
	TouchEventsSupported() bool
}

// System is the contract the entity-component scheduler expects from an
// engine subsystem: an entity eligibility predicate plus attach and detach
// lifecycle hooks.
type System interface {
	Test(entity any) bool
	Initialize()
	Dispose()
}
