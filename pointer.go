package ivy

// Pointer holds the normalized state of one physical contact: a mouse, a
// finger, or a stylus. Pointers are created lazily by the InteractionSystem
// on the first event naming an unseen contact id and persist until the
// system is destroyed; an ended contact keeps its Pointer so reused ids
// (the mouse, always id 0) retain history.
//
// Target, HoverTarget, and ScrollTarget are non-owning identity references
// to scene objects. The pointer never manages their lifetime and tolerates
// their disappearance between events.
type Pointer struct {
	// ID is the stable contact identifier for this pointer's lifetime.
	// 0 is the legacy mouse.
	ID int

	// Type is the resolved device type, updated on every event.
	Type PointerType

	// Target is the object under the contact when it was last pressed.
	// HoverTarget is the object currently hovered; ScrollTarget the object
	// last scrolled over. Any of them may be nil.
	Target       Hittable
	HoverTarget  Hittable
	ScrollTarget Hittable

	// Contact geometry. Defaults to 1x1 at pressure 1.
	Width, Height float64
	Pressure      float64

	// DeltaX, DeltaY are world-space movement since the previous update,
	// computed only while the pointer is down or hovering.
	DeltaX, DeltaY float64

	// ClientX, ClientY are raw device-space coordinates;
	// WorldX, WorldY the same position in the rendering coordinate space.
	ClientX, ClientY float64
	WorldX, WorldY   float64

	// ScrollDeltaX/Y/Z are the most recent wheel deltas.
	ScrollDeltaX, ScrollDeltaY, ScrollDeltaZ float64

	IsDown     bool
	IsHovering bool

	sys   *InteractionSystem
	debug bool
}

// NewPointer creates a detached pointer with default contact geometry.
// Pointers owned by an InteractionSystem are created automatically; this
// constructor exists for tests and custom routing layers.
func NewPointer(id int) *Pointer {
	return &Pointer{
		ID:       id,
		Width:    1,
		Height:   1,
		Pressure: 1,
	}
}

// Start transitions the pointer to the down state. Starting an already-down
// pointer is a usage error: it panics with a PreconditionError in debug
// builds and silently overwrites the press state otherwise. Emits OnDown
// when the press landed on an object.
func (p *Pointer) Start(data PointerData, hit Hittable, wx, wy float64) {
	if p.IsDown && p.debug {
		panic(&PreconditionError{Op: "Pointer.Start", Reason: "contact is already down"})
	}
	p.IsDown = true
	p.Target = hit
	p.update(data, wx, wy, false)
	if p.Target != nil && p.sys != nil {
		p.sys.OnDown.Emit(p.Target, p)
	}
}

// End transitions the pointer out of the down state. Stray end events for a
// pointer that is not down are swallowed. A press and release over the same
// object emits OnClick; a release over empty space after pressing an object
// emits OnUpOutside for that object. OnUp fires whenever the release landed
// on an object.
func (p *Pointer) End(data PointerData, hit Hittable, wx, wy float64) {
	if !p.IsDown {
		return
	}
	p.IsDown = false
	p.update(data, wx, wy, false)

	if p.Target != nil && p.sys != nil {
		if p.Target == hit {
			p.sys.OnClick.Emit(p.Target, p)
		} else if hit == nil {
			p.sys.OnUpOutside.Emit(p.Target, p)
		}
	}
	p.Target = hit
	if p.Target != nil && p.sys != nil {
		p.sys.OnUp.Emit(p.Target, p)
	}
}

// Move updates position and reconciles hover state. Movement deltas are
// computed only while down or hovering, so an idle pointer passing over
// empty space accumulates none. A hover-target change first closes the old
// hover (OnHoverEnd), then opens the new one (OnHoverStart). OnMove fires
// on every move with a non-nil hover target, not just on change.
func (p *Pointer) Move(data PointerData, hit Hittable, wx, wy float64) {
	p.update(data, wx, wy, p.IsDown || p.IsHovering)

	if hit != p.HoverTarget {
		if p.HoverTarget != nil && p.IsHovering {
			p.IsHovering = false
			if p.sys != nil {
				p.sys.OnHoverEnd.Emit(p.HoverTarget, p)
			}
			p.HoverTarget = nil
		}
		if hit != nil {
			p.IsHovering = true
			p.HoverTarget = hit
			if p.sys != nil {
				p.sys.OnHoverStart.Emit(hit, p)
			}
		}
	}
	// Reassigned unconditionally: the next move's change check compares
	// against the value written here, same-target branch included.
	p.HoverTarget = hit

	if p.HoverTarget != nil && p.sys != nil {
		p.sys.OnMove.Emit(p.HoverTarget, p)
	}
}

// Cancel handles a lost contact (touch leaving the surface, pointer
// capture revoked). OnCancel always fires, with a nil target when no object
// was associated. A canceled press additionally emits OnUpOutside; a
// canceled hover additionally emits OnHoverEnd. Cancel is the only
// transition that resets Target, HoverTarget, and ScrollTarget.
func (p *Pointer) Cancel(data PointerData, hit Hittable, wx, wy float64) {
	wasDown := p.IsDown
	wasHovering := p.IsHovering
	p.IsDown = false
	p.IsHovering = false
	p.update(data, wx, wy, false)

	if p.sys != nil {
		cancelTarget := p.Target
		if cancelTarget == nil {
			cancelTarget = p.HoverTarget
		}
		p.sys.OnCancel.Emit(cancelTarget, p)
		if wasDown && p.Target != nil {
			p.sys.OnUpOutside.Emit(p.Target, p)
		}
		if wasHovering && p.HoverTarget != nil {
			p.sys.OnHoverEnd.Emit(p.HoverTarget, p)
		}
	}
	p.Target = nil
	p.HoverTarget = nil
	p.ScrollTarget = nil
}

// Scroll records wheel deltas and the object under the wheel. Emits
// OnScroll when the wheel turned over an object.
func (p *Pointer) Scroll(data PointerData, hit Hittable, wx, wy float64) {
	p.update(data, wx, wy, false)
	p.ScrollDeltaX = data.DeltaX
	p.ScrollDeltaY = data.DeltaY
	p.ScrollDeltaZ = data.DeltaZ
	p.ScrollTarget = hit
	if p.ScrollTarget != nil && p.sys != nil {
		p.sys.OnScroll.Emit(p.ScrollTarget, p)
	}
}

// update is the shared field-normalization routine. It must run before any
// logic that reads the previous WorldX/WorldY, since those are overwritten
// here. Zero-valued payload fields count as absent and resolve to defaults.
func (p *Pointer) update(data PointerData, wx, wy float64, computeDelta bool) {
	// Device type: explicit hint wins, else the event-family prefix,
	// defaulting to touch.
	if t := ParsePointerType(data.Hint); t != PointerUnknown {
		p.Type = t
	} else if isMouseKind(data.Kind) {
		p.Type = PointerMouse
	} else {
		p.Type = PointerTouch
	}

	switch {
	case data.Pressure != 0:
		p.Pressure = data.Pressure
	case data.Force != 0:
		p.Pressure = data.Force
	default:
		p.Pressure = 1
	}

	switch {
	case data.Width != 0:
		p.Width = data.Width
	case data.RadiusX != 0:
		p.Width = data.RadiusX * 2
	default:
		p.Width = 1
	}
	switch {
	case data.Height != 0:
		p.Height = data.Height
	case data.RadiusY != 0:
		p.Height = data.RadiusY * 2
	default:
		p.Height = 1
	}

	if computeDelta {
		p.DeltaX = wx - p.WorldX
		p.DeltaY = wy - p.WorldY
	} else {
		p.DeltaX = 0
		p.DeltaY = 0
	}

	p.ClientX = data.ClientX
	p.ClientY = data.ClientY
	p.WorldX = wx
	p.WorldY = wy
}
