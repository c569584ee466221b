package ecs

import (
	"github.com/phanxgames/ivy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Kind identifies the interaction signal an Event originated from.
type Kind uint8

const (
	KindDown       Kind = iota // pointer pressed on a target
	KindUp                     // pointer released on a target
	KindUpOutside              // pointer released away from its press target
	KindMove                   // pointer moved over its hover target
	KindCancel                 // contact lost (target may be nil)
	KindScroll                 // wheel turned over a target
	KindClick                  // press and release on the same target
	KindHoverStart             // pointer began hovering a target
	KindHoverEnd               // pointer stopped hovering a target
)

// Event is the interaction payload published to the Donburi world. It is a
// value snapshot of the pointer at dispatch time; Target is a non-owning
// reference and is nil for KindCancel and KindScroll without a hit.
type Event struct {
	Kind        Kind
	Target      ivy.Hittable
	PointerID   int
	PointerType ivy.PointerType

	WorldX, WorldY   float64
	ClientX, ClientY float64
	DeltaX, DeltaY   float64

	ScrollDeltaX float64
	ScrollDeltaY float64
	ScrollDeltaZ float64

	IsDown     bool
	IsHovering bool
}

// InteractionEventType is the Donburi event type for ivy interaction events.
// Subscribe to this in your ECS systems to receive them.
var InteractionEventType = events.NewEventType[Event]()

// Bridge forwards an InteractionSystem's signals into a Donburi world.
// Events are queued by Donburi; call InteractionEventType.ProcessEvents to
// deliver them to subscribers.
type Bridge struct {
	world   donburi.World
	handles []ivy.ListenerHandle
}

// Attach connects every interaction signal of sys to world and returns the
// bridge handle. Detach the bridge before destroying the system if the
// world outlives it.
func Attach(sys *ivy.InteractionSystem, world donburi.World) *Bridge {
	b := &Bridge{world: world}
	b.connect(&sys.OnDown, KindDown)
	b.connect(&sys.OnUp, KindUp)
	b.connect(&sys.OnUpOutside, KindUpOutside)
	b.connect(&sys.OnMove, KindMove)
	b.connect(&sys.OnCancel, KindCancel)
	b.connect(&sys.OnScroll, KindScroll)
	b.connect(&sys.OnClick, KindClick)
	b.connect(&sys.OnHoverStart, KindHoverStart)
	b.connect(&sys.OnHoverEnd, KindHoverEnd)
	return b
}

func (b *Bridge) connect(sig *ivy.Signal, kind Kind) {
	h := sig.Connect(func(target ivy.Hittable, p *ivy.Pointer) {
		InteractionEventType.Publish(b.world, Event{
			Kind:         kind,
			Target:       target,
			PointerID:    p.ID,
			PointerType:  p.Type,
			WorldX:       p.WorldX,
			WorldY:       p.WorldY,
			ClientX:      p.ClientX,
			ClientY:      p.ClientY,
			DeltaX:       p.DeltaX,
			DeltaY:       p.DeltaY,
			ScrollDeltaX: p.ScrollDeltaX,
			ScrollDeltaY: p.ScrollDeltaY,
			ScrollDeltaZ: p.ScrollDeltaZ,
			IsDown:       p.IsDown,
			IsHovering:   p.IsHovering,
		})
	})
	b.handles = append(b.handles, h)
}

// Detach removes every listener the bridge registered. Safe to call more
// than once.
func (b *Bridge) Detach() {
	for _, h := range b.handles {
		h.Remove()
	}
	b.handles = nil
}
