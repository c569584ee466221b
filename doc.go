// Package ivy is an input-interaction runtime for 2D engines: it normalizes
// heterogeneous raw pointer, mouse, touch, and wheel events into per-contact
// state machines and dispatches hover, press, click, scroll, and cancel
// semantics against a scene hit-test oracle.
//
// Ivy deliberately owns nothing beyond input state. Rendering, scene graphs,
// and entity scheduling are external collaborators reduced to small
// interfaces: [Hittable] for the scene oracle, [Surface] for coordinate
// conversion, [EventSource] for raw event delivery, and [System] for
// scheduler lifecycle hooks.
//
// # Quick start
//
// Create an [InteractionSystem] over an event source and surface, register
// hit-test candidates, and connect listeners to its signals:
//
//	src := &ivy.SyntheticSource{}
//	sys := ivy.NewInteractionSystem(src, ivy.StaticSurface{Width: 640, Height: 480}, ivy.Config{})
//	sys.Initialize()
//
//	box := ivy.NewRegion("box", 100, 100, ivy.HitRect{Width: 60, Height: 60})
//	sys.AddHitTarget(box)
//
//	sys.OnClick.Connect(func(target ivy.Hittable, p *ivy.Pointer) {
//		// target == box when the click landed on it
//	})
//
//	src.InjectClick(130, 130)
//
// In an Ebitengine game, use [EbitenSource] instead and call its Update
// method once per frame; polled input state is diffed into events
// automatically.
//
// # Pointers
//
// One [Pointer] exists per distinct contact id, created lazily on first
// sighting and kept until [InteractionSystem.Destroy]. The legacy mouse is
// always pointer 0. Each pointer tracks press and hover state
// independently, so a contact can be down and hovering at once.
//
// # Signals
//
// Each interaction category (OnDown, OnUp, OnUpOutside, OnMove, OnCancel,
// OnScroll, OnClick, OnHoverStart, OnHoverEnd) is a [Signal]: an ordered,
// synchronous broadcast channel with removable listeners. Delivery happens
// on the dispatching goroutine, in registration order, with no reentrancy
// guard. Listeners run before the triggering event returns.
//
// # Concurrency
//
// Ivy is single-threaded and event-driven: all work happens synchronously
// on the goroutine delivering the input event, in strict delivery order,
// with no buffering or coalescing. Hosts with concurrent input delivery
// must serialize calls into the system themselves.
package ivy
