// Package ecs provides ECS adapters for ivy's interaction signals.
//
// The primary adapter is [Attach], which bridges every interaction signal
// of an [ivy.InteractionSystem] into a [Donburi] world as typed events.
// Subscribe to [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	bridge := ecs.Attach(sys, world)
//	defer bridge.Detach()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
