// Package ecs provides ECS adapters for gizmo's manipulator context events.
//
// The primary adapter is [NewDonburiSink], which bridges set changes,
// active-manipulator changes and activation transitions into a [Donburi]
// world as typed events. Subscribe to [ManipulatorEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ctx.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
