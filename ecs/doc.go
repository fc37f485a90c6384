// Package ecs provides ECS adapters for easel's input event stream.
//
// The primary adapter is [NewDonburiSink], which bridges easel input events
// (keyboard, mouse, wheel, window close) into a [Donburi] world as typed
// events. Subscribe to [InputEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	app.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
