// Package ecs provides ECS adapters for glide's engine events.
//
// The primary adapter is [NewDonburiSink], which bridges glide events
// (trigger enter/leave, pin start/end, lock changes, intro completion)
// into a [Donburi] world as typed events. Subscribe to [EngineEventType]
// in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine := glide.NewEngine(cfg, nil, glide.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
