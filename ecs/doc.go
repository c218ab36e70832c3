// Package ecs provides ECS adapters for compass selector events.
//
// [NewDonburiSink] bridges selector events (select, trigger, drag end) into a
// [Donburi] world as typed events. Subscribe to [CompassEventType] in your
// ECS systems to receive them, or call [TrackSelection] to keep a
// [SelectionData] component in sync.
//
// Usage:
//
//	world := donburi.NewWorld()
//	sel := compass.NewSelector(compass.Config{
//		// ...
//		Sink: ecs.NewDonburiSink(world),
//	})
//	entity := ecs.TrackSelection(world)
//	// each frame:
//	ecs.CompassEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
