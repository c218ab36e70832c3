// Package ecs provides ECS adapters for compass.
package ecs

import (
	"github.com/phanxgames/compass"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CompassEventType is the Donburi event type for compass selector events.
// Subscribe to this in your ECS systems to receive select, trigger and
// drag-end events.
var CompassEventType = events.NewEventType[compass.Event]()

// SelectionData mirrors the last selector state seen through the event bus.
type SelectionData struct {
	Index   int
	Region  string
	Angle   float64
	Trigger string // last trigger fired, "" until the first enter
	Stopped bool   // true after a drag end, false again on the next select
}

// Selection is the component written by TrackSelection.
var Selection = donburi.NewComponentType[SelectionData]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Selector events are published to CompassEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) compass.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event compass.Event) {
	CompassEventType.Publish(s.world, event)
}

// TrackSelection creates an entity holding a Selection component and keeps
// it current from CompassEventType. The component is updated when the
// world's events are processed.
func TrackSelection(world donburi.World) donburi.Entity {
	entity := world.Create(Selection)
	Selection.SetValue(world.Entry(entity), SelectionData{Index: -1})

	CompassEventType.Subscribe(world, func(w donburi.World, e compass.Event) {
		if !w.Valid(entity) {
			return
		}
		d := Selection.Get(w.Entry(entity))
		switch e.Type {
		case compass.EventSelect:
			d.Index, d.Region, d.Angle = e.Index, e.Region, e.Angle
			d.Stopped = false
		case compass.EventTrigger:
			d.Trigger = e.Trigger
		case compass.EventDragEnd:
			d.Angle = e.Angle
			d.Stopped = true
		}
	})
	return entity
}
