package ecs

import (
	"testing"

	"github.com/phanxgames/compass"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []compass.Event
	CompassEventType.Subscribe(world, func(w donburi.World, e compass.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(compass.Event{Type: compass.EventSelect, Index: 2, Region: "Grove", Angle: 180})
	sink.EmitEvent(compass.Event{Type: compass.EventTrigger, Index: 2, Region: "Grove", Trigger: "GroveTrigger"})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents", len(received))
	}
	CompassEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != compass.EventSelect || e.Index != 2 || e.Angle != 180 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != compass.EventTrigger || e.Trigger != "GroveTrigger" {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	CompassEventType.Subscribe(world, func(w donburi.World, e compass.Event) { count1++ })
	CompassEventType.Subscribe(world, func(w donburi.World, e compass.Event) { count2++ })

	sink.EmitEvent(compass.Event{Type: compass.EventDragEnd})
	CompassEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("counts = (%d, %d), want (1, 1)", count1, count2)
	}
}

type fakeRegion struct{}

func (fakeRegion) SetTint(compass.Color) {}
func (fakeRegion) SetTrigger(string)     {}
func (fakeRegion) SetRotation(float64)   {}

func TestTrackSelectionFromSelector(t *testing.T) {
	world := donburi.NewWorld()
	entity := TrackSelection(world)

	logger := zerolog.Nop()
	var r fakeRegion
	sel := compass.NewSelector(compass.Config{
		RotationSpeed: 1,
		Handle:        r,
		Regions: []compass.Region{
			{Name: "A", Surface: r, Animator: r},
			{Name: "B", Surface: r, Animator: r},
		},
		Sink:   NewDonburiSink(world),
		Logger: &logger,
	})

	got := Selection.Get(world.Entry(entity))
	if got.Index != -1 {
		t.Fatalf("initial Index = %d, want -1", got.Index)
	}

	// Pointer left of the pivot: 180 degrees, region 1.
	sel.DragMove(-10, 0, 0, 0)
	sel.DragEnd()
	sel.EnterClicked()
	CompassEventType.ProcessEvents(world)

	got = Selection.Get(world.Entry(entity))
	want := SelectionData{Index: 1, Region: "B", Angle: 180, Trigger: "BTrigger", Stopped: true}
	if *got != want {
		t.Errorf("Selection = %+v, want %+v", *got, want)
	}

	sel.DragMove(10, 1, 0, 0)
	CompassEventType.ProcessEvents(world)
	got = Selection.Get(world.Entry(entity))
	if got.Index != 0 || got.Region != "A" || got.Stopped {
		t.Errorf("after reselect: %+v", *got)
	}
}
