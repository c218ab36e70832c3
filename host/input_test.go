package host

import (
	"math"
	"testing"
)

func newButtonNode(name string, x, y float64) *Node {
	n := NewNode(name, ShapeRect)
	n.X, n.Y = x, y
	n.Width, n.Height = 50, 50
	n.Interactable = true
	return n
}

func TestInjectClickFiresOnClick(t *testing.T) {
	s := newTestScene()
	n := newButtonNode("btn", 10, 10)
	s.Add(n)

	var got ClickContext
	clicks := 0
	n.OnClick = func(ctx ClickContext) {
		clicks++
		got = ctx
	}

	s.InjectClick(30, 20)
	if frames := drain(s, 1.0/60); frames != 2 {
		t.Errorf("click consumed %d frames, want 2", frames)
	}
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
	if got.LocalX != 20 || got.LocalY != 10 {
		t.Errorf("local = (%v, %v), want (20, 10)", got.LocalX, got.LocalY)
	}
}

func TestHiddenNodeIsNotHit(t *testing.T) {
	s := newTestScene()
	n := newButtonNode("btn", 0, 0)
	n.Visible = false
	s.Add(n)

	clicked := false
	n.OnClick = func(ClickContext) { clicked = true }

	s.InjectClick(10, 10)
	drain(s, 1.0/60)
	if clicked {
		t.Error("hidden node should not receive clicks")
	}
}

func TestTopmostNodeWins(t *testing.T) {
	s := newTestScene()
	bottom := newButtonNode("bottom", 0, 0)
	top := newButtonNode("top", 0, 0)
	s.Add(bottom, top)

	var hit string
	bottom.OnClick = func(ClickContext) { hit = "bottom" }
	top.OnClick = func(ClickContext) { hit = "top" }

	s.InjectClick(10, 10)
	drain(s, 1.0/60)
	if hit != "top" {
		t.Errorf("hit = %q, want top", hit)
	}
}

func TestReleaseElsewhereIsNotAClick(t *testing.T) {
	s := newTestScene()
	n := newButtonNode("btn", 0, 0)
	s.Add(n)

	clicked := false
	n.OnClick = func(ClickContext) { clicked = true }

	s.InjectPress(10, 10)
	s.InjectRelease(200, 200)
	drain(s, 1.0/60)
	if clicked {
		t.Error("release outside the node should not click")
	}
}

func TestInjectDragSequence(t *testing.T) {
	s := newTestScene()
	n := newButtonNode("drag", 0, 0)
	n.Width, n.Height = 200, 200
	s.Add(n)

	var events []string
	var lastDelta float64
	var startX float64
	n.OnDragStart = func(ctx DragContext) {
		events = append(events, "start")
		startX = ctx.StartX
	}
	n.OnDrag = func(ctx DragContext) {
		events = append(events, "drag")
		lastDelta = ctx.DeltaX
	}
	n.OnDragEnd = func(DragContext) { events = append(events, "end") }
	n.OnClick = func(ClickContext) { events = append(events, "click") }

	// press at 10, moves at 30 and 50, release at 70
	s.InjectDrag(10, 10, 70, 10, 4)
	drain(s, 1.0/60)

	want := []string{"start", "drag", "drag", "end"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
	if startX != 10 {
		t.Errorf("StartX = %v, want 10", startX)
	}
	if math.Abs(lastDelta-20) > 1e-9 {
		t.Errorf("last DeltaX = %v, want 20", lastDelta)
	}
}

func TestDragDeadZone(t *testing.T) {
	s := newTestScene()
	n := newButtonNode("btn", 0, 0)
	s.Add(n)

	dragged, clicked := false, false
	n.OnDrag = func(DragContext) { dragged = true }
	n.OnClick = func(ClickContext) { clicked = true }

	s.InjectPress(10, 10)
	s.InjectMove(12, 11)
	s.InjectRelease(12, 11)
	drain(s, 1.0/60)

	if dragged {
		t.Error("movement inside the dead zone should not drag")
	}
	if !clicked {
		t.Error("press and release inside the dead zone should click")
	}

	s.SetDragDeadZone(0)
	s.InjectPress(10, 10)
	s.InjectMove(11, 10)
	s.InjectRelease(11, 10)
	drain(s, 1.0/60)
	if !dragged {
		t.Error("with a zero dead zone any movement should drag")
	}
}

func TestPendingAndNoDevices(t *testing.T) {
	s := newTestScene()
	s.InjectPress(1, 1)
	s.InjectRelease(1, 1)
	if s.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", s.Pending())
	}
	s.Step(0)
	if s.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", s.Pending())
	}
	s.Step(0)
	s.Step(0) // empty queue, devices disabled
	if s.pointer.down {
		t.Error("pointer should be up")
	}
}
