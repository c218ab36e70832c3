package host

import (
	"math"
	"testing"

	"github.com/phanxgames/compass"
)

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestWorldToLocalRoundTrip(t *testing.T) {
	n := NewNode("n", ShapeRect)
	n.X, n.Y = 100, 50
	n.PivotX, n.PivotY = 10, 5
	n.ScaleX, n.ScaleY = 2, 3
	n.SetRotation(30)

	wx, wy := n.LocalToWorld(7, -4)
	lx, ly := n.WorldToLocal(wx, wy)
	if math.Abs(lx-7) > 1e-9 || math.Abs(ly+4) > 1e-9 {
		t.Errorf("round trip = (%v, %v), want (7, -4)", lx, ly)
	}

	// The pivot lands on (X, Y).
	px, py := n.LocalToWorld(10, 5)
	if math.Abs(px-100) > 1e-9 || math.Abs(py-50) > 1e-9 {
		t.Errorf("pivot = (%v, %v), want (100, 50)", px, py)
	}
}

func TestWorldToLocalZeroScale(t *testing.T) {
	n := NewNode("n", ShapeRect)
	n.ScaleX = 0
	lx, ly := n.WorldToLocal(1, 1)
	if !math.IsNaN(lx) || !math.IsNaN(ly) {
		t.Errorf("WorldToLocal = (%v, %v), want NaN", lx, ly)
	}
}

func TestNodeCapabilities(t *testing.T) {
	n := NewNode("n", ShapeWedge)
	var _ compass.Rotatable = n
	var _ compass.Tintable = n

	n.SetRotation(180)
	if math.Abs(n.Rotation-math.Pi) > 1e-12 {
		t.Errorf("Rotation = %v, want pi", n.Rotation)
	}

	n.Fill = compass.Color{R: 0.5, G: 1, B: 0.2, A: 1}
	n.SetTint(compass.ColorRed)
	if n.Color != compass.ColorRed {
		t.Errorf("Color = %v, want red", n.Color)
	}
	want := compass.Color{R: 0.5, G: 0, B: 0, A: 1}
	if got := n.DrawColor(); got != want {
		t.Errorf("DrawColor = %v, want %v", got, want)
	}
}

func TestWedgeContains(t *testing.T) {
	n := NewNode("w", ShapeWedge)
	n.InnerRadius, n.Radius = 10, 50
	n.StartDeg, n.EndDeg = 0, 90

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 20, 20, true},
		{"start edge", 30, 0, true},
		{"end edge excluded", 0, 30, false},
		{"hole", 3, 3, false},
		{"beyond radius", 60, 10, false},
		{"other quadrant", -20, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.containsLocal(tt.x, tt.y); got != tt.want {
				t.Errorf("containsLocal(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestButton(t *testing.T) {
	b := NewButton("b", "Go", 10, 20, 100, 40)
	var _ compass.Clickable = b

	var order []int
	b.OnClick(func() { order = append(order, 1) })
	b.OnClick(func() { order = append(order, 2) })
	b.Node.OnClick(ClickContext{Node: b.Node})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("listener order = %v, want [1 2]", order)
	}

	b.SetVisible(false)
	if b.Node.Visible {
		t.Error("SetVisible(false) should hide the node")
	}

	x, y := b.Center()
	if x != 60 || y != 40 {
		t.Errorf("Center = (%v, %v), want (60, 40)", x, y)
	}
}

func TestToNRGBA(t *testing.T) {
	c := toNRGBA(compass.Color{R: 1, G: 0.5, B: -1, A: 2})
	if c.R != 255 || c.G != 128 || c.B != 0 || c.A != 255 {
		t.Errorf("toNRGBA = %v", c)
	}
}
