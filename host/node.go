package host

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/compass"
)

// Shape selects how a Node is drawn.
type Shape uint8

const (
	ShapeNone   Shape = iota // not drawn; hit testing only
	ShapeRect                // Width x Height rectangle from the local origin
	ShapeCircle              // disc of Radius around the local origin
	ShapeWedge               // annular sector between StartDeg and EndDeg
	ShapeNeedle              // bar of Width along +X with a hub, for handles
)

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// ClickContext carries click event data.
type ClickContext struct {
	Node    *Node
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
}

// DragContext carries drag event data. Delta is the movement since the
// previous drag event.
type DragContext struct {
	Node    *Node
	GlobalX float64
	GlobalY float64
	StartX  float64
	StartY  float64
	DeltaX  float64
	DeltaY  float64
}

// Node is a flat scene element. The scene has no hierarchy: X and Y are world
// coordinates of the node's pivot.
//
// Node implements compass.Rotatable and compass.Tintable.
type Node struct {
	Name string

	// Transform
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians, clockwise on screen
	PivotX   float64
	PivotY   float64

	// Geometry (local coordinates)
	Shape       Shape
	Width       float64
	Height      float64
	Radius      float64
	InnerRadius float64
	StartDeg    float64
	EndDeg      float64

	// Fill is the base color; Color tints it component-wise.
	Fill  compass.Color
	Color compass.Color

	Label string

	Visible      bool
	Interactable bool
	HitShape     HitShape

	// Per-node callbacks (nil by default)
	OnClick     func(ClickContext)
	OnDragStart func(DragContext)
	OnDrag      func(DragContext)
	OnDragEnd   func(DragContext)
}

// NewNode creates a visible node with unit scale and a white fill and tint.
func NewNode(name string, shape Shape) *Node {
	return &Node{
		Name:    name,
		Shape:   shape,
		ScaleX:  1,
		ScaleY:  1,
		Fill:    compass.ColorWhite,
		Color:   compass.ColorWhite,
		Visible: true,
	}
}

// SetRotation sets the rotation in degrees.
func (n *Node) SetRotation(degrees float64) {
	n.Rotation = degrees * math.Pi / 180
}

// SetTint sets the tint color.
func (n *Node) SetTint(c compass.Color) {
	n.Color = c
}

// DrawColor returns Fill multiplied by the Color tint.
func (n *Node) DrawColor() compass.Color {
	return compass.Color{
		R: n.Fill.R * n.Color.R,
		G: n.Fill.G * n.Color.G,
		B: n.Fill.B * n.Color.B,
		A: n.Fill.A * n.Color.A,
	}
}

// GeoM returns the node's local-to-world matrix.
//
//	Translate(-Pivot) -> Scale -> Rotate -> Translate(X, Y)
func (n *Node) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-n.PivotX, -n.PivotY)
	g.Scale(n.ScaleX, n.ScaleY)
	g.Rotate(n.Rotation)
	g.Translate(n.X, n.Y)
	return g
}

// LocalToWorld converts a local point to world coordinates.
func (n *Node) LocalToWorld(lx, ly float64) (float64, float64) {
	g := n.GeoM()
	return g.Apply(lx, ly)
}

// WorldToLocal converts a world point to local coordinates. A node scaled to
// zero has no inverse and yields NaN.
func (n *Node) WorldToLocal(wx, wy float64) (float64, float64) {
	g := n.GeoM()
	if !g.IsInvertible() {
		return math.NaN(), math.NaN()
	}
	g.Invert()
	return g.Apply(wx, wy)
}

// containsLocal tests whether (lx, ly) falls inside the node's hit region.
// Uses HitShape if set; otherwise derives bounds from the shape.
func (n *Node) containsLocal(lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	switch n.Shape {
	case ShapeRect:
		return HitRect{Width: n.Width, Height: n.Height}.Contains(lx, ly)
	case ShapeCircle, ShapeNeedle:
		return HitCircle{Radius: n.Radius}.Contains(lx, ly)
	case ShapeWedge:
		d := math.Hypot(lx, ly)
		if d < n.InnerRadius || d > n.Radius {
			return false
		}
		a := compass.NormalizeDegrees(math.Atan2(ly, lx) * 180 / math.Pi)
		return a >= n.StartDeg && a < n.EndDeg
	}
	return false
}

// Button wraps a node and implements compass.Clickable. Listeners run in
// registration order when the node is clicked.
type Button struct {
	Node      *Node
	listeners []func()
}

// NewButton creates an interactable rectangle button with a label.
func NewButton(name, label string, x, y, w, h float64) *Button {
	n := NewNode(name, ShapeRect)
	n.X, n.Y = x, y
	n.Width, n.Height = w, h
	n.Label = label
	n.Interactable = true
	b := &Button{Node: n}
	n.OnClick = func(ClickContext) { b.Click() }
	return b
}

// SetVisible shows or hides the button. Hidden buttons are skipped by hit
// testing and drawing.
func (b *Button) SetVisible(visible bool) {
	b.Node.Visible = visible
}

// OnClick registers a click listener.
func (b *Button) OnClick(fn func()) {
	b.listeners = append(b.listeners, fn)
}

// Click runs the listeners as if the button had been clicked.
func (b *Button) Click() {
	for _, fn := range b.listeners {
		fn()
	}
}

// Center returns the world coordinates of the button's center.
func (b *Button) Center() (float64, float64) {
	return b.Node.LocalToWorld(b.Node.Width/2, b.Node.Height/2)
}
