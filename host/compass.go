package host

import (
	"github.com/rs/zerolog"

	"github.com/phanxgames/compass"
)

const (
	innerRadiusMul = 0.35
	needleWidth    = 6.0
	buttonWidth    = 96.0
	buttonHeight   = 32.0
	buttonGap      = 24.0
)

// Compass is a fully wired compass widget: one wedge node per region, a
// needle handle that owns the drag, the enter/exit buttons and the selector
// that ties them together.
//
// Compass implements compass.ScriptTarget by injecting pointer input, so a
// script exercises the same hit testing and callbacks as a real mouse.
type Compass struct {
	Selector    *compass.Selector
	Handle      *Node
	Regions     []*Node
	Animators   []*compass.Animator // nil for regions without a clip
	EnterButton *Button
	ExitButton  *Button

	scene    *Scene
	cx, cy   float64
	pressing bool
	lastX    float64
	lastY    float64
}

// CompassOptions holds the optional inputs of NewCompass.
type CompassOptions struct {
	Sink   compass.EventSink
	Logger *zerolog.Logger
}

// NewCompass builds the widget described by l around the pivot (cx, cy),
// adds its nodes and animators to s, and applies the initial highlight.
func NewCompass(s *Scene, l compass.Layout, cx, cy float64, opts CompassOptions) *Compass {
	c := &Compass{scene: s, cx: cx, cy: cy}
	inner := l.Radius * innerRadiusMul

	regions := make([]compass.Region, len(l.Regions))
	for i, rs := range l.Regions {
		start, end := compass.SectorSpan(i, len(l.Regions))
		n := NewNode(rs.Name, ShapeWedge)
		n.X, n.Y = cx, cy
		n.InnerRadius, n.Radius = inner, l.Radius
		n.StartDeg, n.EndDeg = start, end
		n.Label = rs.Name
		if rs.Color != (compass.Color{}) {
			n.Fill = rs.Color
		}
		c.Regions = append(c.Regions, n)
		s.Add(n)

		regions[i] = compass.Region{Name: rs.Name, Surface: n}
		var anim *compass.Animator
		if rs.Clip != nil {
			anim = newRegionAnimator(n, rs, opts.Logger)
			regions[i].Animator = anim
			s.AddUpdater(anim)
		}
		c.Animators = append(c.Animators, anim)
	}

	c.Handle = NewNode("handle", ShapeNeedle)
	c.Handle.X, c.Handle.Y = cx, cy
	c.Handle.Radius = l.Radius * 0.95
	c.Handle.Width = needleWidth
	c.Handle.Fill = compass.Color{R: 0.95, G: 0.95, B: 0.85, A: 1}
	c.Handle.Interactable = true
	c.Handle.HitShape = HitCircle{Radius: l.Radius}
	s.Add(c.Handle)

	bx := cx - buttonWidth/2
	by := cy + l.Radius + buttonGap
	c.EnterButton = NewButton("enter", "Enter", bx, by, buttonWidth, buttonHeight)
	c.ExitButton = NewButton("exit", "Exit", bx, by, buttonWidth, buttonHeight)
	c.EnterButton.Node.Fill = compass.Color{R: 0.4, G: 0.75, B: 0.45, A: 1}
	c.ExitButton.Node.Fill = compass.Color{R: 0.85, G: 0.45, B: 0.4, A: 1}
	s.Add(c.EnterButton.Node, c.ExitButton.Node)

	c.Selector = compass.NewSelector(compass.Config{
		Name:           l.Name,
		RotationSpeed:  l.RotationSpeed,
		Handle:         c.Handle,
		Regions:        regions,
		EnterButton:    c.EnterButton,
		ExitButton:     c.ExitButton,
		HighlightColor: l.HighlightColor,
		DefaultColor:   l.DefaultColor,
		Sink:           opts.Sink,
		Logger:         opts.Logger,
	})

	c.Handle.OnDrag = func(ctx DragContext) {
		c.Selector.DragMove(ctx.GlobalX, ctx.GlobalY, c.cx, c.cy)
	}
	c.Handle.OnDragEnd = func(DragContext) {
		c.Selector.DragEnd()
	}

	c.Selector.Refresh()
	return c
}

// newRegionAnimator registers the enter clip (scale up) and the exit clip
// (scale back to 1) for a region node.
func newRegionAnimator(n *Node, rs compass.RegionSpec, logger *zerolog.Logger) *compass.Animator {
	anim := compass.NewAnimator(rs.Name)
	if logger != nil {
		anim.SetLogger(*logger)
	}
	fn, _ := compass.Ease(rs.Clip.Ease)
	d := float32(rs.Clip.Duration)
	scale := []*float64{&n.ScaleX, &n.ScaleY}
	anim.AddClip(rs.Name+compass.TriggerSuffix,
		compass.TweenFloats(scale, []float64{rs.Clip.Scale, rs.Clip.Scale}, d, fn))
	anim.AddClip(compass.ExitTrigger,
		compass.TweenFloats(scale, []float64{1, 1}, d, fn))
	return anim
}

// Pivot returns the world coordinates the handle rotates around.
func (c *Compass) Pivot() (float64, float64) {
	return c.cx, c.cy
}

// Point turns the handle to the middle of region i without a drag.
func (c *Compass) Point(i int) {
	c.Selector.SetAngle(compass.SectorCenter(i, c.Selector.Len()))
}

// Drag presses on the pivot if no drag is in progress, then moves the
// pointer to (x, y).
func (c *Compass) Drag(x, y float64) {
	if !c.pressing {
		c.pressing = true
		c.scene.InjectPress(c.cx, c.cy)
	}
	c.scene.InjectMove(x, y)
	c.lastX, c.lastY = x, y
}

// Release ends a drag started by Drag.
func (c *Compass) Release() {
	if !c.pressing {
		return
	}
	c.pressing = false
	c.scene.InjectRelease(c.lastX, c.lastY)
}

// Enter clicks the enter button.
func (c *Compass) Enter() {
	c.clickButton(c.EnterButton)
}

// Exit clicks the exit button.
func (c *Compass) Exit() {
	c.clickButton(c.ExitButton)
}

// Screenshot captures the next rendered frame. The file name carries label
// and the region selected when the capture was requested.
func (c *Compass) Screenshot(label string) {
	if r, ok := c.Selector.Selected(); ok {
		label += "-" + r.Name
	}
	c.scene.Screenshot(label)
}

// clickButton ends any drag in progress first; a press while the pointer is
// still down would be read as a drag move.
func (c *Compass) clickButton(b *Button) {
	c.Release()
	x, y := b.Center()
	c.scene.InjectClick(x, y)
}
