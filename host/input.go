package host

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultDragDeadZone = 4.0 // pixels

// pointerState tracks the mouse pointer between frames.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hitNode  *Node
	dragging bool
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// hitTest finds the topmost visible, interactable node at (wx, wy).
// Nodes added later are on top.
func (s *Scene) hitTest(wx, wy float64) *Node {
	for i := len(s.nodes) - 1; i >= 0; i-- {
		n := s.nodes[i]
		if !n.Visible || !n.Interactable {
			continue
		}
		lx, ly := n.WorldToLocal(wx, wy)
		if n.containsLocal(lx, ly) {
			return n
		}
	}
	return nil
}

// processInput feeds one pointer sample through the state machine: an
// injected event when one is queued, otherwise the real mouse.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.readDevices {
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(float64(mx), float64(my), pressed)
}

// processPointer runs the pointer state machine for the mouse pointer.
func (s *Scene) processPointer(wx, wy float64, pressed bool) {
	ps := &s.pointer

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = wx, wy
		ps.lastX, ps.lastY = wx, wy
		ps.hitNode = s.hitTest(wx, wy)
		ps.dragging = false
		if ps.hitNode != nil {
			s.log.Debug().Str("node", ps.hitNode.Name).Msg("Pointer down")
		}

	case !pressed && ps.down:
		if ps.dragging {
			s.fireDrag(ps.hitNode.OnDragEnd, ps, wx, wy, wx-ps.lastX, wy-ps.lastY)
		} else if ps.hitNode != nil && ps.hitNode == s.hitTest(wx, wy) {
			s.fireClick(ps.hitNode, wx, wy)
		}
		ps.down = false
		ps.hitNode = nil
		ps.dragging = false
		ps.lastX, ps.lastY = wx, wy

	case pressed && ps.down:
		if wx == ps.lastX && wy == ps.lastY {
			return
		}
		if !ps.dragging && ps.hitNode != nil {
			dx := wx - ps.startX
			dy := wy - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
				ps.dragging = true
				s.fireDrag(ps.hitNode.OnDragStart, ps, wx, wy, wx-ps.startX, wy-ps.startY)
			}
		}
		if ps.dragging {
			s.fireDrag(ps.hitNode.OnDrag, ps, wx, wy, wx-ps.lastX, wy-ps.lastY)
		}
		ps.lastX, ps.lastY = wx, wy

	default:
		ps.lastX, ps.lastY = wx, wy
	}
}

func (s *Scene) fireClick(n *Node, wx, wy float64) {
	if n.OnClick == nil {
		return
	}
	lx, ly := n.WorldToLocal(wx, wy)
	n.OnClick(ClickContext{Node: n, GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly})
}

func (s *Scene) fireDrag(fn func(DragContext), ps *pointerState, wx, wy, dx, dy float64) {
	if fn == nil {
		return
	}
	fn(DragContext{
		Node:    ps.hitNode,
		GlobalX: wx, GlobalY: wy,
		StartX: ps.startX, StartY: ps.startY,
		DeltaX: dx, DeltaY: dy,
	})
}
