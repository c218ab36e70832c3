package host

import "math"

type pointerAction uint8

const (
	pointerPress pointerAction = iota
	pointerMove
	pointerRelease
)

// pointerSample is one injected pointer event in world coordinates.
type pointerSample struct {
	action pointerAction
	x, y   float64
}

func (p pointerSample) pressed() bool { return p.action != pointerRelease }

func (s *Scene) inject(a pointerAction, x, y float64) {
	s.injectQueue = append(s.injectQueue, pointerSample{action: a, x: x, y: y})
}

// InjectPress queues a pointer press at (x, y), consumed on the next frame.
func (s *Scene) InjectPress(x, y float64) { s.inject(pointerPress, x, y) }

// InjectMove queues a move with the button held.
func (s *Scene) InjectMove(x, y float64) { s.inject(pointerMove, x, y) }

// InjectRelease queues a pointer release at (x, y).
func (s *Scene) InjectRelease(x, y float64) { s.inject(pointerRelease, x, y) }

// InjectClick queues a press and a release at the same point (two frames).
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a straight drag from one point to another over frames
// frames (at least 2): press, evenly spaced moves, release.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	s.InjectPress(fromX, fromY)
	for i := 1; i < frames-1; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectArc queues a drag that starts on the pivot (cx, cy) and sweeps the
// pointer around it at radius from fromDeg to toDeg, one move per frame,
// then releases. Headings use screen coordinates like compass.PointerAngle.
func (s *Scene) InjectArc(cx, cy, radius, fromDeg, toDeg float64, moves int) {
	moves = max(moves, 1)
	s.InjectPress(cx, cy)
	var x, y float64
	for i := 0; i < moves; i++ {
		t := 1.0
		if moves > 1 {
			t = float64(i) / float64(moves-1)
		}
		a := (fromDeg + (toDeg-fromDeg)*t) * math.Pi / 180
		x, y = cx+radius*math.Cos(a), cy+radius*math.Sin(a)
		s.InjectMove(x, y)
	}
	s.InjectRelease(x, y)
}

// Pending reports how many injected events are still queued.
func (s *Scene) Pending() int {
	return len(s.injectQueue)
}

// processInjectedInput feeds the oldest queued sample through the pointer
// state machine. Reports whether a sample was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	p := s.injectQueue[0]
	s.injectQueue = s.injectQueue[1:]
	if len(s.injectQueue) == 0 {
		s.injectQueue = nil
	}
	s.processPointer(p.x, p.y, p.pressed())
	return true
}
