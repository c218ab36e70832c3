package host

import "github.com/rs/zerolog"

// newTestScene returns a scene that only consumes injected input.
func newTestScene() *Scene {
	s := NewScene()
	s.readDevices = false
	s.SetLogger(zerolog.Nop())
	return s
}

// drain steps the scene until the injection queue is empty.
func drain(s *Scene, dt float32) int {
	frames := 0
	for s.Pending() > 0 && frames < 1000 {
		s.Step(dt)
		frames++
	}
	return frames
}
