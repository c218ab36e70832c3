package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/phanxgames/compass"
)

// hostLog is the package sub-logger; every record carries module=host.
var hostLog zerolog.Logger = log.With().Str("module", "host").Logger()

// Updater is advanced once per frame by the scene. compass.Animator
// implements it.
type Updater interface {
	Update(dt float32)
}

// Scene owns a flat list of nodes in draw order, the per-frame updaters and
// the pointer state.
type Scene struct {
	ClearColor compass.Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	nodes    []*Node
	updaters []Updater

	pointer      pointerState
	dragDeadZone float64
	injectQueue  []pointerSample
	readDevices  bool

	screenshotQueue []string
	frame           uint64

	script       *compass.ScriptRunner
	scriptTarget compass.ScriptTarget

	log zerolog.Logger
}

// NewScene creates an empty scene that reads the real mouse when no injected
// input is queued.
func NewScene() *Scene {
	return &Scene{
		ClearColor:    compass.Color{R: 0.137, G: 0.118, B: 0.176, A: 1},
		ScreenshotDir: defaultScreenshotDir,
		dragDeadZone:  defaultDragDeadZone,
		readDevices:   true,
		log:           hostLog,
	}
}

// SetLogger overrides the scene logger.
func (s *Scene) SetLogger(l zerolog.Logger) {
	s.log = l
}

// Add appends nodes on top of the current draw order.
func (s *Scene) Add(nodes ...*Node) {
	s.nodes = append(s.nodes, nodes...)
}

// Nodes returns the nodes in draw order. The slice must not be modified.
func (s *Scene) Nodes() []*Node {
	return s.nodes
}

// AddUpdater registers u to be advanced every frame.
func (s *Scene) AddUpdater(u Updater) {
	s.updaters = append(s.updaters, u)
}

// SetScript attaches an input script. One step runs per frame once the
// injected input queue has drained.
func (s *Scene) SetScript(r *compass.ScriptRunner, target compass.ScriptTarget) {
	s.script = r
	s.scriptTarget = target
}

// ScriptDone reports whether the attached script has finished. It is true
// when no script is attached.
func (s *Scene) ScriptDone() bool {
	return s.script == nil || s.script.Done()
}

// Update advances the scene by one tick at the current TPS.
func (s *Scene) Update() {
	s.Step(float32(1.0 / float64(ebiten.TPS())))
}

// Step advances the scene by dt seconds: script, input, then updaters.
func (s *Scene) Step(dt float32) {
	s.frame++
	if s.script != nil && len(s.injectQueue) == 0 {
		s.script.Step(s.scriptTarget)
	}
	s.processInput()
	for _, u := range s.updaters {
		u.Update(dt)
	}
}
