package compass

import (
	"github.com/rs/zerolog"
)

// Config holds the setup-time inputs of a Selector. Regions, Handle and the
// two buttons are read-only after construction.
type Config struct {
	// Name identifies the widget in diagnostics. Optional.
	Name string

	// RotationSpeed multiplies the pointer heading before it is written to
	// the handle. Zero means DefaultRotationSpeed.
	RotationSpeed float64

	Handle      Rotatable
	Regions     []Region
	EnterButton Clickable
	ExitButton  Clickable

	// HighlightColor and DefaultColor tint the selected and unselected
	// regions. Nil means ColorRed and ColorWhite.
	HighlightColor *Color
	DefaultColor   *Color

	// Sink, when set, receives every event after the registered callbacks.
	Sink EventSink

	// Logger overrides the package logger.
	Logger *zerolog.Logger
}

// Selector is a draggable circular selector. The handle heading picks one of
// a fixed ordered set of regions; the selected region is tinted, and the
// enter/exit buttons fire a trigger pair on it.
//
// Selector is driven from a single update loop and is not safe for
// concurrent use.
type Selector struct {
	speed     float64
	handle    Rotatable
	regions   []Region
	enter     Clickable
	exit      Clickable
	highlight Color
	normal    Color
	sink      EventSink
	log       zerolog.Logger

	angle     float64
	rotation  RotationState
	anim      AnimationState
	lastIndex int

	handlers handlerRegistry
}

// NewSelector creates a selector from cfg, registers the button click
// listeners and hides the exit button. Region tints are not touched until the
// first drag, SetAngle or Refresh.
func NewSelector(cfg Config) *Selector {
	s := &Selector{
		speed:     cfg.RotationSpeed,
		handle:    cfg.Handle,
		regions:   append([]Region(nil), cfg.Regions...),
		enter:     cfg.EnterButton,
		exit:      cfg.ExitButton,
		highlight: ColorRed,
		normal:    ColorWhite,
		sink:      cfg.Sink,
		lastIndex: -1,
	}
	if s.speed == 0 {
		s.speed = DefaultRotationSpeed
	}
	if cfg.HighlightColor != nil {
		s.highlight = *cfg.HighlightColor
	}
	if cfg.DefaultColor != nil {
		s.normal = *cfg.DefaultColor
	}

	logger := compassLog
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	if cfg.Name != "" {
		logger = logger.With().Str("widget", cfg.Name).Logger()
	}
	s.log = logger

	if s.handle == nil {
		s.log.Warn().Msg("No handle set; rotation will not be displayed")
	}
	if s.enter != nil {
		s.enter.OnClick(s.EnterClicked)
	}
	if s.exit != nil {
		s.exit.OnClick(s.ExitClicked)
		s.exit.SetVisible(false)
	}
	if s.enter == nil || s.exit == nil {
		s.log.Warn().
			Bool("enter", s.enter != nil).
			Bool("exit", s.exit != nil).
			Msg("Animation buttons missing; visibility swaps disabled")
	}
	return s
}

// On registers a callback for the given event type.
func (s *Selector) On(t EventType, fn func(Event)) CallbackHandle {
	return s.handlers.add(t, fn)
}

// Len returns the number of regions.
func (s *Selector) Len() int { return len(s.regions) }

// Region returns region i. It panics if i is out of range.
func (s *Selector) Region(i int) Region { return s.regions[i] }

// Angle returns the raw handle angle in degrees. It is not normalized.
func (s *Selector) Angle() float64 { return s.angle }

// Rotation returns the drag lifecycle state.
func (s *Selector) Rotation() RotationState { return s.rotation }

// Animation returns the enter/exit animation state.
func (s *Selector) Animation() AnimationState { return s.anim }

// IsRotationStopped reports whether the last drag has ended.
func (s *Selector) IsRotationStopped() bool { return s.rotation == RotationStopped }

// SelectedIndex returns the region index for the current angle, or -1 when
// there are no regions.
func (s *Selector) SelectedIndex() int {
	return SectorIndex(s.angle, len(s.regions))
}

// Selected returns the currently selected region.
func (s *Selector) Selected() (Region, bool) {
	i := s.SelectedIndex()
	if i < 0 {
		return Region{}, false
	}
	return s.regions[i], true
}

// DragMove rotates the handle toward the pointer at (px, py) around the pivot
// (cx, cy) and re-applies region highlighting.
func (s *Selector) DragMove(px, py, cx, cy float64) {
	s.rotation = RotationDragging
	s.rotate(PointerAngle(px, py, cx, cy) * s.speed)
}

// DragEnd marks the rotation as stopped. Nothing else changes.
func (s *Selector) DragEnd() {
	s.rotation = RotationStopped
	s.emit(EventDragEnd, s.SelectedIndex(), "")
}

// SetAngle sets the handle angle directly and re-applies highlighting. The
// drag state is left unchanged.
func (s *Selector) SetAngle(degrees float64) {
	s.rotate(degrees)
}

// Refresh re-applies highlighting for the current angle.
func (s *Selector) Refresh() {
	s.applyHighlight()
}

func (s *Selector) rotate(degrees float64) {
	s.angle = degrees
	if s.handle != nil {
		s.handle.SetRotation(degrees)
	}
	s.applyHighlight()
}

// applyHighlight tints the selected region and resets every other region.
func (s *Selector) applyHighlight() {
	idx := s.SelectedIndex()
	for i := range s.regions {
		if i == idx {
			s.HighlightRegion(i)
		} else {
			s.UnhighlightRegion(i)
		}
	}
	if idx != s.lastIndex {
		s.lastIndex = idx
		if idx >= 0 {
			s.emit(EventSelect, idx, "")
		}
	}
}

// HighlightRegion tints region i with the highlight color.
func (s *Selector) HighlightRegion(i int) {
	if i < 0 || i >= len(s.regions) {
		s.log.Warn().Int("index", i).Int("regions", len(s.regions)).Msg("Highlight index out of range")
		return
	}
	r := s.regions[i]
	if r.Surface == nil {
		s.log.Warn().Str("region", r.Name).Msg("Region has no renderable surface")
		return
	}
	r.Surface.SetTint(s.highlight)
	s.log.Debug().Str("region", r.Name).Msg("Highlighted region")
}

// UnhighlightRegion resets region i to the default color. Calling it twice
// leaves the same state as calling it once.
func (s *Selector) UnhighlightRegion(i int) {
	if i < 0 || i >= len(s.regions) {
		s.log.Warn().Int("index", i).Int("regions", len(s.regions)).Msg("Unhighlight index out of range")
		return
	}
	r := s.regions[i]
	if r.Surface == nil {
		s.log.Debug().Str("region", r.Name).Msg("Region has no renderable surface")
		return
	}
	r.Surface.SetTint(s.normal)
}

// EnterClicked fires "<Name>Trigger" on the selected region and swaps the
// buttons so only exit is visible. It does nothing while an animation is
// playing. A region without an animator only logs a warning and stays idle;
// the buttons still swap.
func (s *Selector) EnterClicked() {
	if s.anim != AnimationIdle {
		s.log.Debug().Stringer("state", s.anim).Msg("Enter ignored")
		return
	}

	idx := s.SelectedIndex()
	if idx < 0 {
		s.log.Warn().Msg("No regions to animate")
	} else {
		r := s.regions[idx]
		s.log.Info().Str("region", r.Name).Msg("Selected region")
		if r.Animator != nil {
			trigger := r.EnterTrigger()
			s.log.Info().Str("trigger", trigger).Msg("Triggering animation")
			r.Animator.SetTrigger(trigger)
			s.anim = AnimationPlaying
			s.emit(EventTrigger, idx, trigger)
		} else {
			s.log.Warn().Str("region", r.Name).Msg("No region animator found")
		}
	}

	s.showButtons(false)
}

// ExitClicked fires ExitTrigger on the selected region when an animation is
// playing and returns to idle. The buttons are swapped back in every case.
func (s *Selector) ExitClicked() {
	if s.anim == AnimationPlaying {
		idx := s.SelectedIndex()
		if idx >= 0 && s.regions[idx].Animator != nil {
			s.log.Info().Str("region", s.regions[idx].Name).Msg("Triggering exit animation")
			s.regions[idx].Animator.SetTrigger(ExitTrigger)
			s.emit(EventTrigger, idx, ExitTrigger)
		} else {
			s.log.Warn().Int("index", idx).Msg("No region animator found for exit")
		}
		s.anim = AnimationIdle
	} else {
		s.log.Debug().Stringer("state", s.anim).Msg("Exit without a playing animation")
	}

	s.showButtons(true)
}

// showButtons shows the enter button (and hides exit) when enter is true,
// and the reverse otherwise.
func (s *Selector) showButtons(enter bool) {
	if s.enter == nil || s.exit == nil {
		s.log.Warn().Msg("Cannot swap animation buttons; one is missing")
		return
	}
	s.enter.SetVisible(enter)
	s.exit.SetVisible(!enter)
}

func (s *Selector) emit(t EventType, idx int, trigger string) {
	e := Event{Type: t, Index: idx, Angle: s.angle, Trigger: trigger}
	if idx >= 0 && idx < len(s.regions) {
		e.Region = s.regions[idx].Name
	}
	s.handlers.fire(e)
	if s.sink != nil {
		s.sink.EmitEvent(e)
	}
}
