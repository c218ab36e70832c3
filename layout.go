package compass

import (
	"errors"
	"fmt"
	"math"

	"github.com/bytedance/sonic"
)

// ErrInvalidLayout is wrapped by every layout validation error.
var ErrInvalidLayout = errors.New("invalid layout")

// ClipSpec describes the enter clip of a region: the region scales to Scale
// over Duration seconds, and the exit clip scales it back to 1.
type ClipSpec struct {
	Scale    float64 `json:"scale"`
	Duration float64 `json:"duration"`
	Ease     string  `json:"ease,omitempty"`
}

// RegionSpec describes one region. A nil Clip gives the region no animator.
type RegionSpec struct {
	Name  string    `json:"name"`
	Color Color     `json:"color"`
	Clip  *ClipSpec `json:"clip,omitempty"`
}

// Layout is the JSON description of a compass widget. An absent
// highlightColor or defaultColor takes the Selector default; any present
// value, transparent black included, is used as given.
type Layout struct {
	Name           string       `json:"name,omitempty"`
	RotationSpeed  float64      `json:"rotationSpeed"`
	Radius         float64      `json:"radius"`
	HighlightColor *Color       `json:"highlightColor,omitempty"`
	DefaultColor   *Color       `json:"defaultColor,omitempty"`
	Regions        []RegionSpec `json:"regions"`
}

// DefaultLayout returns a four-region layout with an enter clip on every
// region.
func DefaultLayout() Layout {
	clip := func(scale float64) *ClipSpec {
		return &ClipSpec{Scale: scale, Duration: 0.35, Ease: "outBack"}
	}
	return Layout{
		Name:           "compass",
		RotationSpeed:  1,
		Radius:         160,
		HighlightColor: colorPtr(ColorRed),
		DefaultColor:   colorPtr(ColorWhite),
		Regions: []RegionSpec{
			{Name: "Ember", Color: Color{0.95, 0.45, 0.25, 1}, Clip: clip(1.15)},
			{Name: "Tide", Color: Color{0.25, 0.55, 0.95, 1}, Clip: clip(1.15)},
			{Name: "Grove", Color: Color{0.3, 0.8, 0.4, 1}, Clip: clip(1.15)},
			{Name: "Stone", Color: Color{0.6, 0.6, 0.65, 1}, Clip: clip(1.15)},
		},
	}
}

// ParseLayout decodes and validates a JSON layout. Missing colors and speed
// take the Selector defaults.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := sonic.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	if l.RotationSpeed == 0 {
		l.RotationSpeed = DefaultRotationSpeed
	}
	if l.HighlightColor == nil {
		l.HighlightColor = colorPtr(ColorRed)
	}
	if l.DefaultColor == nil {
		l.DefaultColor = colorPtr(ColorWhite)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	return l, nil
}

// Validate reports the first problem found in l.
func (l Layout) Validate() error {
	if len(l.Regions) == 0 {
		return fmt.Errorf("%w: no regions", ErrInvalidLayout)
	}
	if math.IsNaN(l.RotationSpeed) || math.IsInf(l.RotationSpeed, 0) || l.RotationSpeed == 0 {
		return fmt.Errorf("%w: rotation speed %v", ErrInvalidLayout, l.RotationSpeed)
	}
	if !(l.Radius > 0) || math.IsInf(l.Radius, 0) {
		return fmt.Errorf("%w: radius %v", ErrInvalidLayout, l.Radius)
	}
	seen := make(map[string]bool, len(l.Regions))
	for i, r := range l.Regions {
		if r.Name == "" {
			return fmt.Errorf("%w: region %d has no name", ErrInvalidLayout, i)
		}
		if seen[r.Name] {
			return fmt.Errorf("%w: duplicate region %q", ErrInvalidLayout, r.Name)
		}
		seen[r.Name] = true
		if r.Clip == nil {
			continue
		}
		if !(r.Clip.Scale > 0) || math.IsInf(r.Clip.Scale, 0) {
			return fmt.Errorf("%w: region %q clip scale %v", ErrInvalidLayout, r.Name, r.Clip.Scale)
		}
		if !(r.Clip.Duration > 0) {
			return fmt.Errorf("%w: region %q clip duration %v", ErrInvalidLayout, r.Name, r.Clip.Duration)
		}
		if _, ok := Ease(r.Clip.Ease); !ok {
			return fmt.Errorf("%w: region %q unknown ease %q", ErrInvalidLayout, r.Name, r.Clip.Ease)
		}
	}
	return nil
}

func colorPtr(c Color) *Color { return &c }

// MarshalLayout encodes l as JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	return sonic.Marshal(l)
}
