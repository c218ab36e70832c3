package compass

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// ColorWhite is the default region tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorRed is the default highlight tint for the selected region.
var ColorRed = Color{1, 0, 0, 1}

// RotationState tracks the handle's drag lifecycle.
type RotationState uint8

const (
	RotationIdle     RotationState = iota // never dragged
	RotationDragging                      // a drag is in progress
	RotationStopped                       // the last drag ended
)

func (s RotationState) String() string {
	switch s {
	case RotationIdle:
		return "idle"
	case RotationDragging:
		return "dragging"
	case RotationStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// AnimationState tracks whether a region's enter animation has been fired
// without a matching exit.
type AnimationState uint8

const (
	AnimationIdle    AnimationState = iota // enter button armed
	AnimationPlaying                       // exit button armed
)

func (s AnimationState) String() string {
	switch s {
	case AnimationIdle:
		return "idle"
	case AnimationPlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Trigger names sent to a region's Triggerable.
const (
	TriggerSuffix = "Trigger"     // appended to the region name on enter
	ExitTrigger   = "ExitTrigger" // sent on exit regardless of region
)

// DefaultRotationSpeed is the drag-angle multiplier used when Config leaves
// RotationSpeed at zero.
const DefaultRotationSpeed = 5.0
