package compass

// Rotatable is the draggable handle. Rotation is in degrees and is written
// as-is; callers never see it clamped to one turn.
type Rotatable interface {
	SetRotation(degrees float64)
}

// Tintable is a region's renderable surface.
type Tintable interface {
	SetTint(c Color)
}

// Triggerable is a region's animation capability. A trigger is a named signal
// that starts the clip registered under that name.
type Triggerable interface {
	SetTrigger(name string)
}

// Clickable is a button the selector shows, hides and listens to.
type Clickable interface {
	SetVisible(visible bool)
	OnClick(fn func())
}

// Region is one fixed slice of the compass. Surface and Animator are
// optional; a nil capability turns the matching side effect into a logged
// diagnostic.
type Region struct {
	Name     string
	Surface  Tintable
	Animator Triggerable
}

// EnterTrigger returns the trigger name fired when this region is entered.
func (r Region) EnterTrigger() string {
	return r.Name + TriggerSuffix
}
