// Package compass implements a draggable circular region selector.
//
// A [Selector] owns a handle angle and an ordered, fixed set of [Region]s.
// Dragging the handle rotates it toward the pointer; the heading picks one
// region, which is tinted with the highlight color while every other region
// is reset. Two buttons fire a trigger pair on the selected region: the
// enter button sends "<Name>Trigger" and the exit button sends "ExitTrigger".
//
// The selector never talks to an engine directly. The handle, region
// surfaces, animators and buttons are narrow capability interfaces
// ([Rotatable], [Tintable], [Triggerable], [Clickable]) so the widget runs
// headless in tests. The host package provides Ebitengine implementations and
// wires pointer input to the selector.
//
// # Quick start
//
//	sel := compass.NewSelector(compass.Config{
//		RotationSpeed: 1,
//		Handle:        handle,
//		Regions:       regions,
//		EnterButton:   enter,
//		ExitButton:    exit,
//	})
//	// from the host's drag callback:
//	sel.DragMove(pointerX, pointerY, pivotX, pivotY)
//	// from the host's drag-end callback:
//	sel.DragEnd()
//
// # Selection
//
// The selected index is floor(((angle mod 360) / 360) * N). The raw angle is
// kept unclamped, so a rotation speed above 1 can carry it past one turn; it
// is normalized only when the index is computed. A fraction that rounds up to
// a full turn wraps to region 0.
//
// # Diagnostics
//
// Operations never return errors. A missing surface, animator or button is
// logged through [github.com/rs/zerolog] and the side effect is skipped.
//
// # Animation
//
// [Animator] is a [Triggerable] backed by [gween] tweens. Register a [Clip]
// per trigger name and call [Animator.Update] every frame.
//
// [gween]: https://github.com/tanema/gween
package compass
