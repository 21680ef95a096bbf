package canvas

import "github.com/ericfisherdev/repocanvas/internal/domain/model"

// ViewportController pans the whole canvas with the middle pointer button and
// zooms it in fixed steps. It is a two-state machine: idle, or panning with a
// live subscription on the pointer surface.
type ViewportController struct {
	state   model.ViewportState
	surface *Surface
	gesture *GestureLock

	// Non-nil exactly while panning.
	sub    *Subscription
	anchor model.Position
}

// NewViewportController creates an idle controller starting at initial.
// The initial scale is clamped to [model.MinScale, model.MaxScale].
func NewViewportController(surface *Surface, gesture *GestureLock, initial model.ViewportState) *ViewportController {
	initial.Scale = model.ClampScale(initial.Scale)
	return &ViewportController{
		state:   initial,
		surface: surface,
		gesture: gesture,
	}
}

// State returns the current offset and scale.
func (v *ViewportController) State() model.ViewportState {
	return v.state
}

// Scale returns the current zoom scale.
func (v *ViewportController) Scale() float64 {
	return v.state.Scale
}

// Panning reports whether a pan gesture is active.
func (v *ViewportController) Panning() bool {
	return v.sub != nil
}

// PointerDown starts a pan when ev is a middle-button press and no other
// gesture holds the token. It reports whether the event was consumed.
func (v *ViewportController) PointerDown(ev model.PointerEvent) bool {
	if ev.Button != model.ButtonMiddle || v.sub != nil {
		return false
	}
	if !v.gesture.Acquire(model.CanvasGesture) {
		return false
	}

	v.anchor = ev.Pos
	v.sub = v.surface.Subscribe(ListenerFuncs{
		OnMove:    v.pan,
		OnRelease: func(model.PointerButton) { v.endPan() },
	})
	return true
}

// pan moves the offset by the pointer delta divided by the scale in effect
// right now, not the scale at pan start.
func (v *ViewportController) pan(pos model.Position) {
	delta := ScreenDeltaToCanvas(pos.Sub(v.anchor), v.state.Scale)
	v.state.Offset = v.state.Offset.Add(delta)
	v.anchor = pos
}

// endPan leaves the panning state. Any release ends the pan, whichever
// button it came from.
func (v *ViewportController) endPan() {
	if v.sub == nil {
		return
	}
	v.sub.Cancel()
	v.sub = nil
	v.gesture.Release(model.CanvasGesture)
}

// ZoomIn multiplies the scale by model.ZoomFactor, clamped to the maximum.
// The offset is left alone, so zoom is anchored at the canvas origin.
func (v *ViewportController) ZoomIn() {
	v.state.Scale = model.ClampScale(v.state.Scale * model.ZoomFactor)
}

// ZoomOut divides the scale by model.ZoomFactor, clamped to the minimum.
func (v *ViewportController) ZoomOut() {
	v.state.Scale = model.ClampScale(v.state.Scale / model.ZoomFactor)
}

// Close tears the controller down, ending any pan in progress.
func (v *ViewportController) Close() {
	v.endPan()
}
