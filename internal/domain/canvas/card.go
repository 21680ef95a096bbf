package canvas

import "github.com/ericfisherdev/repocanvas/internal/domain/model"

// ScaleSource reports the live viewport scale.
type ScaleSource interface {
	Scale() float64
}

// CardController drags a single card with the primary pointer button. It
// owns the card's canvas position and nothing else.
type CardController struct {
	id       int64
	position model.Position
	surface  *Surface
	gesture  *GestureLock
	scale    ScaleSource

	// Non-nil exactly while dragging.
	sub           *Subscription
	pointerOffset model.Position
}

// NewCardController creates an idle controller for the card id placed at initial.
func NewCardController(id int64, initial model.Position, surface *Surface, gesture *GestureLock, scale ScaleSource) *CardController {
	return &CardController{
		id:       id,
		position: initial,
		surface:  surface,
		gesture:  gesture,
		scale:    scale,
	}
}

// ID returns the repository ID of the card.
func (c *CardController) ID() int64 {
	return c.id
}

// Position returns the card's top-left corner in canvas space.
func (c *CardController) Position() model.Position {
	return c.position
}

// Dragging reports whether a drag gesture is active.
func (c *CardController) Dragging() bool {
	return c.sub != nil
}

// PointerOffset returns the pointer offset recorded at drag start.
func (c *CardController) PointerOffset() model.Position {
	return c.pointerOffset
}

// PointerDown starts a drag when ev is a primary-button press inside box,
// the card's current on-screen bounding box. A consumed event must not be
// passed on to the viewport.
func (c *CardController) PointerDown(ev model.PointerEvent, box model.Rect) bool {
	if ev.Button != model.ButtonPrimary || c.sub != nil || !box.Contains(ev.Pos) {
		return false
	}
	if !c.gesture.Acquire(model.CardGesture(c.id)) {
		return false
	}

	c.pointerOffset = ev.Pos.Sub(box.Min.Scale(c.scale.Scale()))
	c.sub = c.surface.Subscribe(ListenerFuncs{
		OnMove:    c.drag,
		OnRelease: func(model.PointerButton) { c.endDrag() },
	})
	return true
}

// drag recomputes the position from the live pointer, so a dropped move
// event never accumulates error.
func (c *CardController) drag(pos model.Position) {
	c.position = pos.Sub(c.pointerOffset).Div(c.scale.Scale())
}

func (c *CardController) endDrag() {
	if c.sub == nil {
		return
	}
	c.sub.Cancel()
	c.sub = nil
	c.gesture.Release(model.CardGesture(c.id))
}

// Close tears the controller down, ending any drag in progress.
func (c *CardController) Close() {
	c.endDrag()
}
