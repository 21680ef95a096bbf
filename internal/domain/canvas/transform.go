// Package canvas implements the viewport transform and the pointer-driven
// drag state machines for the repository canvas.
//
// Two coordinate systems are involved. Screen space is where pointer events
// arrive. Canvas space is where card positions are stored, independent of the
// current pan and zoom. The viewport maps canvas to screen as
// screen = offset + point*scale. Cards are placed in canvas space but their
// content is counter-scaled by 1/scale, so a card always has the same
// on-screen size.
//
// Nothing in this package is safe for concurrent use. Callers serialize
// access the way a UI event loop would.
package canvas

import "github.com/ericfisherdev/repocanvas/internal/domain/model"

// Constant on-screen card size in screen pixels.
const (
	CardWidth  = 256
	CardHeight = 120
)

// ScreenDeltaToCanvas converts a screen-space delta into a canvas-space delta
// under the given scale.
func ScreenDeltaToCanvas(d model.Position, scale float64) model.Position {
	return d.Div(scale)
}

// CanvasToScreen applies the forward viewport transform to a canvas-space point.
func CanvasToScreen(p model.Position, vp model.ViewportState) model.Position {
	return vp.Offset.Add(p.Scale(vp.Scale))
}

// ScreenToCanvas applies the inverse viewport transform to a screen-space point.
func ScreenToCanvas(s model.Position, vp model.ViewportState) model.Position {
	return s.Sub(vp.Offset).Div(vp.Scale)
}

// CardContentScale returns the scale a card applies to its own content so it
// keeps a constant visual size inside a frame scaled by scale.
func CardContentScale(scale float64) float64 {
	return 1 / scale
}

// CardScreenBox returns the on-screen bounding box of a card whose top-left
// corner sits at pos in canvas space.
func CardScreenBox(pos model.Position, vp model.ViewportState) model.Rect {
	return model.Rect{
		Min:  CanvasToScreen(pos, vp),
		Size: model.Position{X: CardWidth, Y: CardHeight},
	}
}
