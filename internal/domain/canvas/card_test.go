package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/repocanvas/internal/domain/canvas"
	"github.com/ericfisherdev/repocanvas/internal/domain/model"
)

type fixedScale float64

func (f fixedScale) Scale() float64 { return float64(f) }

func cardBox(x, y float64) model.Rect {
	return model.Rect{Min: model.Position{X: x, Y: y}, Size: model.Position{X: canvas.CardWidth, Y: canvas.CardHeight}}
}

func TestCard_DragFromPointer(t *testing.T) {
	s := canvas.NewSurface()
	g := canvas.NewGestureLock()
	c := canvas.NewCardController(1, model.Position{X: 50, Y: 50}, s, g, fixedScale(1))

	require.True(t, c.PointerDown(primaryDown(60, 70), cardBox(50, 50)))
	assert.Equal(t, model.Position{X: 10, Y: 20}, c.PointerOffset())
	assert.True(t, c.Dragging())
	assert.Equal(t, model.CardGesture(1), g.Owner())

	s.Move(model.Position{X: 200, Y: 250})
	assert.Equal(t, model.Position{X: 190, Y: 230}, c.Position())

	s.Move(model.Position{X: 70, Y: 90})
	assert.Equal(t, model.Position{X: 60, Y: 70}, c.Position(), "position is absolute, not accumulated")

	s.Release(model.ButtonSecondary)
	assert.False(t, c.Dragging())
	assert.Equal(t, 0, s.ListenerCount())
	assert.True(t, g.Owner().IsNone())
}

func TestCard_OffsetUsesScaledBox(t *testing.T) {
	s := canvas.NewSurface()
	c := canvas.NewCardController(1, model.Position{}, s, canvas.NewGestureLock(), fixedScale(2))

	require.True(t, c.PointerDown(primaryDown(110, 130), cardBox(100, 100)))
	assert.Equal(t, model.Position{X: -90, Y: -70}, c.PointerOffset())

	s.Move(model.Position{X: 110, Y: 130})
	assert.Equal(t, model.Position{X: 100, Y: 100}, c.Position())
}

func TestCard_IgnoresNonPrimaryAndOutsidePresses(t *testing.T) {
	tests := []struct {
		name string
		ev   model.PointerEvent
	}{
		{"middle button", middleDown(60, 70)},
		{"secondary button", model.PointerEvent{Kind: model.PointerDown, Button: model.ButtonSecondary, Pos: model.Position{X: 60, Y: 70}}},
		{"outside box", primaryDown(10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := canvas.NewSurface()
			g := canvas.NewGestureLock()
			c := canvas.NewCardController(1, model.Position{X: 50, Y: 50}, s, g, fixedScale(1))

			assert.False(t, c.PointerDown(tt.ev, cardBox(50, 50)))
			assert.False(t, c.Dragging())
			assert.Equal(t, 0, s.ListenerCount())
			assert.True(t, g.Owner().IsNone())
		})
	}
}

func TestCard_CloseDuringDrag(t *testing.T) {
	s := canvas.NewSurface()
	g := canvas.NewGestureLock()
	c := canvas.NewCardController(3, model.Position{}, s, g, fixedScale(1))
	require.True(t, c.PointerDown(primaryDown(5, 5), cardBox(0, 0)))

	c.Close()

	assert.False(t, c.Dragging())
	assert.Equal(t, 0, s.ListenerCount())
	assert.True(t, g.Owner().IsNone())
}

func TestCard_RefusesWhileAnotherCardDrags(t *testing.T) {
	s := canvas.NewSurface()
	g := canvas.NewGestureLock()
	a := canvas.NewCardController(1, model.Position{}, s, g, fixedScale(1))
	b := canvas.NewCardController(2, model.Position{}, s, g, fixedScale(1))

	require.True(t, a.PointerDown(primaryDown(5, 5), cardBox(0, 0)))
	assert.False(t, b.PointerDown(primaryDown(5, 5), cardBox(0, 0)))
	assert.Equal(t, 1, s.ListenerCount())
}
