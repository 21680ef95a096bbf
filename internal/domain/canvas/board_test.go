package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/repocanvas/internal/domain/canvas"
	"github.com/ericfisherdev/repocanvas/internal/domain/model"
)

func placed(id int64, x, y float64) model.PlacedRepository {
	return model.PlacedRepository{
		Repository: model.Repository{ID: id, Name: "repo"},
		Position:   model.Position{X: x, Y: y},
	}
}

func move(x, y float64) model.PointerEvent {
	return model.PointerEvent{Kind: model.PointerMove, Pos: model.Position{X: x, Y: y}}
}

func up(button model.PointerButton) model.PointerEvent {
	return model.PointerEvent{Kind: model.PointerUp, Button: button}
}

func TestBoard_CardDragDoesNotPan(t *testing.T) {
	b := canvas.NewBoard()
	b.Replace([]model.PlacedRepository{placed(1, 50, 50)})

	owner := b.PointerDown(primaryDown(60, 70))
	require.Equal(t, model.CardGesture(1), owner)

	b.PointerMove(model.Position{X: 200, Y: 250})

	pos, ok := b.CardPosition(1)
	require.True(t, ok)
	assert.Equal(t, model.Position{X: 190, Y: 230}, pos)
	assert.Equal(t, model.Position{}, b.Viewport().Offset, "canvas must not pan during a card drag")

	// A middle press mid-drag cannot start a pan.
	assert.Equal(t, model.NoGesture, b.PointerDown(middleDown(200, 250)))

	b.PointerUp(model.ButtonPrimary)
	assert.Equal(t, 0, b.Snapshot().Listeners)
}

func TestBoard_PanOverCardDoesNotDragCard(t *testing.T) {
	b := canvas.NewBoard()
	b.Replace([]model.PlacedRepository{placed(1, 50, 50)})

	owner := b.PointerDown(middleDown(60, 70))
	require.Equal(t, model.CanvasGesture, owner)

	b.PointerMove(model.Position{X: 100, Y: 100})

	pos, _ := b.CardPosition(1)
	assert.Equal(t, model.Position{X: 50, Y: 50}, pos)
	assert.Equal(t, model.Position{X: 40, Y: 30}, b.Viewport().Offset)

	// A primary press on the card mid-pan cannot start a drag.
	assert.Equal(t, model.NoGesture, b.PointerDown(primaryDown(100, 100)))
}

func TestBoard_PanThenDispatch(t *testing.T) {
	b := canvas.NewBoardWithViewport(model.ViewportState{Scale: 2})

	b.Dispatch(middleDown(100, 100))
	b.Dispatch(move(150, 130))
	b.Dispatch(up(model.ButtonMiddle))
	b.Dispatch(move(900, 900))

	assert.Equal(t, model.Position{X: 25, Y: 15}, b.Viewport().Offset)
	snap := b.Snapshot()
	assert.False(t, snap.Panning)
	assert.True(t, snap.Gesture.IsNone())
	assert.Equal(t, 0, snap.Listeners)
}

func TestBoard_HitTestsTopmostCardFirst(t *testing.T) {
	b := canvas.NewBoard()
	b.Replace([]model.PlacedRepository{placed(1, 50, 50), placed(2, 60, 60)})

	owner := b.PointerDown(primaryDown(70, 70))

	assert.Equal(t, model.CardGesture(2), owner, "later card renders on top")
}

func TestBoard_PressDuringDragIsRefused(t *testing.T) {
	b := canvas.NewBoard()
	b.Replace([]model.PlacedRepository{placed(1, 50, 50), placed(2, 400, 50)})
	require.Equal(t, model.CardGesture(1), b.PointerDown(primaryDown(60, 70)))

	// Card 1 now overlaps card 2 and is raised above it.
	b.PointerMove(model.Position{X: 410, Y: 70})
	assert.Equal(t, model.NoGesture, b.PointerDown(primaryDown(420, 80)))
	assert.Equal(t, model.CardGesture(1), b.Gesture())

	b.PointerMove(model.Position{X: 500, Y: 70})
	pos, _ := b.CardPosition(1)
	assert.Equal(t, model.Position{X: 490, Y: 50}, pos)
	pos, _ = b.CardPosition(2)
	assert.Equal(t, model.Position{X: 400, Y: 50}, pos)
}

func TestBoard_HitTestFollowsViewport(t *testing.T) {
	b := canvas.NewBoardWithViewport(model.ViewportState{Offset: model.Position{X: 100, Y: 0}, Scale: 1})
	b.Replace([]model.PlacedRepository{placed(1, 50, 50)})

	assert.Equal(t, model.NoGesture, b.PointerDown(primaryDown(60, 70)), "card moved right by the offset")
	assert.Equal(t, model.CardGesture(1), b.PointerDown(primaryDown(160, 70)))
}

func TestBoard_SnapshotMarksDraggingCard(t *testing.T) {
	b := canvas.NewBoard()
	b.Replace([]model.PlacedRepository{placed(1, 50, 50), placed(2, 400, 50)})
	b.PointerDown(primaryDown(410, 60))

	snap := b.Snapshot()
	require.Len(t, snap.Cards, 2)

	assert.False(t, snap.Cards[0].Dragging)
	assert.Equal(t, 1.0, snap.Cards[0].Opacity)
	assert.Equal(t, 0, snap.Cards[0].ZIndex)

	assert.True(t, snap.Cards[1].Dragging)
	assert.Equal(t, canvas.DraggingOpacity, snap.Cards[1].Opacity)
	assert.Equal(t, canvas.RaisedZIndex, snap.Cards[1].ZIndex)
	assert.Equal(t, model.CardGesture(2), snap.Gesture)
	assert.Equal(t, 1, snap.Listeners)
}

func TestBoard_SnapshotContentScale(t *testing.T) {
	b := canvas.NewBoardWithViewport(model.ViewportState{Scale: 2})
	assert.Equal(t, 0.5, b.Snapshot().ContentScale)
}

func TestBoard_ReplaceTearsDownActiveDrag(t *testing.T) {
	b := canvas.NewBoard()
	b.Replace([]model.PlacedRepository{placed(1, 50, 50)})
	require.Equal(t, model.CardGesture(1), b.PointerDown(primaryDown(60, 70)))

	b.Replace([]model.PlacedRepository{placed(5, 0, 0)})

	snap := b.Snapshot()
	assert.Equal(t, 0, snap.Listeners)
	assert.True(t, snap.Gesture.IsNone())
	require.Len(t, snap.Cards, 1)
	assert.Equal(t, int64(5), snap.Cards[0].Repository.ID)
}

func TestBoard_CloseDuringPan(t *testing.T) {
	b := canvas.NewBoard()
	require.Equal(t, model.CanvasGesture, b.PointerDown(middleDown(0, 0)))

	b.Close()

	snap := b.Snapshot()
	assert.Equal(t, 0, snap.Listeners)
	assert.False(t, snap.Panning)
	assert.True(t, snap.Gesture.IsNone())
}

func TestBoard_ClearAndLen(t *testing.T) {
	b := canvas.NewBoard()
	b.Replace([]model.PlacedRepository{placed(1, 0, 0), placed(2, 0, 0)})
	assert.Equal(t, 2, b.Len())

	b.Clear()
	assert.Equal(t, 0, b.Len())
	_, ok := b.CardPosition(1)
	assert.False(t, ok)
}
