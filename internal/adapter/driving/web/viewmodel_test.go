package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/repocanvas/internal/application"
	"github.com/ericfisherdev/repocanvas/internal/domain/canvas"
	"github.com/ericfisherdev/repocanvas/internal/domain/model"
)

func TestCanvasTransform(t *testing.T) {
	vp := model.ViewportState{Offset: model.Position{X: 25, Y: -15.5}, Scale: 2}
	assert.Equal(t, "translate(25px, -15.5px) scale(2)", canvasTransform(vp))
}

func TestToCanvasViewModel_ZoomBounds(t *testing.T) {
	atMax := application.SessionView{Board: canvas.Snapshot{
		Viewport: model.ViewportState{Scale: model.MaxScale},
	}}
	got := toCanvasViewModel(atMax)
	assert.False(t, got.CanZoomIn)
	assert.True(t, got.CanZoomOut)
	assert.Equal(t, "500%", got.ScaleLabel)

	atMin := application.SessionView{Board: canvas.Snapshot{
		Viewport: model.ViewportState{Scale: model.MinScale},
	}}
	got = toCanvasViewModel(atMin)
	assert.True(t, got.CanZoomIn)
	assert.False(t, got.CanZoomOut)
	assert.Equal(t, "10%", got.ScaleLabel)
}

func TestToCanvasViewModel_DraggingCard(t *testing.T) {
	view := application.SessionView{
		ID: "s1",
		Board: canvas.Snapshot{
			Viewport:     model.ViewportState{Scale: 2},
			ContentScale: 0.5,
			Cards: []canvas.CardView{{
				Repository: model.Repository{ID: 7, Name: "spoon", Description: "`fork` me"},
				Position:   model.Position{X: 190, Y: 230},
				Dragging:   true,
				Opacity:    canvas.DraggingOpacity,
				ZIndex:     canvas.RaisedZIndex,
			}},
		},
	}

	got := toCanvasViewModel(view)

	require.Len(t, got.Cards, 1)
	card := got.Cards[0]
	assert.True(t, card.Dragging)
	assert.Equal(t, "left: 190px; top: 230px; transform: scale(0.5); opacity: 0.75; z-index: 10;", card.Style)
	assert.Equal(t, "<code>fork</code> me", card.DescriptionHTML)
}

func TestToCanvasViewModel_EmptyBoard(t *testing.T) {
	got := toCanvasViewModel(application.SessionView{Board: canvas.Snapshot{
		Viewport: model.DefaultViewport(),
	}})
	assert.NotNil(t, got.Cards)
	assert.Empty(t, got.Cards)
}
