package web

import (
	"fmt"
	"strconv"

	vm "github.com/ericfisherdev/repocanvas/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/repocanvas/internal/application"
	"github.com/ericfisherdev/repocanvas/internal/domain/canvas"
	"github.com/ericfisherdev/repocanvas/internal/domain/model"
)

// toCanvasViewModel converts a session snapshot into a CanvasViewModel.
func toCanvasViewModel(v application.SessionView) vm.CanvasViewModel {
	board := v.Board

	cards := make([]vm.CardViewModel, 0, len(board.Cards))
	for _, c := range board.Cards {
		cards = append(cards, toCardViewModel(c, board.ContentScale))
	}

	return vm.CanvasViewModel{
		SessionID:  v.ID,
		Username:   v.Username,
		Error:      v.Error,
		Loading:    v.Loading,
		Panning:    board.Panning,
		Transform:  canvasTransform(board.Viewport),
		ScaleLabel: fmt.Sprintf("%.0f%%", board.Viewport.Scale*100),
		CanZoomIn:  board.Viewport.Scale < model.MaxScale,
		CanZoomOut: board.Viewport.Scale > model.MinScale,
		Cards:      cards,
	}
}

func toCardViewModel(c canvas.CardView, contentScale float64) vm.CardViewModel {
	return vm.CardViewModel{
		ID:              c.Repository.ID,
		Name:            c.Repository.Name,
		FullName:        c.Repository.FullName,
		DescriptionHTML: RenderDescription(c.Repository.Description),
		Stars:           c.Repository.Stars,
		Language:        c.Repository.Language,
		URL:             c.Repository.HTMLURL,
		Dragging:        c.Dragging,
		Style:           cardStyle(c, contentScale),
	}
}

// canvasTransform maps canvas space onto the screen: offset + point*scale,
// with the transform origin at the top-left corner.
func canvasTransform(vp model.ViewportState) string {
	return fmt.Sprintf("translate(%spx, %spx) scale(%s)",
		formatFloat(vp.Offset.X), formatFloat(vp.Offset.Y), formatFloat(vp.Scale))
}

// cardStyle places a card at its canvas position and scales its content by
// the inverse of the viewport scale so cards keep a constant on-screen size.
func cardStyle(c canvas.CardView, contentScale float64) string {
	return fmt.Sprintf("left: %spx; top: %spx; transform: scale(%s); opacity: %s; z-index: %d;",
		formatFloat(c.Position.X), formatFloat(c.Position.Y),
		formatFloat(contentScale), formatFloat(c.Opacity), c.ZIndex)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
