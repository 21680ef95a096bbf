// Package desktop implements the native window driving adapter. App holds
// the toolkit-independent state of the window; package window drives it
// from an ebiten game loop.
package desktop

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/ericfisherdev/repocanvas/internal/application"
	"github.com/ericfisherdev/repocanvas/internal/domain/canvas"
	"github.com/ericfisherdev/repocanvas/internal/domain/model"
)

// Toolbar layout, in window pixels.
const (
	ToolbarHeight   = 48
	inputX          = 12
	inputY          = 10
	inputWidth      = 280
	inputHeight     = 28
	zoomButtonSize  = 28
	zoomButtonGap   = 8
	zoomRightMargin = 12
	maxUsernameLen  = 39
)

// FrameInput is the input polled during one tick. Cursor is in window
// coordinates.
type FrameInput struct {
	Cursor    model.Position
	Pressed   []model.PointerButton
	Released  []model.PointerButton
	Chars     []rune
	Backspace bool
	Enter     bool
}

// View is the render-ready state of the window.
type View struct {
	Username     string
	InputFocused bool
	Error        string
	Loading      bool
	Input        model.Rect
	ZoomIn       model.Rect
	ZoomOut      model.Rect
	CanvasOrigin model.Position
	Board        canvas.Snapshot
}

type loadResult struct {
	generation uint64
	placed     []model.PlacedRepository
	err        error
}

// App is the desktop canvas: a Board plus the username field and zoom
// buttons. Update must be called from a single goroutine, the game loop.
type App struct {
	ctx    context.Context
	loader application.Loader
	logger *slog.Logger

	board   *canvas.Board
	width   int
	cursor  model.Position
	focused bool

	username   string
	errMsg     string
	loading    bool
	generation uint64
	results    chan loadResult
}

// NewApp creates an App. Lookups run on their own goroutine bound to ctx.
func NewApp(ctx context.Context, loader application.Loader, logger *slog.Logger) *App {
	return &App{
		ctx:     ctx,
		loader:  loader,
		logger:  logger,
		board:   canvas.NewBoard(),
		width:   1280,
		focused: true,
		results: make(chan loadResult, 4),
	}
}

// SetWidth records the window width used to place the zoom buttons.
func (a *App) SetWidth(w int) {
	a.width = w
}

// Update applies one tick of input and any lookup result that has arrived.
func (a *App) Update(in FrameInput) {
	a.drainResults()
	a.handleText(in)

	if in.Cursor != a.cursor {
		a.cursor = in.Cursor
		a.board.PointerMove(a.toCanvas(in.Cursor))
	}

	for _, b := range in.Pressed {
		a.press(b, in.Cursor)
	}
	for _, b := range in.Released {
		a.board.PointerUp(b)
	}
}

func (a *App) press(b model.PointerButton, at model.Position) {
	if b == model.ButtonPrimary {
		switch {
		case a.inputRect().Contains(at):
			a.focused = true
			return
		case a.zoomInRect().Contains(at):
			a.board.ZoomIn()
			return
		case a.zoomOutRect().Contains(at):
			a.board.ZoomOut()
			return
		}
	}

	if at.Y < ToolbarHeight {
		return
	}
	a.focused = false
	a.board.PointerDown(model.PointerEvent{
		Kind:   model.PointerDown,
		Button: b,
		Pos:    a.toCanvas(at),
	})
}

// handleText edits the username while the field is focused. Unfocused,
// '+' and '=' zoom in and '-' zooms out.
func (a *App) handleText(in FrameInput) {
	if !a.focused {
		for _, r := range in.Chars {
			switch r {
			case '+', '=':
				a.board.ZoomIn()
			case '-':
				a.board.ZoomOut()
			}
		}
		if in.Enter {
			a.submit()
		}
		return
	}

	for _, r := range in.Chars {
		if r < ' ' || utf8.RuneCountInString(a.username) >= maxUsernameLen {
			continue
		}
		a.username += string(r)
	}
	if in.Backspace && a.username != "" {
		_, size := utf8.DecodeLastRuneInString(a.username)
		a.username = a.username[:len(a.username)-size]
	}
	if in.Enter {
		a.submit()
	}
}

// submit clears the previous error and starts a lookup. Only the result of
// the latest submit is applied.
func (a *App) submit() {
	a.errMsg = ""
	a.loading = true
	a.generation++
	generation, username := a.generation, a.username

	go func() {
		placed, err := a.loader.Load(a.ctx, username)
		select {
		case a.results <- loadResult{generation: generation, placed: placed, err: err}:
		case <-a.ctx.Done():
		}
	}()
}

func (a *App) drainResults() {
	for {
		select {
		case res := <-a.results:
			a.applyResult(res)
		default:
			return
		}
	}
}

func (a *App) applyResult(res loadResult) {
	if res.generation != a.generation {
		return
	}
	a.loading = false
	if res.err != nil {
		a.board.Clear()
		a.errMsg = application.UserMessage(res.err)
		return
	}
	a.board.Replace(res.placed)
	a.logger.Debug("canvas loaded", "cards", len(res.placed))
}

// View captures the current state for drawing.
func (a *App) View() View {
	return View{
		Username:     a.username,
		InputFocused: a.focused,
		Error:        a.errMsg,
		Loading:      a.loading,
		Input:        a.inputRect(),
		ZoomIn:       a.zoomInRect(),
		ZoomOut:      a.zoomOutRect(),
		CanvasOrigin: model.Position{Y: ToolbarHeight},
		Board:        a.board.Snapshot(),
	}
}

// Close releases any gesture in progress.
func (a *App) Close() {
	a.board.Close()
}

func (a *App) toCanvas(p model.Position) model.Position {
	return p.Sub(model.Position{Y: ToolbarHeight})
}

func (a *App) inputRect() model.Rect {
	return model.Rect{
		Min:  model.Position{X: inputX, Y: inputY},
		Size: model.Position{X: inputWidth, Y: inputHeight},
	}
}

func (a *App) zoomOutRect() model.Rect {
	x := float64(a.width - zoomRightMargin - zoomButtonSize)
	return model.Rect{
		Min:  model.Position{X: x, Y: inputY},
		Size: model.Position{X: zoomButtonSize, Y: zoomButtonSize},
	}
}

func (a *App) zoomInRect() model.Rect {
	r := a.zoomOutRect()
	r.Min.X -= zoomButtonSize + zoomButtonGap
	return r
}
