// Package window runs the desktop canvas in an ebiten window.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ericfisherdev/repocanvas/internal/adapter/driving/desktop"
	"github.com/ericfisherdev/repocanvas/internal/domain/canvas"
	"github.com/ericfisherdev/repocanvas/internal/domain/model"
)

// Dark palette: debug text is drawn white.
var (
	colorBackground = color.RGBA{0x0d, 0x11, 0x17, 0xff}
	colorToolbar    = color.RGBA{0x16, 0x1b, 0x22, 0xff}
	colorBorder     = color.RGBA{0x30, 0x36, 0x3d, 0xff}
	colorFocus      = color.RGBA{0x2f, 0x81, 0xf7, 0xff}
	colorCard       = color.RGBA{0x21, 0x26, 0x2d, 0xff}
	colorError      = color.RGBA{0xf8, 0x51, 0x49, 0xff}
)

var mouseButtons = []struct {
	button model.PointerButton
	key    ebiten.MouseButton
}{
	{model.ButtonPrimary, ebiten.MouseButtonLeft},
	{model.ButtonMiddle, ebiten.MouseButtonMiddle},
	{model.ButtonSecondary, ebiten.MouseButtonRight},
}

// Run opens the window and drives app until the window closes. It blocks.
func Run(app *desktop.App, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	defer app.Close()
	return ebiten.RunGame(&game{app: app})
}

type game struct {
	app   *desktop.App
	chars []rune
}

func (g *game) Update() error {
	g.app.Update(g.poll())
	return nil
}

func (g *game) poll() desktop.FrameInput {
	x, y := ebiten.CursorPosition()
	in := desktop.FrameInput{
		Cursor:    model.Position{X: float64(x), Y: float64(y)},
		Backspace: inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		Enter: inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
	}

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.key) {
			in.Pressed = append(in.Pressed, mb.button)
		}
		if inpututil.IsMouseButtonJustReleased(mb.key) {
			in.Released = append(in.Released, mb.button)
		}
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	in.Chars = g.chars
	return in
}

func (g *game) Draw(screen *ebiten.Image) {
	v := g.app.View()
	screen.Fill(colorBackground)

	drawCards(screen, v)
	drawToolbar(screen, v)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.app.SetWidth(outsideWidth)
	return outsideWidth, outsideHeight
}

// drawCards draws cards in board order with a dragged card on top.
func drawCards(screen *ebiten.Image, v desktop.View) {
	var raised []canvas.CardView
	for _, c := range v.Board.Cards {
		if c.ZIndex > 0 {
			raised = append(raised, c)
			continue
		}
		drawCard(screen, c, v.CanvasOrigin)
	}
	for _, c := range raised {
		drawCard(screen, c, v.CanvasOrigin)
	}
}

func drawCard(screen *ebiten.Image, c canvas.CardView, origin model.Position) {
	box := c.Screen
	box.Min = box.Min.Add(origin)
	if box.Max().Y < desktop.ToolbarHeight {
		return
	}

	alpha := uint8(c.Opacity * 0xff)
	fill := withAlpha(colorCard, alpha)
	border := withAlpha(colorBorder, alpha)

	x, y := float32(box.Min.X), float32(box.Min.Y)
	w, h := float32(box.Size.X), float32(box.Size.Y)
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, border, false)

	tx, ty := int(box.Min.X)+12, int(box.Min.Y)+12
	ebitenutil.DebugPrintAt(screen, truncate(c.Repository.Name, 36), tx, ty)
	ebitenutil.DebugPrintAt(screen, truncate(c.Repository.Description, 38), tx, ty+24)

	meta := fmt.Sprintf("* %d", c.Repository.Stars)
	if c.Repository.Language != "" {
		meta += "   " + c.Repository.Language
	}
	ebitenutil.DebugPrintAt(screen, meta, tx, ty+72)
}

func drawToolbar(screen *ebiten.Image, v desktop.View) {
	width := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0, width, desktop.ToolbarHeight, colorToolbar, false)
	vector.StrokeLine(screen, 0, desktop.ToolbarHeight, width, desktop.ToolbarHeight, 1, colorBorder, false)

	inputBorder := colorBorder
	if v.InputFocused {
		inputBorder = colorFocus
	}
	drawBox(screen, v.Input, inputBorder)

	text := v.Username
	if v.InputFocused {
		text += "_"
	}
	if text == "" {
		text = "GitHub username, Enter to fetch"
	}
	ebitenutil.DebugPrintAt(screen, text, int(v.Input.Min.X)+8, int(v.Input.Min.Y)+6)

	statusX := int(v.Input.Max().X) + 16
	switch {
	case v.Loading:
		ebitenutil.DebugPrintAt(screen, "Loading...", statusX, int(v.Input.Min.Y)+6)
	case v.Error != "":
		vector.DrawFilledRect(screen, float32(statusX-6), float32(v.Input.Min.Y)+10, 3, 8, colorError, false)
		ebitenutil.DebugPrintAt(screen, v.Error, statusX, int(v.Input.Min.Y)+6)
	}

	drawBox(screen, v.ZoomIn, colorBorder)
	ebitenutil.DebugPrintAt(screen, "+", int(v.ZoomIn.Min.X)+11, int(v.ZoomIn.Min.Y)+6)
	drawBox(screen, v.ZoomOut, colorBorder)
	ebitenutil.DebugPrintAt(screen, "-", int(v.ZoomOut.Min.X)+11, int(v.ZoomOut.Min.Y)+6)

	label := fmt.Sprintf("%.0f%%", v.Board.Viewport.Scale*100)
	ebitenutil.DebugPrintAt(screen, label, int(v.ZoomIn.Min.X)-40, int(v.ZoomIn.Min.Y)+6)
}

func drawBox(screen *ebiten.Image, r model.Rect, border color.Color) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Size.X), float32(r.Size.Y)
	vector.DrawFilledRect(screen, x, y, w, h, colorToolbar, false)
	vector.StrokeRect(screen, x, y, w, h, 1, border, false)
}

// withAlpha returns c with premultiplied alpha a.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(a) / 0xff) }
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), a}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
