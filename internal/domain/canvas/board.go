package canvas

import "github.com/ericfisherdev/repocanvas/internal/domain/model"

// Visual feedback for a card being dragged.
const (
	DraggingOpacity = 0.75
	RaisedZIndex    = 10
)

type card struct {
	repo model.Repository
	ctl  *CardController
}

// Board composes the viewport and the cards that live inside it. It owns the
// pointer surface and the gesture token that the controllers share.
type Board struct {
	surface  *Surface
	gesture  *GestureLock
	viewport *ViewportController
	cards    []card
}

// NewBoard creates an empty board with the default viewport.
func NewBoard() *Board {
	return NewBoardWithViewport(model.DefaultViewport())
}

// NewBoardWithViewport creates an empty board starting at vp.
func NewBoardWithViewport(vp model.ViewportState) *Board {
	surface := NewSurface()
	gesture := NewGestureLock()
	return &Board{
		surface:  surface,
		gesture:  gesture,
		viewport: NewViewportController(surface, gesture, vp),
	}
}

// Replace discards the current cards, tearing down their controllers, and
// creates one card per placed repository.
func (b *Board) Replace(placed []model.PlacedRepository) {
	b.closeCards()
	b.cards = make([]card, 0, len(placed))
	for _, p := range placed {
		b.cards = append(b.cards, card{
			repo: p.Repository,
			ctl:  NewCardController(p.ID, p.Position, b.surface, b.gesture, b.viewport),
		})
	}
}

// Clear removes every card.
func (b *Board) Clear() {
	b.Replace(nil)
}

// Len returns the number of cards.
func (b *Board) Len() int {
	return len(b.cards)
}

// Dispatch routes ev to the matching handler.
func (b *Board) Dispatch(ev model.PointerEvent) {
	switch ev.Kind {
	case model.PointerDown:
		b.PointerDown(ev)
	case model.PointerMove:
		b.PointerMove(ev.Pos)
	case model.PointerUp:
		b.PointerUp(ev.Button)
	}
}

// PointerDown offers ev to the cards top-most first and then, if no card
// consumed it, to the viewport. It returns the owner of the gesture the
// event started, or model.NoGesture.
func (b *Board) PointerDown(ev model.PointerEvent) model.GestureOwner {
	vp := b.viewport.State()
	for _, i := range b.hitOrder() {
		c := b.cards[i]
		if c.ctl.PointerDown(ev, CardScreenBox(c.ctl.Position(), vp)) {
			return model.CardGesture(c.ctl.ID())
		}
	}
	if b.viewport.PointerDown(ev) {
		return model.CanvasGesture
	}
	return model.NoGesture
}

// hitOrder lists card indexes from the top of the stacking order down:
// later cards before earlier ones. A raised card never needs to come first,
// because it exists only while its drag holds the gesture lock and every
// other press is refused until release.
func (b *Board) hitOrder() []int {
	order := make([]int, 0, len(b.cards))
	for i := len(b.cards) - 1; i >= 0; i-- {
		order = append(order, i)
	}
	return order
}

// PointerMove forwards a pointer move to the active gesture, if any.
func (b *Board) PointerMove(pos model.Position) {
	b.surface.Move(pos)
}

// PointerUp ends the active gesture, if any.
func (b *Board) PointerUp(button model.PointerButton) {
	b.surface.Release(button)
}

// ZoomIn zooms the viewport in by one step.
func (b *Board) ZoomIn() {
	b.viewport.ZoomIn()
}

// ZoomOut zooms the viewport out by one step.
func (b *Board) ZoomOut() {
	b.viewport.ZoomOut()
}

// Viewport returns the current viewport state.
func (b *Board) Viewport() model.ViewportState {
	return b.viewport.State()
}

// Gesture returns the current gesture owner.
func (b *Board) Gesture() model.GestureOwner {
	return b.gesture.Owner()
}

// CardPosition returns the canvas position of the card with the given ID.
func (b *Board) CardPosition(id int64) (model.Position, bool) {
	for _, c := range b.cards {
		if c.ctl.ID() == id {
			return c.ctl.Position(), true
		}
	}
	return model.Position{}, false
}

// Close tears down every controller. The board stays usable afterwards, idle.
func (b *Board) Close() {
	b.closeCards()
	b.viewport.Close()
}

func (b *Board) closeCards() {
	for _, c := range b.cards {
		c.ctl.Close()
	}
}

// CardView is the render-ready state of one card.
type CardView struct {
	Repository model.Repository
	Position   model.Position
	Screen     model.Rect
	Dragging   bool
	Opacity    float64
	ZIndex     int
}

// Snapshot is an immutable view of the board for rendering.
type Snapshot struct {
	Viewport     model.ViewportState
	ContentScale float64
	Panning      bool
	Gesture      model.GestureOwner
	Listeners    int
	Cards        []CardView
}

// Snapshot captures the current board state.
func (b *Board) Snapshot() Snapshot {
	vp := b.viewport.State()
	views := make([]CardView, 0, len(b.cards))
	for _, c := range b.cards {
		v := CardView{
			Repository: c.repo,
			Position:   c.ctl.Position(),
			Screen:     CardScreenBox(c.ctl.Position(), vp),
			Dragging:   c.ctl.Dragging(),
			Opacity:    1,
		}
		if v.Dragging {
			v.Opacity = DraggingOpacity
			v.ZIndex = RaisedZIndex
		}
		views = append(views, v)
	}

	return Snapshot{
		Viewport:     vp,
		ContentScale: CardContentScale(vp.Scale),
		Panning:      b.viewport.Panning(),
		Gesture:      b.gesture.Owner(),
		Listeners:    b.surface.ListenerCount(),
		Cards:        views,
	}
}
