package model

import "strconv"

// GestureKind identifies which controller holds the active gesture.
type GestureKind string

const (
	GestureNone   GestureKind = "none"
	GestureCanvas GestureKind = "canvas"
	GestureCard   GestureKind = "card"
)

// GestureOwner names the holder of the active gesture: nobody, the canvas,
// or a single card identified by its repository ID.
type GestureOwner struct {
	Kind   GestureKind
	CardID int64
}

// NoGesture is the owner value when no gesture is active.
var NoGesture = GestureOwner{Kind: GestureNone}

// CanvasGesture is the owner value for a viewport pan.
var CanvasGesture = GestureOwner{Kind: GestureCanvas}

// CardGesture returns the owner value for a drag of the given card.
func CardGesture(id int64) GestureOwner {
	return GestureOwner{Kind: GestureCard, CardID: id}
}

// IsNone reports whether no gesture is active.
func (o GestureOwner) IsNone() bool {
	return o.Kind == "" || o.Kind == GestureNone
}

// String renders the owner as "none", "canvas" or "card:<id>".
func (o GestureOwner) String() string {
	switch o.Kind {
	case GestureCard:
		return "card:" + strconv.FormatInt(o.CardID, 10)
	case GestureCanvas:
		return string(GestureCanvas)
	default:
		return string(GestureNone)
	}
}
