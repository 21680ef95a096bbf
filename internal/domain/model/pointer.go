package model

// PointerButton identifies a pointer button. Values match the DOM
// MouseEvent.button numbering so browser events map without translation.
type PointerButton int

const (
	ButtonPrimary   PointerButton = 0
	ButtonMiddle    PointerButton = 1
	ButtonSecondary PointerButton = 2
)

// String returns the lowercase button name.
func (b PointerButton) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonMiddle:
		return "middle"
	case ButtonSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// PointerEventKind distinguishes pointer-down, pointer-move and pointer-up.
type PointerEventKind string

const (
	PointerDown PointerEventKind = "down"
	PointerMove PointerEventKind = "move"
	PointerUp   PointerEventKind = "up"
)

// PointerEvent is a single pointer event in screen space.
type PointerEvent struct {
	Kind   PointerEventKind
	Button PointerButton
	Pos    Position
}
