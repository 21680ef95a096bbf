package model

// Position is a 2D point. Card positions are stored in canvas space; pointer
// positions arrive in screen space.
type Position struct {
	X float64
	Y float64
}

// Add returns p + q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied component-wise by f.
func (p Position) Scale(f float64) Position {
	return Position{X: p.X * f, Y: p.Y * f}
}

// Div returns p divided component-wise by f.
func (p Position) Div(f float64) Position {
	return Position{X: p.X / f, Y: p.Y / f}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Min  Position
	Size Position
}

// Max returns the bottom-right corner.
func (r Rect) Max() Position {
	return r.Min.Add(r.Size)
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Position) bool {
	max := r.Max()
	return p.X >= r.Min.X && p.X < max.X && p.Y >= r.Min.Y && p.Y < max.Y
}
