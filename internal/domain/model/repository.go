package model

// Repository represents a GitHub repository shown as a card on the canvas.
// Values are immutable once fetched.
type Repository struct {
	ID          int64
	Name        string
	FullName    string
	Description string // Empty when the API reports null.
	Stars       int
	Language    string // Empty when the API reports null.
	HTMLURL     string
}

// PlacedRepository pairs a fetched repository with its initial canvas position.
type PlacedRepository struct {
	Repository
	Position Position
}
