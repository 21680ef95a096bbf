// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// PageViewModel holds everything the canvas page renders.
type PageViewModel struct {
	Title     string
	CSRFToken string
	Recent    []string
	Canvas    CanvasViewModel
}

// CanvasViewModel holds presentation-ready data for the canvas and its form.
type CanvasViewModel struct {
	SessionID string
	Username  string
	Error     string
	Loading   bool
	Panning   bool

	// Transform is the CSS transform of the canvas layer.
	Transform string
	// ScaleLabel is the current zoom as a percentage, e.g. "110%".
	ScaleLabel string
	CanZoomIn  bool
	CanZoomOut bool

	Cards []CardViewModel
}

// CardViewModel holds presentation-ready data for one repository card.
type CardViewModel struct {
	ID              int64
	Name            string
	FullName        string
	DescriptionHTML string
	Stars           int
	Language        string
	URL             string
	Dragging        bool

	// Style is the inline CSS placing the card on the canvas.
	Style string
}
