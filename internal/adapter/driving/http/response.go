package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/repocanvas/internal/application"
	"github.com/ericfisherdev/repocanvas/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the JSON response for the health check endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Sessions int    `json:"sessions"`
}

// SessionResponse is the JSON representation of a canvas session.
// LookupError is the inline message of the last failed lookup.
type SessionResponse struct {
	ID           string           `json:"id"`
	Username     string           `json:"username"`
	LookupError  string           `json:"lookup_error"`
	Loading      bool             `json:"loading"`
	Viewport     ViewportResponse `json:"viewport"`
	ContentScale float64          `json:"content_scale"`
	Panning      bool             `json:"panning"`
	Gesture      string           `json:"gesture"`
	Cards        []CardResponse   `json:"cards"`
}

// ViewportResponse is the JSON representation of the viewport transform.
type ViewportResponse struct {
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
	Scale   float64 `json:"scale"`
}

// CardResponse is the JSON representation of one repository card.
type CardResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	FullName    string  `json:"full_name"`
	Description string  `json:"description"`
	Stars       int     `json:"stars"`
	Language    string  `json:"language"`
	URL         string  `json:"url"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Dragging    bool    `json:"dragging"`
	Opacity     float64 `json:"opacity"`
	ZIndex      int     `json:"z_index"`
}

// LookupResponse is the JSON representation of a lookup history entry.
type LookupResponse struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Outcome    string `json:"outcome"`
	RepoCount  int    `json:"repo_count"`
	LookedUpAt string `json:"looked_up_at"`
}

// PointerRequest is the request body for a pointer event. Button uses DOM
// MouseEvent.button numbering and is ignored for moves.
type PointerRequest struct {
	Type   string  `json:"type" validate:"required,oneof=down move up"`
	Button int     `json:"button" validate:"min=0,max=4"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// ZoomRequest is the request body for a zoom step.
type ZoomRequest struct {
	Direction string `json:"direction" validate:"required,oneof=in out"`
}

// LookupRequest is the request body for a username lookup. Any string,
// including the empty string, is accepted.
type LookupRequest struct {
	Username string `json:"username"`
}

func (req PointerRequest) toEvent() model.PointerEvent {
	return model.PointerEvent{
		Kind:   model.PointerEventKind(req.Type),
		Button: model.PointerButton(req.Button),
		Pos:    model.Position{X: req.X, Y: req.Y},
	}
}

func toSessionResponse(v application.SessionView) SessionResponse {
	cards := make([]CardResponse, 0, len(v.Board.Cards))
	for _, c := range v.Board.Cards {
		cards = append(cards, CardResponse{
			ID:          c.Repository.ID,
			Name:        c.Repository.Name,
			FullName:    c.Repository.FullName,
			Description: c.Repository.Description,
			Stars:       c.Repository.Stars,
			Language:    c.Repository.Language,
			URL:         c.Repository.HTMLURL,
			X:           c.Position.X,
			Y:           c.Position.Y,
			Dragging:    c.Dragging,
			Opacity:     c.Opacity,
			ZIndex:      c.ZIndex,
		})
	}

	return SessionResponse{
		ID:          v.ID,
		Username:    v.Username,
		LookupError: v.Error,
		Loading:     v.Loading,
		Viewport: ViewportResponse{
			OffsetX: v.Board.Viewport.Offset.X,
			OffsetY: v.Board.Viewport.Offset.Y,
			Scale:   v.Board.Viewport.Scale,
		},
		ContentScale: v.Board.ContentScale,
		Panning:      v.Board.Panning,
		Gesture:      v.Board.Gesture.String(),
		Cards:        cards,
	}
}

func toLookupResponse(l model.Lookup) LookupResponse {
	return LookupResponse{
		ID:         l.ID,
		Username:   l.Username,
		Outcome:    string(l.Outcome),
		RepoCount:  l.RepoCount,
		LookedUpAt: l.LookedUpAt.UTC().Format(time.RFC3339),
	}
}
