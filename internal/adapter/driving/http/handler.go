// Package httphandler implements the JSON API driving adapter for canvas sessions.
package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/repocanvas/internal/application"
	"github.com/ericfisherdev/repocanvas/internal/domain/port/driven"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	canvasSvc    *application.CanvasService
	lookupStore  driven.LookupStore
	historyLimit int
	validate     *requestValidator
	logger       *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. lookupStore
// may be nil, in which case the lookup history endpoint returns an empty list.
func NewHandler(
	canvasSvc *application.CanvasService,
	lookupStore driven.LookupStore,
	historyLimit int,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		canvasSvc:    canvasSvc,
		lookupStore:  lookupStore,
		historyLimit: historyLimit,
		validate:     newRequestValidator(),
		logger:       logger,
	}
}

// RegisterAPIRoutes registers all JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("GET /api/v1/lookups", h.ListLookups)
	mux.HandleFunc("POST /api/v1/sessions", h.CreateSession)
	mux.HandleFunc("GET /api/v1/sessions/{id}", h.GetSession)
	mux.HandleFunc("DELETE /api/v1/sessions/{id}", h.DeleteSession)
	mux.HandleFunc("POST /api/v1/sessions/{id}/lookup", h.Lookup)
	mux.HandleFunc("POST /api/v1/sessions/{id}/pointer", h.Pointer)
	mux.HandleFunc("POST /api/v1/sessions/{id}/zoom", h.Zoom)
}

// NewServeMux creates an http.Handler with all API routes registered and
// wrapped with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterAPIRoutes(mux, h)
	return ApplyMiddleware(mux, logger)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Time:     time.Now().UTC().Format(time.RFC3339),
		Sessions: h.canvasSvc.Len(),
	})
}

// CreateSession starts a new empty canvas session.
func (h *Handler) CreateSession(w http.ResponseWriter, _ *http.Request) {
	view := h.canvasSvc.Create()
	writeJSON(w, http.StatusCreated, toSessionResponse(view))
}

// GetSession returns the current state of a session.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.canvasSvc.Snapshot(r.PathValue("id"))
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(view))
}

// DeleteSession tears down a session, releasing any gesture in progress.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.canvasSvc.Close(r.PathValue("id")); err != nil {
		h.writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Lookup fetches the repositories of the submitted username into the session.
// A failed fetch is not an HTTP error: the response carries lookup_error.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.canvasSvc.Submit(r.Context(), r.PathValue("id"), req.Username)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(view))
}

// Pointer applies one pointer event to the session's canvas.
func (h *Handler) Pointer(w http.ResponseWriter, r *http.Request) {
	var req PointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.canvasSvc.Pointer(r.PathValue("id"), req.toEvent())
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(view))
}

// Zoom steps the session's viewport in or out.
func (h *Handler) Zoom(w http.ResponseWriter, r *http.Request) {
	var req ZoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.canvasSvc.Zoom(r.PathValue("id"), req.Direction == "in")
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(view))
}

// ListLookups returns the most recent username lookups.
func (h *Handler) ListLookups(w http.ResponseWriter, r *http.Request) {
	resp := []LookupResponse{}
	if h.lookupStore == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	lookups, err := h.lookupStore.ListRecent(r.Context(), h.historyLimit)
	if err != nil {
		h.logger.Error("failed to list lookups", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	for _, l := range lookups {
		resp = append(resp, toLookupResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, application.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	h.logger.Error("canvas session error", "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
