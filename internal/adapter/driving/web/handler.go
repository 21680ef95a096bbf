// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/repocanvas/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/repocanvas/internal/adapter/driving/web/templates/pages"
	vm "github.com/ericfisherdev/repocanvas/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/repocanvas/internal/application"
	"github.com/ericfisherdev/repocanvas/internal/domain/port/driven"
)

const pageTitle = "RepoCanvas"

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	canvasSvc   *application.CanvasService
	lookupStore driven.LookupStore
	recentLimit int
	logger      *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. lookupStore
// may be nil, in which case no username suggestions are offered.
func NewHandler(
	canvasSvc *application.CanvasService,
	lookupStore driven.LookupStore,
	recentLimit int,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		canvasSvc:   canvasSvc,
		lookupStore: lookupStore,
		recentLimit: recentLimit,
		logger:      logger,
	}
}

// Page renders the full canvas page, starting a new session when the request
// carries none or an expired one.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	view := h.ensureSession(w, r)

	page := vm.PageViewModel{
		Title:     pageTitle,
		CSRFToken: csrfToken(w, r),
		Recent:    h.recentUsernames(r),
		Canvas:    toCanvasViewModel(view),
	}

	h.render(w, r, templates.Layout(pageTitle, pages.CanvasPage(page)))
}

// Lookup is the form fallback for submitting a username without JavaScript.
// It runs the lookup and redirects back to the page.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}

	id := h.ensureSession(w, r).ID
	if _, err := h.canvasSvc.Submit(r.Context(), id, r.FormValue("username")); err != nil {
		h.logger.Error("lookup on vanished session", "session", id, "error", err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CanvasPartial renders only the canvas region of the current session.
func (h *Handler) CanvasPartial(w http.ResponseWriter, r *http.Request) {
	view, err := h.canvasSvc.Snapshot(sessionID(r))
	if err != nil {
		if errors.Is(err, application.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load session", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, pages.Canvas(toCanvasViewModel(view)))
}

// ensureSession returns the request's session, creating one and setting the
// cookie when it is missing or has been evicted.
func (h *Handler) ensureSession(w http.ResponseWriter, r *http.Request) application.SessionView {
	if id := sessionID(r); id != "" {
		view, err := h.canvasSvc.Snapshot(id)
		if err == nil {
			return view
		}
	}

	view := h.canvasSvc.Create()
	setSessionCookie(w, view.ID)
	return view
}

func (h *Handler) recentUsernames(r *http.Request) []string {
	if h.lookupStore == nil {
		return nil
	}

	names, err := h.lookupStore.RecentUsernames(r.Context(), h.recentLimit)
	if err != nil {
		// Suggestions are optional; the page renders without them.
		h.logger.Warn("failed to load recent usernames", "error", err)
		return nil
	}
	return names
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
