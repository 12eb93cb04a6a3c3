package api

import (
	"context"
	"net/http"

	"github.com/okian/alumnihub/internal/domain/listing"
	"github.com/okian/alumnihub/internal/domain/model"
)

// ContentDependencies defines the interface for static page content.
type ContentDependencies interface {
	Home(ctx context.Context) (model.Home, error)
	Analytics(ctx context.Context) (listing.AnalyticsView, error)
}

// ContentHandler serves the homepage and analytics dashboard data.
type ContentHandler struct {
	deps ContentDependencies
}

// NewContentHandler creates a new content handler.
func NewContentHandler(deps ContentDependencies) *ContentHandler {
	return &ContentHandler{deps: deps}
}

// HandleHome handles GET /api/home requests.
func (h *ContentHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_home"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	home, err := h.deps.Home(r.Context())
	if err != nil {
		fail(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, home)
}

// HandleAnalytics handles GET /api/analytics requests.
func (h *ContentHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_analytics"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	view, err := h.deps.Analytics(r.Context())
	if err != nil {
		fail(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
