// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/okian/alumnihub/internal/app"
	"github.com/okian/alumnihub/internal/domain/filter"
	"github.com/okian/alumnihub/internal/domain/listing"
	"github.com/okian/alumnihub/internal/domain/model"
	"github.com/okian/alumnihub/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ListAlumni(ctx context.Context, c filter.Criteria) (listing.AlumniPage, error)
	ListJobs(ctx context.Context, c filter.Criteria) (listing.JobPage, error)
	ListEvents(ctx context.Context, c filter.Criteria) (listing.EventPage, error)
	ListCampaigns(ctx context.Context, c filter.Criteria) (listing.CampaignPage, error)
	Home(ctx context.Context) (model.Home, error)
	Analytics(ctx context.Context) (listing.AnalyticsView, error)
	Health(ctx context.Context) (service.Health, error)
}

// Server wires HTTP routes for the directory API.
type Server struct {
	healthHandler    *HealthHandler
	metricsHandler   *MetricsHandler
	statsHandler     *StatsHandler
	contentHandler   *ContentHandler
	listingsHandlers map[string]*ListingHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(deps),
		metricsHandler:   NewMetricsHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		contentHandler:   NewContentHandler(deps),
		listingsHandlers: NewListingHandlers(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.metricsHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/home", MetricsMiddleware(s.contentHandler.HandleHome, "home"))
	mux.HandleFunc("/api/analytics", MetricsMiddleware(s.contentHandler.HandleAnalytics, "analytics"))
	for _, name := range listing.Names() {
		mux.HandleFunc("/api/"+name, MetricsMiddleware(s.listingsHandlers[name].HandleList, name))
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// fail maps err to a response. Server-side failures are logged and their detail withheld.
func fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Get().Error(r.Context(), "request failed",
			logger.String("op", op),
			logger.String("path", r.URL.Path),
			logger.Error(err),
		)
		if status == http.StatusInternalServerError {
			err = nil
		}
	}
	writeError(w, status, code, err)
}
