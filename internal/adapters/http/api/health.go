package api

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	service "github.com/okian/alumnihub/internal/app"
	"github.com/okian/alumnihub/pkg/metrics"
)

// HealthDependencies defines the interface for health checks.
type HealthDependencies interface {
	Health(ctx context.Context) (service.Health, error)
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	deps HealthDependencies
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(deps HealthDependencies) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// HandleHealth handles GET /healthz requests.
// It reports 503 until the service can serve a snapshot.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	health, err := h.deps.Health(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, service.Health{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, health)
}

// MetricsHandler exposes the Prometheus registry.
type MetricsHandler struct {
	handler http.Handler
}

// NewMetricsHandler creates a handler over the metrics registry.
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{handler: promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})}
}

// HandleMetrics handles GET /metrics requests.
func (h *MetricsHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}
