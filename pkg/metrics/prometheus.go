// Package metrics provides Prometheus metrics for the alumnihub directory service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector exported by the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Listing metrics
	listingRequests *prometheus.CounterVec
	listingResults  *prometheus.HistogramVec
	filteredQueries *prometheus.CounterVec
	emptyResults    *prometheus.CounterVec

	// Dataset metrics
	datasetRecords      *prometheus.GaugeVec
	datasetLoadDuration *prometheus.HistogramVec
	datasetLoadErrors   *prometheus.CounterVec
	datasetVersion      *prometheus.GaugeVec

	// Option cache metrics
	optionCacheHits   *prometheus.CounterVec
	optionCacheMisses *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // singleton used by package-level helpers

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps default Go collectors out of /metrics

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "alumnihub",
		subsystem:        "directory",
		histogramBuckets: prometheus.DefBuckets,
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) gaugeVec(name, help string, labels ...string) *prometheus.GaugeVec {
	return promauto.With(m.registry).NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) histogramVec(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	return promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.listingRequests = m.counterVec("listing_requests_total",
		"Total number of listing queries by listing", "listing")
	m.listingResults = m.histogramVec("listing_results",
		"Number of records returned per listing query",
		[]float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 1000}, "listing")
	m.filteredQueries = m.counterVec("filtered_queries_total",
		"Listing queries that carried at least one active filter", "listing")
	m.emptyResults = m.counterVec("empty_results_total",
		"Listing queries that matched no record (empty state shown)", "listing")

	m.datasetRecords = m.gaugeVec("dataset_records",
		"Number of records in the current dataset snapshot", "listing")
	m.datasetLoadDuration = m.histogramVec("dataset_load_duration_milliseconds",
		"Dataset snapshot load latency in milliseconds", m.histogramBuckets, "provider")
	m.datasetLoadErrors = m.counterVec("dataset_load_errors_total",
		"Dataset snapshot load failures", "provider")
	m.datasetVersion = m.gaugeVec("dataset_info",
		"Always 1; labels carry the provider and version of the last loaded snapshot", "provider", "version")

	m.optionCacheHits = m.counterVec("option_cache_hits_total",
		"Option set lookups served from cache", "listing")
	m.optionCacheMisses = m.counterVec("option_cache_misses_total",
		"Option set lookups that had to be computed", "listing")

	m.httpRequests = m.counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint and method", "endpoint", "method", "status_code")
	m.httpRequestDuration = m.histogramVec("http_request_duration_milliseconds",
		"HTTP request duration in milliseconds", m.histogramBuckets, "endpoint", "method", "status_code")

	m.errorRateByType = m.counterVec("errors_by_type_total",
		"Errors by type and severity", "error_type", "severity")
	m.errorRateByEndpoint = m.counterVec("errors_by_endpoint_total",
		"Errors by endpoint", "endpoint", "method", "error_type")

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_memory_usage_bytes",
		Help:        "System memory usage in bytes",
		ConstLabels: m.constLabels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_goroutine_count",
		Help:        "Number of goroutines",
		ConstLabels: m.constLabels,
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_gc_pause_time_milliseconds",
		Help:        "GC pause time in milliseconds",
		Buckets:     []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		ConstLabels: m.constLabels,
	})
}

// RecordListing records one listing query and the number of records it returned.
func RecordListing(listing string, results int, filtered bool) {
	globalManager.listingRequests.WithLabelValues(listing).Inc()
	globalManager.listingResults.WithLabelValues(listing).Observe(float64(results))
	if filtered {
		globalManager.filteredQueries.WithLabelValues(listing).Inc()
	}
	if results == 0 {
		globalManager.emptyResults.WithLabelValues(listing).Inc()
	}
}

// UpdateDatasetRecords sets the record count of a listing in the current snapshot.
func UpdateDatasetRecords(listing string, count int) {
	globalManager.datasetRecords.WithLabelValues(listing).Set(float64(count))
}

// RecordDatasetLoad records a snapshot load latency in milliseconds.
func RecordDatasetLoad(provider string, latencyMs float64) {
	globalManager.datasetLoadDuration.WithLabelValues(provider).Observe(latencyMs)
}

// RecordDatasetLoadError increments the snapshot load failure counter.
func RecordDatasetLoadError(provider string) {
	globalManager.datasetLoadErrors.WithLabelValues(provider).Inc()
}

// UpdateDatasetVersion publishes the provider and version of the last loaded snapshot.
func UpdateDatasetVersion(provider, version string) {
	globalManager.datasetVersion.Reset()
	globalManager.datasetVersion.WithLabelValues(provider, version).Set(1)
}

// RecordOptionCacheHit increments the option cache hit counter.
func RecordOptionCacheHit(listing string) {
	globalManager.optionCacheHits.WithLabelValues(listing).Inc()
}

// RecordOptionCacheMiss increments the option cache miss counter.
func RecordOptionCacheMiss(listing string) {
	globalManager.optionCacheMisses.WithLabelValues(listing).Inc()
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType increments the error counter for a type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint increments the error counter for an endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the current heap allocation in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records an average GC pause in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the registry backing the package-level helpers.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
