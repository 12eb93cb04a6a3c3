// Package service composes the data provider, the filter engine and the option
// cache into the operations served by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/alumnihub/internal/adapters/repository"
	"github.com/okian/alumnihub/internal/domain/filter"
	"github.com/okian/alumnihub/internal/domain/listing"
	"github.com/okian/alumnihub/internal/domain/model"
	"github.com/okian/alumnihub/internal/domain/optioncache"
	"github.com/okian/alumnihub/pkg/logger"
	"github.com/okian/alumnihub/pkg/metrics"
)

// Service lifecycle errors.
var (
	// ErrNotStarted is returned by read operations before Start.
	ErrNotStarted = errors.New("service not started")
	// ErrStopped is returned by Start once Stop closed a provider passed with WithProvider.
	ErrStopped = errors.New("service stopped: provider closed")
)

// Service implements the API dependencies for the directory.
type Service struct {
	mu sync.RWMutex

	// Core components
	provider     repository.Provider
	ownsProvider bool // built by Start, rebuilt on restart
	closed       bool
	options  optioncache.Cache

	// Configuration
	optionCacheSize int

	// State
	started   bool
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithProvider sets the dataset provider. The builtin dataset is used otherwise.
func WithProvider(p repository.Provider) Option {
	return func(s *Service) {
		if p != nil {
			s.provider = p
		}
	}
}

// WithOptionCacheSize bounds the number of memoized option sets. Zero or less is unbounded.
func WithOptionCacheSize(size int) Option {
	return func(s *Service) {
		s.optionCacheSize = size
	}
}

// WithOptionCache sets a custom option cache.
func WithOptionCache(c optioncache.Cache) Option {
	return func(s *Service) {
		if c != nil {
			s.options = c
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		optionCacheSize: 256,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start resolves the provider and loads a first snapshot so that a broken
// data source fails at startup rather than on the first request.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.closed {
		return ErrStopped
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}

	if s.provider == nil {
		p, err := repository.NewBuiltin()
		if err != nil {
			return fmt.Errorf("start service: %w", err)
		}
		s.provider = p
		s.ownsProvider = true
	}
	if s.options == nil {
		s.options = optioncache.New(optioncache.WithMaxSize(s.optionCacheSize))
	}

	ds, err := s.provider.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("start service: %w", err)
	}

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "directory service started",
		logger.String("provider", s.provider.Name()),
		logger.String("version", ds.Version),
		logger.Int("alumni", len(ds.Alumni)),
		logger.Int("jobs", len(ds.Jobs)),
		logger.Int("events", len(ds.Events)),
		logger.Int("campaigns", len(ds.Campaigns)),
	)
	return nil
}

// Stop releases the provider. Stopping a stopped service is a no-op.
// A service on the builtin provider can be started again; one whose provider
// came from WithProvider cannot, since that provider is now closed.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if err := s.provider.Close(); err != nil {
		s.logger.Warn(context.Background(), "closing provider failed", logger.Error(err))
	}
	if s.ownsProvider {
		s.provider = nil
		s.ownsProvider = false
	} else {
		s.closed = true
	}
	s.started = false
	s.logger.Info(context.Background(), "directory service stopped")
}

// snapshot returns the current dataset and an option source bound to its version.
func (s *Service) snapshot(ctx context.Context) (*model.Dataset, listing.OptionSource, error) {
	s.mu.RLock()
	started, p, cache := s.started, s.provider, s.options
	s.mu.RUnlock()

	if !started {
		return nil, nil, ErrNotStarted
	}
	ds, err := p.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ds, cachedOptions{ctx: ctx, cache: cache, version: ds.Version}, nil
}

// cachedOptions memoizes option sets per dataset version.
type cachedOptions struct {
	ctx     context.Context
	cache   optioncache.Cache
	version string
}

func (c cachedOptions) Options(l, field string, compute func() []string) []string {
	return c.cache.GetOrCompute(c.ctx, optioncache.Key{Version: c.version, Listing: l, Field: field}, compute)
}

// ListAlumni returns the alumni directory page for c.
func (s *Service) ListAlumni(ctx context.Context, c filter.Criteria) (listing.AlumniPage, error) {
	ds, src, err := s.snapshot(ctx)
	if err != nil {
		return listing.AlumniPage{}, err
	}
	page, err := listing.BuildAlumniPage(ds.Alumni, c, src)
	if err != nil {
		return listing.AlumniPage{}, err
	}
	metrics.RecordListing(listing.Alumni, page.Matched, !c.IsEmpty())
	return page, nil
}

// ListJobs returns the job board page for c.
func (s *Service) ListJobs(ctx context.Context, c filter.Criteria) (listing.JobPage, error) {
	ds, src, err := s.snapshot(ctx)
	if err != nil {
		return listing.JobPage{}, err
	}
	page, err := listing.BuildJobPage(ds.Jobs, c, src)
	if err != nil {
		return listing.JobPage{}, err
	}
	metrics.RecordListing(listing.Jobs, page.Matched, !c.IsEmpty())
	return page, nil
}

// ListEvents returns the events page for c.
func (s *Service) ListEvents(ctx context.Context, c filter.Criteria) (listing.EventPage, error) {
	ds, src, err := s.snapshot(ctx)
	if err != nil {
		return listing.EventPage{}, err
	}
	page, err := listing.BuildEventPage(ds.Events, c, src)
	if err != nil {
		return listing.EventPage{}, err
	}
	metrics.RecordListing(listing.Events, page.Matched, !c.IsEmpty())
	return page, nil
}

// ListCampaigns returns the donations page for c.
func (s *Service) ListCampaigns(ctx context.Context, c filter.Criteria) (listing.CampaignPage, error) {
	ds, src, err := s.snapshot(ctx)
	if err != nil {
		return listing.CampaignPage{}, err
	}
	page, err := listing.BuildCampaignPage(ds.Campaigns, ds.Impact, c, src)
	if err != nil {
		return listing.CampaignPage{}, err
	}
	metrics.RecordListing(listing.Campaigns, page.Matched, !c.IsEmpty())
	return page, nil
}

// Home returns the homepage content.
func (s *Service) Home(ctx context.Context) (model.Home, error) {
	ds, _, err := s.snapshot(ctx)
	if err != nil {
		return model.Home{}, err
	}
	return ds.Home, nil
}

// Analytics returns the dashboard view.
func (s *Service) Analytics(ctx context.Context) (listing.AnalyticsView, error) {
	ds, _, err := s.snapshot(ctx)
	if err != nil {
		return listing.AnalyticsView{}, err
	}
	return listing.BuildAnalytics(ds.Analytics), nil
}

// Health describes the data source behind the service.
type Health struct {
	Status   string         `json:"status"`
	Provider string         `json:"provider"`
	Version  string         `json:"version"`
	Records  map[string]int `json:"records"`
}

// Health reports whether a snapshot can be loaded right now.
func (s *Service) Health(ctx context.Context) (Health, error) {
	ds, _, err := s.snapshot(ctx)
	if err != nil {
		return Health{Status: "unavailable"}, err
	}
	return Health{
		Status:   "ok",
		Provider: s.providerName(),
		Version:  ds.Version,
		Records:  ds.Counts(),
	}, nil
}

func (s *Service) providerName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"optionCacheSize": s.optionCacheSize,
	}

	if s.started {
		hits, misses := s.options.Stats()
		stats["provider"] = s.provider.Name()
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
		stats["optionCacheEntries"] = s.options.Len()
		stats["optionCacheHits"] = hits
		stats["optionCacheMisses"] = misses

		if ds, err := s.provider.Snapshot(context.Background()); err == nil {
			stats["datasetVersion"] = ds.Version
			stats["records"] = ds.Counts()
		}
	}

	return stats
}
