// Package repository supplies dataset snapshots to the service.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/alumnihub/internal/domain/model"
	"github.com/okian/alumnihub/pkg/metrics"
)

// Data source names accepted by New.
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceSQLite  = "sqlite"
)

// Provider yields immutable dataset snapshots.
type Provider interface {
	// Snapshot returns the current dataset. Callers must not mutate it.
	Snapshot(ctx context.Context) (*model.Dataset, error)
	// Name identifies the provider in logs and metrics.
	Name() string
	// Close releases resources held by the provider.
	Close() error
}

// New constructs the provider named by source.
func New(ctx context.Context, source string, opts ...Option) (Provider, error) {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}

	switch source {
	case "", SourceBuiltin:
		return NewBuiltin()
	case SourceFile:
		if s.path == "" {
			return nil, fmt.Errorf("%w: file source needs a data path", ErrUnknownSource)
		}
		return NewFileProvider(s.path)
	case SourceSQLite:
		if s.dsn == "" {
			return nil, fmt.Errorf("%w: sqlite source needs a dsn", ErrUnknownSource)
		}
		return NewSQLiteProvider(ctx, s.dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
}

// publish normalizes, validates and fingerprints ds, then records load metrics for provider.
func publish(provider string, ds *model.Dataset, start time.Time) (*model.Dataset, error) {
	if ds != nil {
		ds.Normalize()
	}
	if err := Validate(ds); err != nil {
		metrics.RecordDatasetLoadError(provider)
		return nil, err
	}
	version, err := Fingerprint(ds)
	if err != nil {
		metrics.RecordDatasetLoadError(provider)
		return nil, err
	}
	ds.Version = version

	metrics.RecordDatasetLoad(provider, float64(time.Since(start).Milliseconds()))
	metrics.UpdateDatasetVersion(provider, version)
	for listing, n := range ds.Counts() {
		metrics.UpdateDatasetRecords(listing, n)
	}
	return ds, nil
}
