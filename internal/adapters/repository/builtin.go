package repository

import (
	"context"
	"time"

	"github.com/okian/alumnihub/internal/domain/model"
)

// Builtin serves the bundled site content.
type Builtin struct {
	ds *model.Dataset
}

// NewBuiltin validates and fingerprints the bundled dataset once.
func NewBuiltin() (*Builtin, error) {
	ds, err := publish(SourceBuiltin, builtinDataset(), time.Now())
	if err != nil {
		return nil, err
	}
	return &Builtin{ds: ds}, nil
}

// BuiltinDataset returns a private copy of the bundled content, without a version.
func BuiltinDataset() *model.Dataset {
	return builtinDataset()
}

// Snapshot implements Provider.
func (b *Builtin) Snapshot(ctx context.Context) (*model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b.ds, nil
}

// Name implements Provider.
func (b *Builtin) Name() string { return SourceBuiltin }

// Close implements Provider.
func (b *Builtin) Close() error { return nil }
