package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okian/alumnihub/internal/domain/model"
	"github.com/okian/alumnihub/pkg/logger"
)

// FileProvider serves a dataset read from a YAML file.
// The file is re-read when its modification time or size changes.
type FileProvider struct {
	path string

	mu      sync.Mutex // serializes reloads
	current atomic.Pointer[fileState]
	failed  atomic.Pointer[fileStamp] // last stamp that failed to load
}

type fileStamp struct {
	modTime time.Time
	size    int64
	missing bool
}

func stampOf(info os.FileInfo) fileStamp {
	return fileStamp{modTime: info.ModTime(), size: info.Size()}
}

func (s fileStamp) equal(o fileStamp) bool {
	return s.missing == o.missing && s.size == o.size && s.modTime.Equal(o.modTime)
}

type fileState struct {
	ds    *model.Dataset
	stamp fileStamp
}

// NewFileProvider loads path once so that a broken file fails at startup.
func NewFileProvider(path string) (*FileProvider, error) {
	p := &FileProvider{path: path}
	if _, err := p.Snapshot(context.Background()); err != nil {
		return nil, err
	}
	return p, nil
}

// Snapshot implements Provider.
func (p *FileProvider) Snapshot(ctx context.Context) (*model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stamp := fileStamp{missing: true}
	info, statErr := os.Stat(p.path)
	if statErr == nil {
		stamp = stampOf(info)
	}
	if ds, ok := p.cached(stamp); ok {
		return ds, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if ds, ok := p.cached(stamp); ok {
		return ds, nil
	}
	if statErr != nil {
		return p.stale(stamp, fmt.Errorf("%w: stat %s: %w", ErrLoadDataset, p.path, statErr))
	}

	start := time.Now()
	f, err := os.Open(p.path)
	if err != nil {
		return p.stale(stamp, fmt.Errorf("%w: open %s: %w", ErrLoadDataset, p.path, err))
	}
	defer f.Close()

	ds, err := ReadYAML(f)
	if err != nil {
		return p.stale(stamp, err)
	}
	ds, err = publish(SourceFile, ds, start)
	if err != nil {
		return p.stale(stamp, err)
	}
	p.current.Store(&fileState{ds: ds, stamp: stamp})
	p.failed.Store(nil)
	return ds, nil
}

// cached returns the current snapshot when stamp is the loaded file or the
// file that already failed to load.
func (p *FileProvider) cached(stamp fileStamp) (*model.Dataset, bool) {
	st := p.current.Load()
	if st == nil {
		return nil, false
	}
	if st.stamp.equal(stamp) {
		return st.ds, true
	}
	if f := p.failed.Load(); f != nil && f.equal(stamp) {
		return st.ds, true
	}
	return nil, false
}

// stale keeps serving the last good snapshot when a reload fails.
// The failure is logged once per file change.
func (p *FileProvider) stale(stamp fileStamp, err error) (*model.Dataset, error) {
	st := p.current.Load()
	if st == nil {
		return nil, err
	}
	p.failed.Store(&stamp)
	logger.Get().Warn(context.Background(), "dataset reload failed, serving previous snapshot",
		logger.String("path", p.path),
		logger.String("version", st.ds.Version),
		logger.Bool("missing", stamp.missing),
		logger.Error(err))
	return st.ds, nil
}

// Name implements Provider.
func (p *FileProvider) Name() string { return SourceFile }

// Close implements Provider.
func (p *FileProvider) Close() error { return nil }

// ReadYAML decodes a dataset document. Unknown keys are rejected.
func ReadYAML(r io.Reader) (*model.Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds model.Dataset
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDataset)
		}
		return nil, fmt.Errorf("%w: decode yaml: %w", ErrInvalidDataset, err)
	}
	return &ds, nil
}

// WriteYAML encodes ds as a dataset document readable by ReadYAML.
func WriteYAML(w io.Writer, ds *model.Dataset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
