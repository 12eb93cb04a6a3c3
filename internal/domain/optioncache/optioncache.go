// Package optioncache memoizes derived filter option sets per dataset version.
package optioncache

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"

	"github.com/okian/alumnihub/pkg/metrics"
)

const defaultMaxSize = 256

// Key identifies one option set: a categorical field of a listing in a given dataset version.
type Key struct {
	Version string
	Listing string
	Field   string
}

// Cache stores computed option sets.
type Cache interface {
	// GetOrCompute returns the cached options for key, computing and storing them on a miss.
	// The returned slice is owned by the caller.
	GetOrCompute(ctx context.Context, key Key, compute func() []string) []string

	// Len returns the number of cached option sets.
	Len() int64

	// Stats returns hit and miss counts since creation.
	Stats() (hits, misses int64)
}

type entry struct {
	key    Key
	values []string
}

// inMemoryCache keeps entries in insertion order and evicts the oldest when full.
// maxSize <= 0 disables eviction.
type inMemoryCache struct {
	mu      sync.Mutex
	entries map[Key]*list.Element
	order   *list.List // front = newest
	maxSize int

	size   atomic.Int64
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates an in-memory option cache.
func New(opts ...Option) Cache {
	c := &inMemoryCache{
		maxSize: defaultMaxSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.entries = make(map[Key]*list.Element)
	c.order = list.New()
	return c
}

func (c *inMemoryCache) GetOrCompute(_ context.Context, key Key, compute func() []string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.hits.Add(1)
		metrics.RecordOptionCacheHit(key.Listing)
		return clone(el.Value.(*entry).values)
	}

	c.misses.Add(1)
	metrics.RecordOptionCacheMiss(key.Listing)
	values := compute()

	if c.maxSize > 0 && c.order.Len() >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = c.order.PushFront(&entry{key: key, values: clone(values)})
	c.size.Store(int64(c.order.Len()))
	return values
}

// evictOldest drops the least recently inserted entry. Must be called with c.mu held.
func (c *inMemoryCache) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	c.order.Remove(el)
	delete(c.entries, el.Value.(*entry).key)
}

func (c *inMemoryCache) Len() int64 {
	return c.size.Load()
}

func (c *inMemoryCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
