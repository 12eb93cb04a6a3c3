package optioncache

// Option applies a configuration option to the in-memory cache.
type Option func(*inMemoryCache)

// WithMaxSize bounds the number of cached option sets.
// If maxSize <= 0 the cache is unbounded.
func WithMaxSize(maxSize int) Option {
	return func(c *inMemoryCache) {
		c.maxSize = maxSize
	}
}
