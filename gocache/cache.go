// Package gocache implements cdpagent.DocumentCache on top of
// patrickmn/go-cache.
package gocache

import (
	"time"

	"github.com/patrickmn/go-cache"
	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

// DefaultTTL is how long a fetched documentation page stays fresh.
const DefaultTTL = 24 * time.Hour

// Ensure Cache implements cdpagent.DocumentCache at compile time.
var _ cdpagent.DocumentCache = (*Cache)(nil)

// Cache stores extracted documentation text keyed by URL. The janitor is
// disabled: entries past their TTL are skipped on Get and overwritten by
// the next Set, never actively evicted.
type Cache struct {
	c *cache.Cache
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides DefaultTTL.
func WithTTL(d time.Duration) Option {
	return func(c *Cache) {
		c.c = cache.New(d, 0)
	}
}

// New creates a new Cache.
func New(opts ...Option) *Cache {
	c := &Cache{c: cache.New(DefaultTTL, 0)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached text for url if present and fresh.
func (c *Cache) Get(url string) (string, bool) {
	v, ok := c.c.Get(url)
	if !ok {
		return "", false
	}
	text, ok := v.(string)
	return text, ok
}

// Set stores text under url, resetting its age.
func (c *Cache) Set(url, text string) {
	c.c.Set(url, text, cache.DefaultExpiration)
}
