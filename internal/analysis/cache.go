package analysis

import (
	"sync"
	"time"
)

// DefaultCacheTTL bounds how stale a cached analysis may be. Writes do
// not invalidate; a saved record shows up in analysis once the window
// rolls over, or sooner if the caller clears the cache.
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	value      interface{}
	insertedAt time.Time
}

// ResultCache memoizes analysis results under string keys for a fixed
// TTL. It is a flat, unbounded map guarded by one mutex; reads past
// expiry evict the entry and report a miss.
type ResultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

// NewResultCache creates a cache with the given TTL. A zero ttl uses
// DefaultCacheTTL.
func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResultCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached value for key, or false when absent or expired.
func (c *ResultCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.insertedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Set stores value under key, restarting its TTL window.
func (c *ResultCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, insertedAt: c.now()}
}

// Clear drops every cached entry.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
