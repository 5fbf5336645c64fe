package storage

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedDoc wraps a raw JSON document with version metadata for cache invalidation
type cachedDoc struct {
	Version  string
	Raw      []byte
	CachedAt time.Time
}

// docCache provides an in-memory LRU cache for raw store documents
// with time-based expiration and version-based invalidation to prevent stale data.
type docCache struct {
	lru *expirable.LRU[string, *cachedDoc]
}

// newDocCache creates a new document cache with the specified size and TTL.
func newDocCache(size int, ttl time.Duration) *docCache {
	return &docCache{
		lru: expirable.NewLRU[string, *cachedDoc](size, nil, ttl),
	}
}

// Get retrieves a document from the cache.
// Returns (raw, true) if found and version matches.
// Automatically invalidates entries with mismatched versions.
func (c *docCache) Get(key string) ([]byte, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}

	return entry.Raw, true
}

// Set stores a document in the cache with current schema version.
func (c *docCache) Set(key string, raw []byte) {
	c.lru.Add(key, &cachedDoc{
		Version:  CacheSchemaVersion,
		Raw:      raw,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a document from the cache.
func (c *docCache) Invalidate(key string) {
	c.lru.Remove(key)
}

// Clear removes all entries from the cache.
func (c *docCache) Clear() {
	c.lru.Purge()
}
