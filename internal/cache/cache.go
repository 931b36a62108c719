// Package cache is a small in-process TTL cache shared by segments that shell
// out to external tools. A statusline process is short-lived, but segments can
// hit the same data source more than once per refresh (branch and dirty state
// both talk to git), so caching still saves subprocess spawns.
package cache

import (
	"sync"
	"time"
)

// Cache provides thread-safe in-memory caching with TTL.
type Cache struct {
	mu    sync.RWMutex
	items map[string]item
}

type item struct {
	value     string
	expiresAt time.Time
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{items: make(map[string]item)}
}

// Get retrieves a value. The second return is false when the key is missing
// or its entry has expired.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, ok := c.items[key]
	if !ok {
		return "", false
	}
	if time.Now().After(it.expiresAt) {
		return "", false
	}
	return it.value, true
}

// Set stores a value with the given TTL.
func (c *Cache) Set(key, value string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = item{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// Delete removes a key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all items.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]item)
}

// Common TTLs.
const (
	GitTTL     = 2 * time.Second
	ProcessTTL = 2 * time.Second
)
