// Package cache provides a mutex-guarded keyed cache. Geocode lookups hit a
// remote service with a per-request cost, so resolved queries are kept for
// the life of the session.
package cache

import "sync"

// Cache is a concurrency-safe map of K to V.
type Cache[K comparable, V any] struct {
	m       sync.Mutex
	entries map[K]V
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]V),
	}
}

// Get returns the cached value for key and whether it was present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set stores the value for key, replacing any previous value.
func (c *Cache[K, V]) Set(key K, value V) {
	c.m.Lock()
	defer c.m.Unlock()
	c.entries[key] = value
}

// Delete removes the value for key.
func (c *Cache[K, V]) Delete(key K) {
	c.m.Lock()
	defer c.m.Unlock()
	delete(c.entries, key)
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.m.Lock()
	defer c.m.Unlock()
	return len(c.entries)
}

// Reset drops all entries.
func (c *Cache[K, V]) Reset() {
	c.m.Lock()
	defer c.m.Unlock()
	c.entries = make(map[K]V)
}
