// Package freshness implements the ingestion core's freshness gate: an
// in-memory LRU of the latest timestamp seen per (entity, event kind), and
// a persistent sentinel-lock + conditional-upsert guard backing it so the
// gate survives process restarts and holds under concurrent writers.
package freshness

import (
	"container/list"
	"sync"
	"time"
)

// DefaultCacheSize is the number of (entity, event) keys the in-memory
// cache retains before evicting the least recently touched entry.
const DefaultCacheSize = 10000

type cacheEntry struct {
	key       string
	timestamp string
}

// Cache is a bounded, thread-safe least-recently-used map from
// "entityKind|pk-json|event" to the newest timestamp observed for that key.
// It is consulted before any database work, so a clearly stale event never
// touches Postgres.
type Cache struct {
	mu       sync.Mutex
	maxSize  int
	order    *list.List
	elements map[string]*list.Element
}

// NewCache builds a Cache bounded at maxSize entries. A non-positive
// maxSize falls back to DefaultCacheSize.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &Cache{
		maxSize:  maxSize,
		order:    list.New(),
		elements: make(map[string]*list.Element, maxSize),
	}
}

// IsNewerAndUpdate reports whether timestamp is newer than the cached
// value for key, updating the cache to timestamp if so. A key seen for the
// first time is always newer. A timestamp that fails to parse as RFC 3339
// (on either side of the comparison) is conservatively treated as newer,
// since rejecting a malformed-but-possibly-valid update would silently
// drop data the upstream event actually carried.
func (c *Cache) IsNewerAndUpdate(key, timestamp string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.elements[key]
	if !ok {
		el = c.order.PushBack(&cacheEntry{key: key, timestamp: timestamp})
		c.elements[key] = el
		c.evictIfNeeded()
		return true
	}

	c.order.MoveToBack(el)
	entry := el.Value.(*cacheEntry)

	cachedTime, cachedErr := time.Parse(time.RFC3339, entry.timestamp)
	newTime, newErr := time.Parse(time.RFC3339, timestamp)
	if cachedErr != nil || newErr != nil || newTime.After(cachedTime) {
		entry.timestamp = timestamp
		return true
	}

	return false
}

func (c *Cache) evictIfNeeded() {
	for c.order.Len() > c.maxSize {
		oldest := c.order.Front()
		if oldest == nil {
			return
		}
		c.order.Remove(oldest)
		delete(c.elements, oldest.Value.(*cacheEntry).key)
	}
}

// Len returns the number of keys currently cached, for tests and metrics.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
