// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package viewcache

import (
	"sync"
	"time"
)

// ListingKey caches the public poll listing.
const ListingKey = "polls"

// PollKey returns the cache key for one poll's detail view.
func PollKey(pollID string) string {
	return "poll:" + pollID
}

type entry struct {
	body    []byte
	expires time.Time
}

// Cache is an in-process TTL cache for rendered view payloads. Mutations
// invalidate the affected keys; reads fall through to the database on miss.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, entries: map[string]entry{}}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.body, true
}

func (c *Cache) Set(key string, body []byte) {
	c.mu.Lock()
	c.entries[key] = entry{body: body, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.mu.Unlock()
}
