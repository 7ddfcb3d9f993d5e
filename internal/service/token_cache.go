// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Acha Bill

package service

import (
	"sync"
	"time"

	"github.com/achabill/blog/models"
)

// tokenCacheEntry is an immutable snapshot of a successful token resolution.
// Entries are written once and removed only by expiry.
type tokenCacheEntry struct {
	user      models.User
	expiresAt time.Time
}

// tokenCache caches successful token resolutions keyed by the raw token
// string, so high-frequency authenticated calls do not hit user storage on
// every request.
//
// The cache is shared read/write across all concurrent requests. Entries are
// write-once (insert-if-absent) and expire lazily on read, so no locking
// discipline beyond the RWMutex is required. There is no invalidation on
// user mutation: a cached identity can be stale for up to the TTL.
type tokenCache struct {
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]tokenCacheEntry
}

func newTokenCache(ttl time.Duration) *tokenCache {
	return &tokenCache{
		ttl:     ttl,
		entries: make(map[string]tokenCacheEntry),
	}
}

// get returns the cached user for the given raw token, if present and not
// expired. Expired entries are removed on the spot.
func (c *tokenCache) get(token string) (models.User, bool) {
	c.mu.RLock()
	entry, ok := c.entries[token]
	c.mu.RUnlock()

	if !ok {
		return models.User{}, false
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; another goroutine may have
		// already removed the entry.
		if current, stillThere := c.entries[token]; stillThere && time.Now().After(current.expiresAt) {
			delete(c.entries, token)
		}
		c.mu.Unlock()
		return models.User{}, false
	}

	return entry.user, true
}

// putIfAbsent stores a resolution result unless an entry for the token is
// already present. Existing entries are never updated in place.
func (c *tokenCache) putIfAbsent(token string, user models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[token]; ok {
		return
	}

	c.entries[token] = tokenCacheEntry{
		user:      user,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// len reports the number of entries currently held, expired or not.
func (c *tokenCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
