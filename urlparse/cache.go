/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package urlparse

import (
	"sync"
	"sync/atomic"
)

// AuthorityCache remembers the most recently parsed left segment and its
// Authority. It holds at most one entry, which every miss overwrites, and it
// only answers for a key that is exactly equal to the stored one.
//
// An AuthorityCache is safe for concurrent use. Parsers sharing a cache from
// several goroutines still get correct results because an Authority is a pure
// function of its key; contention only lowers the hit rate.
type AuthorityCache struct {
	mu        sync.Mutex
	key       string
	authority Authority
	filled    bool

	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats is a snapshot of an AuthorityCache's counters.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

// NewAuthorityCache returns an empty cache.
func NewAuthorityCache() *AuthorityCache {
	return &AuthorityCache{}
}

// Lookup returns the stored Authority if key equals the stored key.
func (c *AuthorityCache) Lookup(key string) (Authority, bool) {
	c.mu.Lock()
	a, ok := c.authority, c.filled && c.key == key
	c.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		return Authority{}, false
	}
	c.hits.Add(1)
	return a, true
}

// Store replaces the cached entry.
func (c *AuthorityCache) Store(key string, a Authority) {
	c.mu.Lock()
	c.key, c.authority, c.filled = key, a, true
	c.mu.Unlock()
}

// Reset empties the cache and zeroes its counters.
func (c *AuthorityCache) Reset() {
	c.mu.Lock()
	c.key, c.authority, c.filled = "", Authority{}, false
	c.mu.Unlock()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns the number of lookups that hit and missed since creation or
// the last Reset.
func (c *AuthorityCache) Stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
