package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"cv-intake/internal/cv"
)

const defaultCacheTTL = time.Hour

// EntityCache keeps recognized entities per resume snippet so re-parsing
// the same file does not call the provider again.
type EntityCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	entities []cv.Entity
	storedAt time.Time
}

func NewEntityCache(ttl time.Duration) *EntityCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &EntityCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns cached entities if present and not expired.
func (c *EntityCache) Get(snippet string) ([]cv.Entity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[cacheKey(snippet)]
	if !ok || c.now().Sub(entry.storedAt) > c.ttl {
		return nil, false
	}
	return entry.entities, true
}

func (c *EntityCache) Set(snippet string, entities []cv.Entity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(snippet)] = cacheEntry{entities: entities, storedAt: c.now()}
}

// CleanExpired drops stale entries and returns how many were removed.
func (c *EntityCache) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	now := c.now()
	for key, entry := range c.entries {
		if now.Sub(entry.storedAt) > c.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *EntityCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func cacheKey(snippet string) string {
	sum := sha256.Sum256([]byte(snippet))
	return hex.EncodeToString(sum[:])
}
