package appointments

import (
	"clinicsync-service/internal/app/contracts"
	"clinicsync-service/internal/app/models"
	"context"
	"sync"
	"time"
)

const DefaultCacheLifetime = 3 * time.Minute

// staleRetentionFactor bounds how long a stale entry stays servable for
// stale-while-revalidate before being dropped outright.
const staleRetentionFactor = 6

type cacheEntry struct {
	page      *models.AppointmentPage
	fetchedAt time.Time
}

type memoryResultCache struct {
	lifetime time.Duration
	now      func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewMemoryResultCache builds the in-process result cache. Entries younger
// than the lifetime are fresh; older ones are still returned (not fresh) until
// the retention window runs out.
func NewMemoryResultCache(lifetime time.Duration) contracts.ResultCache {
	return newMemoryResultCache(lifetime, time.Now)
}

func newMemoryResultCache(lifetime time.Duration, now func() time.Time) *memoryResultCache {
	if lifetime <= 0 {
		lifetime = DefaultCacheLifetime
	}
	return &memoryResultCache{
		lifetime: lifetime,
		now:      now,
		entries:  make(map[string]cacheEntry),
	}
}

func (c *memoryResultCache) Get(_ context.Context, key string) (*models.AppointmentPage, bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, false
	}

	age := c.now().Sub(entry.fetchedAt)
	if age >= c.lifetime*staleRetentionFactor {
		delete(c.entries, key)
		return nil, false, false
	}
	return entry.page, age < c.lifetime, true
}

func (c *memoryResultCache) Set(_ context.Context, key string, page *models.AppointmentPage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{page: page, fetchedAt: c.now()}
}
