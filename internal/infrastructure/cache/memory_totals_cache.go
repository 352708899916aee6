package cache

import (
	"context"
	"time"

	"github.com/erp/pricing/internal/domain/pricing"
	gocache "github.com/patrickmn/go-cache"
)

// MemoryTotalsCache keeps totals snapshots in process memory.
// Suitable for single-instance deployments and tests.
type MemoryTotalsCache struct {
	store *gocache.Cache
}

// NewMemoryTotalsCache creates an in-memory cache. Expired entries are
// swept every cleanupInterval.
func NewMemoryTotalsCache(defaultTTL, cleanupInterval time.Duration) *MemoryTotalsCache {
	return &MemoryTotalsCache{store: gocache.New(defaultTTL, cleanupInterval)}
}

// Get returns the cached snapshot for key, if present
func (c *MemoryTotalsCache) Get(_ context.Context, key string) (pricing.DocumentTotals, bool, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return pricing.DocumentTotals{}, false, nil
	}
	totals, ok := v.(pricing.DocumentTotals)
	if !ok {
		c.store.Delete(key)
		return pricing.DocumentTotals{}, false, nil
	}
	return totals, true, nil
}

// Set stores a snapshot. A zero ttl uses the cache default.
func (c *MemoryTotalsCache) Set(_ context.Context, key string, totals pricing.DocumentTotals, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, totals, ttl)
	return nil
}

// Len returns the number of entries, including expired ones not yet swept
func (c *MemoryTotalsCache) Len() int {
	return c.store.ItemCount()
}

// Flush removes every entry
func (c *MemoryTotalsCache) Flush() {
	c.store.Flush()
}

var _ pricing.TotalsCache = (*MemoryTotalsCache)(nil)
