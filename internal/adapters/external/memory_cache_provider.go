package external

import (
	"context"
	"strings"
	"sync"
	"time"

	"weatherblock.app/internal/ports"
	"weatherblock.app/pkg/errors"
)

// sweepInterval is the minimum time between full scans for expired entries
const sweepInterval = time.Minute

// MemoryCacheProvider is a process-local CacheProvider with per-entry TTL.
// An expired entry is removed when it is read, and writes sweep every expired
// entry at most once per sweepInterval.
type MemoryCacheProvider struct {
	data      map[string]memoryCacheItem
	mutex     sync.RWMutex
	now       func() time.Time
	lastSweep time.Time
	stats     cacheStats
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return NewMemoryCacheProviderWithClock(time.Now)
}

// NewMemoryCacheProviderWithClock creates a store that reads time from now
func NewMemoryCacheProviderWithClock(now func() time.Time) *MemoryCacheProvider {
	return &MemoryCacheProvider{
		data:      make(map[string]memoryCacheItem),
		now:       now,
		lastSweep: now(),
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if exists && c.expired(item) {
		c.mutex.Lock()
		// a concurrent Set may have replaced the entry
		if current, ok := c.data[key]; ok && c.expired(current) {
			delete(c.data, key)
		}
		c.mutex.Unlock()
		exists = false
	}

	if !exists {
		c.stats.recordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.stats.recordHit()
	return item.data, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.now()
	if now.Sub(c.lastSweep) >= sweepInterval {
		c.sweepLocked()
		c.lastSweep = now
	}

	c.data[key] = memoryCacheItem{
		data:      value,
		expiresAt: now.Add(ttl),
	}

	return nil
}

func (c *MemoryCacheProvider) sweepLocked() {
	for key, item := range c.data {
		if c.expired(item) {
			delete(c.data, key)
		}
	}
}

// Delete removes key and reports whether a live entry was stored under it
func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	item, exists := c.data[key]
	delete(c.data, key)
	return exists && !c.expired(item), nil
}

// DeleteByPrefix removes every key starting with prefix and returns how many
// live entries were removed.
func (c *MemoryCacheProvider) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	if prefix == "" {
		return 0, errors.NewValidationError("cache key prefix cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	removed := 0
	for key, item := range c.data {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if !c.expired(item) {
			removed++
		}
		delete(c.data, key)
	}
	return removed, nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	return exists && !c.expired(item), nil
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	return c.stats.snapshot(c.now())
}

func (c *MemoryCacheProvider) expired(item memoryCacheItem) bool {
	return !c.now().Before(item.expiresAt)
}
