package external

import (
	"sync/atomic"
	"time"

	"weatherblock.app/internal/ports"
)

// cacheStats counts lookups for a cache store. Safe for concurrent use.
type cacheStats struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func (s *cacheStats) recordHit() {
	s.hits.Add(1)
}

func (s *cacheStats) recordMiss() {
	s.misses.Add(1)
}

func (s *cacheStats) snapshot(now time.Time) ports.CacheStats {
	hits := s.hits.Load()
	misses := s.misses.Load()

	total := hits + misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: now,
	}
}
