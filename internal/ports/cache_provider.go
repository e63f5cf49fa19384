package ports

import (
	"context"
	"time"
)

// CacheProvider defines the contract for caching operations.
// Get reports a miss as a NotFound AppError.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	TotalOps    int64     `json:"totalOps"`
	HitRatio    float64   `json:"hitRatio"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// CacheMetrics defines the contract for cache performance tracking
type CacheMetrics interface {
	GetStats() CacheStats
}

// Pinger is implemented by cache backends that hold a remote connection
type Pinger interface {
	Ping(ctx context.Context) error
}
