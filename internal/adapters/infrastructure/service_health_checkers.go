package infrastructure

import (
	"context"

	"weatherblock.app/internal/ports"
)

// CacheHealthChecker reports on the weather cache store. Stores without a
// remote connection are always healthy.
type CacheHealthChecker struct {
	cache  ports.CacheProvider
	config ports.CacheConfig
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cache ports.CacheProvider, config ports.CacheConfig) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, config: config}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    ports.StatusHealthy,
		Details:   map[string]interface{}{"type": c.config.Type},
	}
	if c.config.RedisAddr != "" {
		status.Details["addr"] = c.config.RedisAddr
	}

	if c.cache == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "cache is not available"
		return status
	}

	if pinger, ok := c.cache.(ports.Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = ports.StatusUnhealthy
			status.Error = err.Error()
			return status
		}
	}

	if withStats, ok := c.cache.(ports.CacheMetrics); ok {
		stats := withStats.GetStats()
		status.Details["hits"] = stats.Hits
		status.Details["misses"] = stats.Misses
		status.Details["hitRatio"] = stats.HitRatio
	}

	return status
}

// APIKeyStatus is implemented by the settings use case
type APIKeyStatus interface {
	IsAPIKeyConfigured(ctx context.Context) bool
}

// WeatherAPIHealthChecker reports whether lookups can reach the upstream
// API. No request is made; a missing API key degrades the service.
type WeatherAPIHealthChecker struct {
	keys     APIKeyStatus
	provider string
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(keys APIKeyStatus, provider string) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{keys: keys, provider: provider}
}

func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	configured := w.keys != nil && w.keys.IsAPIKeyConfigured(ctx)

	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    ports.StatusHealthy,
		Details: map[string]interface{}{
			"provider":      w.provider,
			"apiKeyPresent": configured,
		},
	}
	if !configured {
		status.Status = ports.StatusDegraded
		status.Error = "weather API key is not configured"
	}
	return status
}
