package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherblock.app/internal/ports"
	"weatherblock.app/pkg/errors"
)

// WeatherCacheAdapter bridges generic CacheProvider to weather-specific WeatherCache
type WeatherCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewWeatherCacheAdapter creates a weather cache adapter using generic cache provider
func NewWeatherCacheAdapter(cacheProvider ports.CacheProvider) *WeatherCacheAdapter {
	return &WeatherCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// Get retrieves a weather record from cache. A miss is a NotFound error.
func (w *WeatherCacheAdapter) Get(ctx context.Context, key string) (*ports.WeatherRecord, error) {
	data, err := w.cacheProvider.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var record ports.WeatherRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.NewExternalAPIError("failed to deserialize weather record", err)
	}

	return &record, nil
}

// Set stores a weather record in cache
func (w *WeatherCacheAdapter) Set(ctx context.Context, key string, record *ports.WeatherRecord, ttl time.Duration) error {
	if record == nil {
		return errors.NewValidationError("weather record cannot be nil")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return errors.NewExternalAPIError("failed to serialize weather record", err)
	}

	return w.cacheProvider.Set(ctx, key, data, ttl)
}

func (w *WeatherCacheAdapter) Delete(ctx context.Context, key string) (bool, error) {
	return w.cacheProvider.Delete(ctx, key)
}

func (w *WeatherCacheAdapter) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	return w.cacheProvider.DeleteByPrefix(ctx, prefix)
}
