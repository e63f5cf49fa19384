package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"weatherblock.app/internal/ports"
	"weatherblock.app/pkg/errors"
)

type UseCase struct {
	provider    ports.WeatherProvider
	cache       ports.WeatherCache
	credentials ports.CredentialProvider
	sanitizer   ports.TextSanitizer
	config      ports.ConfigProvider
	logger      ports.Logger
	metrics     ports.WeatherMetrics
	clock       func() time.Time
	fetches     singleflight.Group
}

type UseCaseDependencies struct {
	Provider    ports.WeatherProvider
	Cache       ports.WeatherCache
	Credentials ports.CredentialProvider
	Sanitizer   ports.TextSanitizer
	Config      ports.ConfigProvider
	Logger      ports.Logger
	Metrics     ports.WeatherMetrics
	// Clock defaults to time.Now
	Clock func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Credentials == nil {
		return nil, errors.NewValidationError("credential provider is required")
	}
	if deps.Sanitizer == nil {
		return nil, errors.NewValidationError("text sanitizer is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		provider:    deps.Provider,
		cache:       deps.Cache,
		credentials: deps.Credentials,
		sanitizer:   deps.Sanitizer,
		config:      deps.Config,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
		clock:       clock,
	}, nil
}

// GetWeatherData returns the current weather for location, served from cache
// while fresh. Inputs are validated before the cache or provider is touched.
func (uc *UseCase) GetWeatherData(ctx context.Context, location string, units Units) (*Record, error) {
	query := Query{Location: location, Units: units}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	apiKey := strings.TrimSpace(uc.credentials.APIKey(ctx))
	if !IsCredentialUsable(apiKey) {
		return nil, NewMissingAPIKeyError()
	}

	key := query.CacheKey()
	if record := uc.lookupCache(ctx, key); record != nil {
		return record, nil
	}

	cfg := uc.config.GetWeatherConfig()
	if !cfg.CoalesceFetches {
		return uc.fetchAndStore(ctx, query, apiKey, key)
	}

	// The shared fetch outlives any single caller; each caller stops
	// waiting when its own context ends.
	results := uc.fetches.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := detachedContext(ctx, cfg.Timeout)
		defer cancel()
		return uc.fetchAndStore(fetchCtx, query, apiKey, key)
	})

	select {
	case <-ctx.Done():
		uc.logger.Warn("Weather lookup abandoned while waiting for shared fetch",
			ports.F("cache_key", key),
			ports.F("error", ctx.Err().Error()))
		return nil, NewUpstreamFetchFailedError()
	case res := <-results:
		if res.Shared {
			uc.logger.Debug("Shared in-flight weather fetch", ports.F("cache_key", key))
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Record), nil
	}
}

func detachedContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx := context.WithoutCancel(parent)
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// ClearCache removes the cached record for location and units and reports
// whether one existed.
func (uc *UseCase) ClearCache(ctx context.Context, location string, units Units) (bool, error) {
	query := Query{Location: location, Units: units}
	if err := query.Validate(); err != nil {
		return false, err
	}

	existed, err := uc.cache.Delete(ctx, query.CacheKey())
	if err != nil {
		return false, fmt.Errorf("clear weather cache entry: %w", err)
	}

	uc.logger.Info("Weather cache entry cleared",
		ports.F("location", strings.TrimSpace(location)),
		ports.F("units", string(units)),
		ports.F("existed", existed))
	return existed, nil
}

// ClearAllCache removes every cached weather record and returns how many
// were removed. Entries outside the weather namespace are not touched.
func (uc *UseCase) ClearAllCache(ctx context.Context) (int, error) {
	removed, err := uc.cache.DeleteByPrefix(ctx, CacheKeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("clear weather cache: %w", err)
	}

	uc.logger.Info("Weather cache cleared", ports.F("removed", removed))
	return removed, nil
}

func (uc *UseCase) lookupCache(ctx context.Context, key string) *Record {
	cached, err := uc.cache.Get(ctx, key)
	if err == nil && cached != nil {
		uc.metrics.RecordCacheHit()
		uc.logger.Debug("Weather found in cache", ports.F("cache_key", key))
		return recordFromPorts(cached)
	}

	uc.metrics.RecordCacheMiss()
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Warn("Weather cache read failed, treating as miss",
			ports.F("cache_key", key),
			ports.F("error", err.Error()))
	}
	return nil
}

func (uc *UseCase) fetchAndStore(ctx context.Context, query Query, apiKey, key string) (*Record, error) {
	location := strings.TrimSpace(query.Location)
	startTime := time.Now()

	body, err := uc.provider.FetchCurrentWeather(ctx, ports.WeatherFetchParams{
		Location: location,
		Units:    string(query.Units),
		APIKey:   apiKey,
	})
	duration := time.Since(startTime)
	if err != nil {
		uc.metrics.RecordUpstreamCall(ports.UpstreamOutcomeTransportError, duration)
		uc.logger.Error("Weather API request failed",
			ports.F("location", location),
			ports.F("error", err.Error()))
		return nil, NewUpstreamFetchFailedError()
	}

	data, rej := decodePayload(body)
	if rej == nil {
		var record *Record
		record, rej = normalizePayload(data, query.Units, uc.sanitizer.Sanitize, uc.clock())
		if rej == nil {
			uc.metrics.RecordUpstreamCall(ports.UpstreamOutcomeSuccess, duration)
			uc.store(ctx, key, record)
			return record, nil
		}
	}

	uc.metrics.RecordUpstreamCall(rej.outcome, duration)
	uc.logger.Error("Weather API response rejected",
		ports.F("location", location),
		ports.F("code", rej.err.Code),
		ports.F("reason", rej.reason))
	return nil, rej.err
}

func (uc *UseCase) store(ctx context.Context, key string, record *Record) {
	ttl := uc.config.GetWeatherConfig().CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	if err := uc.cache.Set(ctx, key, record.toPorts(), ttl); err != nil {
		uc.logger.Warn("Failed to cache weather data",
			ports.F("cache_key", key),
			ports.F("error", err.Error()))
	}
}
