package ports

import (
	"context"
	"time"
)

// WeatherRecord is the cached representation of a normalized weather lookup
type WeatherRecord struct {
	Location    string    `json:"location"`
	Country     string    `json:"country"`
	Temperature float64   `json:"temperature"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Humidity    int       `json:"humidity"`
	Units       string    `json:"units"`
	Timestamp   time.Time `json:"timestamp"`
}

// WeatherFetchParams describes a single upstream current-weather request
type WeatherFetchParams struct {
	Location string
	Units    string
	APIKey   string
}

// WeatherProvider performs the upstream HTTP call and returns the raw
// response body. Only transport failures are reported as errors; decoding
// and validating the body is left to the caller.
type WeatherProvider interface {
	FetchCurrentWeather(ctx context.Context, params WeatherFetchParams) ([]byte, error)
	GetProviderName() string
}

// WeatherCache defines the contract for caching weather records
type WeatherCache interface {
	Get(ctx context.Context, key string) (*WeatherRecord, error)
	Set(ctx context.Context, key string, record *WeatherRecord, ttl time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
}

// Upstream call outcomes reported to WeatherMetrics
const (
	UpstreamOutcomeSuccess         = "success"
	UpstreamOutcomeTransportError  = "transport_error"
	UpstreamOutcomeEmptyResponse   = "empty_response"
	UpstreamOutcomeAPIError        = "api_error"
	UpstreamOutcomeInvalidResponse = "invalid_response"
)

// WeatherMetrics records lookup telemetry
type WeatherMetrics interface {
	RecordCacheHit()
	RecordCacheMiss()
	RecordUpstreamCall(outcome string, duration time.Duration)
}
