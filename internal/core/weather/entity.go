package weather

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"

	"weatherblock.app/internal/ports"
	"weatherblock.app/pkg/validation"
)

// CacheKeyPrefix namespaces every cache entry written by this package
const CacheKeyPrefix = "weather_block_"

// PlaceholderAPIKey is the sentinel shipped in sample configuration files
const PlaceholderAPIKey = "your_openweathermap_api_key_here"

// DefaultCacheTTL is how long a fetched record stays fresh
const DefaultCacheTTL = 15 * time.Minute

// Units is the unit system a lookup is performed in
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// IsValid reports whether u is a supported unit system
func (u Units) IsValid() bool {
	return u == UnitsMetric || u == UnitsImperial
}

// TemperatureSymbol returns the display suffix for temperatures in u
func (u Units) TemperatureSymbol() string {
	if u == UnitsImperial {
		return "°F"
	}
	return "°C"
}

// Query represents a request for current weather at a location
type Query struct {
	Location string
	Units    Units
}

// Validate checks the query in order: location first, then units
func (q Query) Validate() error {
	if !validation.IsNotEmpty(q.Location) {
		return NewInvalidLocationError()
	}
	if !q.Units.IsValid() {
		return NewInvalidUnitsError()
	}
	return nil
}

// CacheKey derives the cache entry name for the query. Location case and
// surrounding whitespace do not affect the key; units do.
func (q Query) CacheKey() string {
	normalized := strings.ToLower(strings.TrimSpace(q.Location)) + string(q.Units)
	sum := md5.Sum([]byte(normalized))
	return CacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Record is a normalized current-weather observation
type Record struct {
	Location    string
	Country     string
	Temperature float64
	Description string
	Icon        string
	Humidity    int
	Units       Units
	Timestamp   time.Time
}

// IconURL returns the provider-hosted image for the record's icon
func (r *Record) IconURL(size string) string {
	return ResolveIconURL(r.Icon, size)
}

// IsCredentialUsable reports whether key can be sent to the provider
func IsCredentialUsable(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != PlaceholderAPIKey
}

func (r *Record) toPorts() *ports.WeatherRecord {
	return &ports.WeatherRecord{
		Location:    r.Location,
		Country:     r.Country,
		Temperature: r.Temperature,
		Description: r.Description,
		Icon:        r.Icon,
		Humidity:    r.Humidity,
		Units:       string(r.Units),
		Timestamp:   r.Timestamp,
	}
}

func recordFromPorts(record *ports.WeatherRecord) *Record {
	return &Record{
		Location:    record.Location,
		Country:     record.Country,
		Temperature: record.Temperature,
		Description: record.Description,
		Icon:        record.Icon,
		Humidity:    record.Humidity,
		Units:       Units(record.Units),
		Timestamp:   record.Timestamp,
	}
}
