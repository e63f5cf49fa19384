package ports

import (
	"time"
)

// WeatherConfig represents weather lookup configuration
type WeatherConfig struct {
	BaseURL         string
	DefaultAPIKey   string
	Timeout         time.Duration
	CacheTTL        time.Duration
	CoalesceFetches bool
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port          int
	RequireNonce  bool
	AdminEnabled  bool
	NonceLifetime time.Duration
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type      string
	RedisAddr string
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver string
}

// ConfigProvider defines the contract for configuration access
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetServerConfig() ServerConfig
	GetCacheConfig() CacheConfig
	GetDatabaseConfig() DatabaseConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
