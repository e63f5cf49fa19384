package infrastructure

import (
	"weatherblock.app/internal/config"
	"weatherblock.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherConfig returns weather lookup configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		BaseURL:         c.config.Weather.BaseURL,
		DefaultAPIKey:   c.config.Weather.APIKey,
		Timeout:         c.config.Weather.Timeout(),
		CacheTTL:        c.config.Weather.CacheTTL(),
		CoalesceFetches: c.config.Weather.CoalesceFetches,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:          c.config.Server.Port,
		RequireNonce:  c.config.Server.RequireNonce,
		AdminEnabled:  c.config.Server.AdminToken != "",
		NonceLifetime: c.config.Server.NonceLifetime(),
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	cacheConfig := ports.CacheConfig{Type: c.config.Cache.Type.String()}
	if c.config.Cache.Type == config.CacheTypeRedis {
		cacheConfig.RedisAddr = c.config.Cache.Redis.Addr
	}
	return cacheConfig
}

// GetDatabaseConfig returns database configuration
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	return ports.DatabaseConfig{
		Driver: string(c.config.Database.Driver),
	}
}
