package app

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
	"weatherblock.app/internal/adapters/database"
	"weatherblock.app/internal/adapters/external"
	"weatherblock.app/internal/adapters/infrastructure"
	"weatherblock.app/internal/config"
	"weatherblock.app/internal/ports"
)

// Version is reported in the upstream User-Agent
var Version = "0.1.0"

type DependencyContainer struct {
	config   *config.Config
	db       *gorm.DB
	registry *prometheus.Registry
	ports    *ports.ApplicationPorts

	// closers run in order on Cleanup
	closers []io.Closer
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:   cfg,
		registry: prometheus.NewRegistry(),
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", c.config.Database.Driver)

	db, err := database.Open(c.config.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	var logger ports.Logger = &infrastructure.SlogLoggerAdapter{}
	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	var provider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		BaseURL:   c.config.Weather.BaseURL,
		Timeout:   c.config.Weather.Timeout(),
		UserAgent: "WeatherBlock/" + Version,
		Logger:    logger,
	})

	// Upstream calls go to a dedicated JSON log file when enabled
	if c.config.Weather.EnableLogging {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
			provider = external.NewWeatherProviderLoggingDecorator(provider, logger)
		} else {
			c.closers = append(c.closers, fileLogger)
			provider = external.NewWeatherProviderLoggingDecorator(provider, fileLogger)
			slog.Info("Weather API logging enabled", "path", c.config.Weather.LogFilePath)
		}
	}

	cacheProvider, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	if closer, ok := cacheProvider.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}
	slog.Info("Cache provider initialized", "type", c.config.Cache.Type.String())

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	weatherMetrics := infrastructure.NewPrometheusWeatherMetrics(c.registry)

	cacheMetrics, _ := cacheProvider.(ports.CacheMetrics)
	if cacheMetrics != nil {
		c.registry.MustRegister(infrastructure.NewCacheStatsCollector(cacheMetrics, c.config.Cache.Type.String()))
	}

	nonces, err := c.newNonceManager(configProvider.GetServerConfig().NonceLifetime)
	if err != nil {
		return fmt.Errorf("create nonce manager: %w", err)
	}

	c.ports = &ports.ApplicationPorts{
		WeatherProvider:  provider,
		WeatherCache:     external.NewWeatherCacheAdapter(cacheProvider),
		WeatherMetrics:   weatherMetrics,
		OptionRepository: database.NewOptionRepositoryAdapter(c.db),
		CacheProvider:    cacheProvider,
		CacheMetrics:     cacheMetrics,
		TextSanitizer:    infrastructure.NewTextSanitizerAdapter(),
		NonceManager:     nonces,
		ConfigProvider:   configProvider,
		Logger:           logger,
		Database:         c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// newNonceManager signs with the configured secret. Without one a random
// secret is generated, so nonces do not survive a restart.
func (c *DependencyContainer) newNonceManager(lifetime time.Duration) (*infrastructure.NonceManager, error) {
	secret := c.config.Server.NonceSecret
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("generate nonce secret: %w", err)
		}
		secret = hex.EncodeToString(buf)
		slog.Warn("SERVER_NONCE_SECRET is not set, using a random secret; nonces are invalidated on restart")
	}
	return infrastructure.NewNonceManager(secret, lifetime, nil)
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// MetricsHandler serves the container's Prometheus registry
func (c *DependencyContainer) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Cleanup releases the cache connection, the log file and the database
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	if c.db != nil {
		if err := database.Close(c.db); err != nil && firstErr == nil {
			firstErr = err
		}
		c.db = nil
	}
	return firstErr
}
