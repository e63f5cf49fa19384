package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherblock.app/internal/adapters/api"
	"weatherblock.app/internal/adapters/database"
	"weatherblock.app/internal/adapters/infrastructure"
	"weatherblock.app/internal/config"
	"weatherblock.app/internal/core/settings"
	"weatherblock.app/internal/core/weather"
	"weatherblock.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase  *weather.UseCase
	settingsUseCase *settings.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

// NewApplication wires every dependency described by cfg
func NewApplication(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies builds the application on an existing
// container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	resolver, err := settings.NewCredentialResolver(a.ports.OptionRepository, a.ports.ConfigProvider, a.ports.Logger)
	if err != nil {
		return fmt.Errorf("create credential resolver: %w", err)
	}

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider:    a.ports.WeatherProvider,
		Cache:       a.ports.WeatherCache,
		Credentials: resolver,
		Sanitizer:   a.ports.TextSanitizer,
		Config:      a.ports.ConfigProvider,
		Logger:      a.ports.Logger,
		Metrics:     a.ports.WeatherMetrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	settingsUseCase, err := settings.NewUseCase(settings.UseCaseDependencies{
		Options:  a.ports.OptionRepository,
		Resolver: resolver,
		Lookup:   weatherUseCase,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create settings use case: %w", err)
	}
	a.settingsUseCase = settingsUseCase

	if !settingsUseCase.IsAPIKeyConfigured(context.Background()) {
		slog.Warn("Weather API key is not configured; lookups fail until one is set")
	}

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	configProvider := a.ports.ConfigProvider
	serverConfig := configProvider.GetServerConfig()

	databaseHealth := infrastructure.NewDatabaseHealthChecker(a.deps.Database(),
		configProvider.GetDatabaseConfig().Driver, database.OptionModel{}.TableName())
	cacheHealth := infrastructure.NewCacheHealthChecker(a.ports.CacheProvider, configProvider.GetCacheConfig())
	weatherAPIHealth := infrastructure.NewWeatherAPIHealthChecker(a.settingsUseCase, a.ports.WeatherProvider.GetProviderName())

	healthChecker := infrastructure.NewSystemHealthChecker(map[string]ports.HealthChecker{
		"database":   databaseHealth,
		"cache":      cacheHealth,
		"weatherAPI": weatherAPIHealth,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			AdminToken:   a.config.Server.AdminToken,
			RequireNonce: serverConfig.RequireNonce,
		},
		WeatherUseCase:  a.weatherUseCase,
		SettingsUseCase: a.settingsUseCase,
		NonceManager:    a.ports.NonceManager,
		HealthChecker:   healthChecker,
		MetricsHandler:  a.deps.MetricsHandler(),
		Logger:          a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	if !serverConfig.AdminEnabled {
		slog.Warn("SERVER_ADMIN_TOKEN is not set; admin routes are disabled")
	}

	a.router = httpAdapter.GetRouter()
	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", serverConfig.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP until the server is shut down
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server, optionally purges the weather cache and
// releases all resources.
func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	var shutdownErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if a.config.Weather.PurgeCacheOnShutdown {
		if removed, err := a.weatherUseCase.ClearAllCache(ctx); err != nil {
			slog.Warn("Failed to purge weather cache", "error", err)
		} else {
			slog.Info("Weather cache purged", "removed", removed)
		}
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return shutdownErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}

// GetSettingsUseCase returns the settings use case for testing
func (a *Application) GetSettingsUseCase() *settings.UseCase {
	return a.settingsUseCase
}
