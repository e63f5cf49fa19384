// Package api provides the HTTP adapter for the weather block service.
// Handlers translate REST requests into use case calls and map application
// errors onto the {code, message, httpStatus} error body.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherblock.app/internal/core/settings"
	"weatherblock.app/internal/core/weather"
	"weatherblock.app/internal/ports"
	"weatherblock.app/pkg/errors"
)

const (
	// Namespace prefixes every block route
	Namespace = "/wp-json/weather-block/v1"

	// NonceAction is the action weather lookups are authorized for
	NonceAction = "wp_rest"

	NonceHeader     = "X-WP-Nonce"
	RequestIDHeader = "X-Request-ID"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	// AdminToken guards the admin routes. Empty disables them.
	AdminToken   string
	RequireNonce bool
}

// HTTPServerAdapter implements the REST surface using Gin
type HTTPServerAdapter struct {
	router          *gin.Engine
	config          ServerConfig
	weatherUseCase  WeatherUseCase
	settingsUseCase SettingsUseCase
	renderer        *BlockRenderer
	nonces          ports.NonceManager
	health          ports.SystemHealthChecker
	metricsHandler  http.Handler
	logger          ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type WeatherUseCase interface {
	GetWeatherData(ctx context.Context, location string, units weather.Units) (*weather.Record, error)
	ClearCache(ctx context.Context, location string, units weather.Units) (bool, error)
	ClearAllCache(ctx context.Context) (int, error)
}

type SettingsUseCase interface {
	Status(ctx context.Context) settings.Status
	SaveAPIKey(ctx context.Context, raw string) error
	TestAPIKey(ctx context.Context) (*settings.TestResult, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config          ServerConfig
	WeatherUseCase  WeatherUseCase
	SettingsUseCase SettingsUseCase
	NonceManager    ports.NonceManager
	HealthChecker   ports.SystemHealthChecker
	MetricsHandler  http.Handler
	Logger          ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	renderer, err := NewBlockRenderer(opts.WeatherUseCase)
	if err != nil {
		return nil, fmt.Errorf("create block renderer: %w", err)
	}

	server := &HTTPServerAdapter{
		router:          gin.New(),
		config:          opts.Config,
		weatherUseCase:  opts.WeatherUseCase,
		settingsUseCase: opts.SettingsUseCase,
		renderer:        renderer,
		nonces:          opts.NonceManager,
		health:          opts.HealthChecker,
		metricsHandler:  opts.MetricsHandler,
		logger:          opts.Logger,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.SettingsUseCase == nil {
		return errors.NewValidationError("settings use case is required")
	}
	if opts.NonceManager == nil {
		return errors.NewValidationError("nonce manager is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.Use(gin.Recovery(), requestIDMiddleware(), s.requestLogger())

	v1 := s.router.Group(Namespace)
	{
		v1.GET("/weather/:location", s.getWeather)
		v1.GET("/render", s.renderBlock)
	}

	admin := v1.Group("", s.requireAdmin())
	{
		admin.POST("/nonce", s.createNonce)
		admin.GET("/settings", s.getSettings)
		admin.PUT("/settings/api-key", s.saveAPIKey)
		admin.POST("/settings/test", s.testAPIKey)
		admin.DELETE("/cache", s.clearAllCache)
		admin.DELETE("/cache/:location", s.clearCache)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// GetRouter returns the router to be served by the application
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
