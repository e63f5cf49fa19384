package external

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weatherblock.app/internal/ports"
	"weatherblock.app/pkg/errors"
)

const (
	defaultOpenWeatherMapURL = "https://api.openweathermap.org/data/2.5/weather"
	defaultRequestTimeout    = 10 * time.Second
	// maxResponseBytes bounds how much of an upstream body is read
	maxResponseBytes = 1 << 20
)

// OpenWeatherMapProviderAdapter implements WeatherProvider port for the
// OpenWeatherMap current weather endpoint. It returns the raw response body;
// interpreting it is left to the weather use case.
type OpenWeatherMapProviderAdapter struct {
	baseURL   string
	userAgent string
	client    HTTPClient
	logger    ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Logger    ports.Logger
	// Client overrides the default *http.Client
	Client HTTPClient
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapURL
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapProviderAdapter{
		baseURL:   baseURL,
		userAgent: params.UserAgent,
		client:    client,
		logger:    params.Logger,
	}
}

// FetchCurrentWeather requests current conditions for params.Location. Any
// HTTP status is accepted; only transport failures are errors.
func (p *OpenWeatherMapProviderAdapter) FetchCurrentWeather(ctx context.Context, params ports.WeatherFetchParams) ([]byte, error) {
	endpoint, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, errors.NewConfigurationError("invalid OpenWeatherMap base URL", err)
	}

	query := endpoint.Query()
	query.Set("q", params.Location)
	query.Set("appid", params.APIKey)
	query.Set("units", params.Units)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build OpenWeatherMap request", redactError(err))
	}
	req.Header.Set("Accept", "application/json")
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call OpenWeatherMap", redactError(err))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && p.logger != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr.Error()))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.NewExternalAPIError(
			fmt.Sprintf("failed to read OpenWeatherMap response (status %d)", resp.StatusCode), redactError(err))
	}

	if resp.StatusCode != http.StatusOK && p.logger != nil {
		p.logger.Debug("OpenWeatherMap returned non-OK status",
			ports.F("status", resp.StatusCode),
			ports.F("location", params.Location))
	}

	return body, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}
