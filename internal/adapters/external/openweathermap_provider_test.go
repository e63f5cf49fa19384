package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherblock.app/internal/mocks"
	"weatherblock.app/internal/ports"
	"weatherblock.app/pkg/errors"
)

// Helper function to set up logger mock with variadic argument expectations
func setupLoggerMockOpenWeatherMap(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	return mockLogger
}

const londonBody = `{"name":"London","sys":{"country":"GB"},"main":{"temp":15.5,"humidity":78},"weather":[{"description":"light rain","icon":"10d"}],"cod":200}`

func TestOpenWeatherMapProvider_FetchCurrentWeather_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "New York", r.URL.Query().Get("q"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))
		assert.Equal(t, "WeatherBlock/1.0.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(londonBody))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		BaseURL:   mockServer.URL + "/data/2.5/weather",
		UserAgent: "WeatherBlock/1.0.0",
		Logger:    setupLoggerMockOpenWeatherMap(t),
	})

	body, err := provider.FetchCurrentWeather(context.Background(), ports.WeatherFetchParams{
		Location: "New York",
		Units:    "imperial",
		APIKey:   "test-api-key",
	})

	require.NoError(t, err)
	assert.JSONEq(t, londonBody, string(body))
	assert.Equal(t, "openweathermap", provider.GetProviderName())
}

func TestOpenWeatherMapProvider_FetchCurrentWeather_ErrorStatusReturnsBody(t *testing.T) {
	errorBody := `{"cod":"404","message":"city not found"}`
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(errorBody))
	}))
	defer mockServer.Close()

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		BaseURL: mockServer.URL,
		Logger:  setupLoggerMockOpenWeatherMap(t),
	})

	body, err := provider.FetchCurrentWeather(context.Background(), testFetchParams)

	require.NoError(t, err)
	assert.Equal(t, errorBody, string(body))
}

func TestOpenWeatherMapProvider_FetchCurrentWeather_TransportErrorRedactsKey(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := mockServer.URL
	mockServer.Close()

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		BaseURL: baseURL,
		Logger:  setupLoggerMockOpenWeatherMap(t),
	})

	body, err := provider.FetchCurrentWeather(context.Background(), testFetchParams)

	assert.Nil(t, body)
	assert.True(t, errors.IsExternalAPIError(err))
	assert.NotContains(t, err.Error(), testFetchParams.APIKey)
	assert.Contains(t, err.Error(), "appid=REDACTED")
}

func TestOpenWeatherMapProvider_FetchCurrentWeather_Timeout(t *testing.T) {
	release := make(chan struct{})
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer mockServer.Close()
	defer close(release)

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		BaseURL: mockServer.URL,
		Timeout: 50 * time.Millisecond,
		Logger:  setupLoggerMockOpenWeatherMap(t),
	})

	_, err := provider.FetchCurrentWeather(context.Background(), testFetchParams)

	assert.True(t, errors.IsExternalAPIError(err))
	assert.NotContains(t, err.Error(), testFetchParams.APIKey)
}

func TestOpenWeatherMapProvider_FetchCurrentWeather_ContextCancelled(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(londonBody))
	}))
	defer mockServer.Close()

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		BaseURL: mockServer.URL,
		Logger:  setupLoggerMockOpenWeatherMap(t),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.FetchCurrentWeather(ctx, testFetchParams)
	assert.True(t, errors.IsExternalAPIError(err))
}

func TestRedactURL(t *testing.T) {
	redacted := redactURL("https://api.openweathermap.org/data/2.5/weather?appid=secret&q=Paris&units=metric")

	assert.False(t, strings.Contains(redacted, "secret"))
	assert.Contains(t, redacted, "appid=REDACTED")
	assert.Contains(t, redacted, "q=Paris")
	assert.Equal(t, "https://example.com/path", redactURL("https://example.com/path"))
}
