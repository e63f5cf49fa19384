package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherblock.app/internal/core/settings"
	"weatherblock.app/internal/core/weather"
)

func TestWeatherHandler_GetWeather_Success(t *testing.T) {
	env := setupTestEnv(t, defaultTestConfig())
	env.expectFetch("London", "metric", londonPayload)

	w := env.do(http.MethodGet, Namespace+"/weather/London", "", env.nonceHeaders())
	require.Equal(t, http.StatusOK, w.Code)

	var response WeatherResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "London", response.Location)
	assert.Equal(t, "GB", response.Country)
	assert.Equal(t, 15.25, response.Temperature)
	assert.Equal(t, "light rain", response.Description)
	assert.Equal(t, "10d", response.Icon)
	assert.Equal(t, 72, response.Humidity)
	assert.Equal(t, "metric", response.Units)
	assert.Positive(t, response.Timestamp)
}

func TestWeatherHandler_GetWeather_ServedFromCache(t *testing.T) {
	env := setupTestEnv(t, defaultTestConfig())
	env.expectFetch("London", "imperial", londonPayload)

	for i := 0; i < 3; i++ {
		w := env.do(http.MethodGet, Namespace+"/weather/London?units=imperial", "", env.nonceHeaders())
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"units":"imperial"`)
	}
}

func TestWeatherHandler_GetWeather_Nonce(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		env := setupTestEnv(t, defaultTestConfig())

		w := env.do(http.MethodGet, Namespace+"/weather/London", "", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		response := decodeError(t, w)
		assert.Equal(t, "invalid_nonce", response.Code)
		assert.Equal(t, "Invalid security token.", response.Message)
	})

	t.Run("WrongAction", func(t *testing.T) {
		env := setupTestEnv(t, defaultTestConfig())

		w := env.do(http.MethodGet, Namespace+"/weather/London", "",
			map[string]string{NonceHeader: env.nonces.Create("other_action")})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Disabled", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.RequireNonce = false
		env := setupTestEnv(t, cfg)
		env.expectFetch("London", "metric", londonPayload)

		w := env.do(http.MethodGet, Namespace+"/weather/London", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestWeatherHandler_GetWeather_InvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		message string
	}{
		{"LocationWithSpace", "/weather/New%20York", "Invalid parameter(s): location"},
		{"LocationWithComma", "/weather/London,GB", "Invalid parameter(s): location"},
		{"LocationTooLong", "/weather/" + strings.Repeat("a", 101), "Invalid parameter(s): location"},
		{"UnknownUnits", "/weather/London?units=kelvin", "Invalid parameter(s): units"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t, defaultTestConfig())

			// parameters are validated before the nonce is checked
			w := env.do(http.MethodGet, Namespace+tt.target, "", nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			response := decodeError(t, w)
			assert.Equal(t, CodeInvalidParam, response.Code)
			assert.Equal(t, tt.message, response.Message)
		})
	}
}

func TestWeatherHandler_GetWeather_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"ProviderError", `{"cod":"404","message":"city not found"}`, weather.CodeUpstreamAPIError},
		{"EmptyBody", ``, weather.CodeEmptyUpstreamResponse},
		{"MissingFields", `{"cod":200,"name":"Atlantis"}`, weather.CodeInvalidUpstreamResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t, defaultTestConfig())
			env.expectFetch("Atlantis", "metric", tt.body)

			w := env.do(http.MethodGet, Namespace+"/weather/Atlantis", "", env.nonceHeaders())
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}

	t.Run("TransportError", func(t *testing.T) {
		env := setupTestEnv(t, defaultTestConfig())
		env.provider.EXPECT().
			FetchCurrentWeather(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("dial tcp: connection refused")).
			Once()

		w := env.do(http.MethodGet, Namespace+"/weather/London", "", env.nonceHeaders())
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		response := decodeError(t, w)
		assert.Equal(t, weather.CodeUpstreamFetchFailed, response.Code)
		assert.NotContains(t, response.Message, "connection refused")
	})
}

func TestWeatherHandler_GetWeather_MissingAPIKey(t *testing.T) {
	env := setupTestEnv(t, defaultTestConfig())
	env.options.values[settings.OptionAPIKey] = weather.PlaceholderAPIKey

	w := env.do(http.MethodGet, Namespace+"/weather/London", "", env.nonceHeaders())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, weather.CodeMissingAPIKey, decodeError(t, w).Code)
}

func TestWeatherHandler_RenderBlock(t *testing.T) {
	env := setupTestEnv(t, defaultTestConfig())
	env.expectFetch("London", "metric", londonPayload)

	w := env.do(http.MethodGet, Namespace+"/render?location=London&displayMode=light", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "weather-block--theme-light")
	assert.Contains(t, w.Body.String(), "15.3°C")

	w = env.do(http.MethodGet, Namespace+"/render", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = env.do(http.MethodGet, Namespace+"/render?location=London&units=kelvin", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "weather-block--error")
	assert.Contains(t, w.Body.String(), "Units must be either metric or imperial.")
}
