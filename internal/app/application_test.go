package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherblock.app/internal/adapters/api"
	"weatherblock.app/internal/config"
)

const (
	testAPIKey     = "0123456789abcdef0123456789abcdef"
	testAdminToken = "admin-token-for-tests"
)

// upstreamServer answers like the current-weather endpoint and counts calls
func upstreamServer(t *testing.T, calls *atomic.Int32) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Query().Get("appid") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"cod":401,"message":"Invalid API key."}`)
			return
		}
		fmt.Fprintf(w, `{"cod":200,"name":%q,"sys":{"country":"GB"},"main":{"temp":11.5,"humidity":80},"weather":[{"description":"overcast clouds","icon":"04d"}]}`,
			r.URL.Query().Get("q"))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestConfig(t *testing.T, upstreamURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:               8080,
			AdminToken:         testAdminToken,
			NonceSecret:        "nonce-secret-for-tests",
			NonceLifetimeHours: 24,
			RequireNonce:       false,
		},
		Database: config.DatabaseConfig{
			Driver:     config.DatabaseDriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "weather_block.db"),
		},
		Weather: config.WeatherConfig{
			APIKey:               testAPIKey,
			BaseURL:              upstreamURL,
			TimeoutSeconds:       5,
			CacheTTLMinutes:      15,
			PurgeCacheOnShutdown: true,
		},
		Cache: config.CacheConfig{Type: config.CacheTypeMemory},
		Log:   config.LogConfig{Level: "info", Format: "json"},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config) *Application {
	deps, err := NewDependencyContainer(cfg)
	require.NoError(t, err)

	application, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	return application
}

func serve(application *Application, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	application.GetRouter().ServeHTTP(w, req)
	return w
}

func TestApplication_LookupIsCached(t *testing.T) {
	var calls atomic.Int32
	application := newTestApplication(t, newTestConfig(t, upstreamServer(t, &calls).URL))
	t.Cleanup(func() { _ = application.Shutdown(context.Background()) })

	for i := 0; i < 3; i++ {
		w := serve(application, http.MethodGet, api.Namespace+"/weather/Leeds", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"location":"Leeds"`)
	}
	assert.Equal(t, int32(1), calls.Load())

	w := serve(application, http.MethodGet, api.Namespace+"/weather/leeds?units=imperial", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(2), calls.Load())
}

func TestApplication_StoredKeyPersists(t *testing.T) {
	var calls atomic.Int32
	cfg := newTestConfig(t, upstreamServer(t, &calls).URL)
	admin := map[string]string{"Authorization": "Bearer " + testAdminToken}

	application := newTestApplication(t, cfg)
	w := serve(application, http.MethodPut, api.Namespace+"/settings/api-key",
		`{"apiKey":"abcdefABCDEF0123456789abcdef0123"}`, admin)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, application.Shutdown(context.Background()))

	// a second instance on the same database sees the stored key
	restarted := newTestApplication(t, cfg)
	t.Cleanup(func() { _ = restarted.Shutdown(context.Background()) })

	w = serve(restarted, http.MethodGet, api.Namespace+"/settings", "", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"option"`)
	assert.Contains(t, w.Body.String(), `"maskedKey":"****************************0123"`)
}

func TestApplication_HealthAndMetrics(t *testing.T) {
	var calls atomic.Int32
	application := newTestApplication(t, newTestConfig(t, upstreamServer(t, &calls).URL))
	t.Cleanup(func() { _ = application.Shutdown(context.Background()) })

	require.Equal(t, http.StatusOK, serve(application, http.MethodGet, api.Namespace+"/weather/Leeds", "", nil).Code)

	w := serve(application, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	for _, component := range []string{"database", "cache", "weatherAPI"} {
		assert.Contains(t, w.Body.String(), `"`+component+`"`)
	}
	assert.Contains(t, w.Body.String(), `"driver":"sqlite"`)
	assert.Contains(t, w.Body.String(), `"type":"memory"`)

	w = serve(application, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
	assert.Contains(t, w.Body.String(), "weather_cache_misses_total 1")
	assert.Contains(t, w.Body.String(), `weather_cache_store_misses_total{cache_type="memory"}`)
}

func TestApplication_MissingAPIKeyDegradesHealth(t *testing.T) {
	var calls atomic.Int32
	cfg := newTestConfig(t, upstreamServer(t, &calls).URL)
	cfg.Weather.APIKey = ""
	application := newTestApplication(t, cfg)
	t.Cleanup(func() { _ = application.Shutdown(context.Background()) })

	w := serve(application, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)

	w = serve(application, http.MethodGet, api.Namespace+"/weather/Leeds", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"missing_api_key"`)
	assert.Equal(t, int32(0), calls.Load())
}

func TestApplication_ShutdownPurgesCache(t *testing.T) {
	var calls atomic.Int32
	application := newTestApplication(t, newTestConfig(t, upstreamServer(t, &calls).URL))

	require.Equal(t, http.StatusOK, serve(application, http.MethodGet, api.Namespace+"/weather/Leeds", "", nil).Code)
	require.NoError(t, application.Shutdown(context.Background()))

	removed, err := application.GetWeatherUseCase().ClearAllCache(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestApplication_RedisCacheAndRandomNonceSecret(t *testing.T) {
	var calls atomic.Int32
	redisServer := miniredis.RunT(t)

	cfg := newTestConfig(t, upstreamServer(t, &calls).URL)
	cfg.Server.NonceSecret = ""
	cfg.Server.RequireNonce = true
	cfg.Cache = config.CacheConfig{
		Type: config.CacheTypeRedis,
		Redis: config.RedisConfig{
			Addr:         redisServer.Addr(),
			DialTimeout:  1,
			ReadTimeout:  1,
			WriteTimeout: 1,
		},
	}

	application := newTestApplication(t, cfg)
	t.Cleanup(func() { _ = application.Shutdown(context.Background()) })

	admin := map[string]string{"Authorization": "Bearer " + testAdminToken}
	w := serve(application, http.MethodPost, api.Namespace+"/nonce", "", admin)
	require.Equal(t, http.StatusOK, w.Code)
	var issued struct {
		Nonce string `json:"nonce"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))

	w = serve(application, http.MethodGet, api.Namespace+"/weather/Leeds", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(application, http.MethodGet, api.Namespace+"/weather/Leeds", "", map[string]string{api.NonceHeader: issued.Nonce})
	require.Equal(t, http.StatusOK, w.Code)

	keys := redisServer.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "weather_block_"))
}

func TestNewDependencyContainer_InvalidDatabase(t *testing.T) {
	cfg := newTestConfig(t, "http://127.0.0.1:1")
	cfg.Database.Driver = "mysql"

	_, err := NewDependencyContainer(cfg)
	assert.Error(t, err)
}
