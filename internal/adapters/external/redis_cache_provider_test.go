package external

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherblock.app/internal/config"
	"weatherblock.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		Password:     "",
		DB:           0,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	return mockRedis, redisConfig
}

func newTestRedisAdapter(t *testing.T) (*miniredis.Miniredis, *RedisCacheProviderAdapter) {
	t.Helper()

	mockRedis, redisConfig := setupMockRedis(t)
	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })

	return mockRedis, adapter
}

func TestRedisCacheProviderAdapter_NewRedisCacheProviderAdapter(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.RedisConfig
		expectError bool
		errorType   errors.ErrorType
	}{
		{
			name:        "NilConfig",
			config:      nil,
			expectError: true,
			errorType:   errors.ErrorTypeConfiguration,
		},
		{
			name: "ValidConfig",
			config: func() *config.RedisConfig {
				_, cfg := setupMockRedis(t)
				return cfg
			}(),
		},
		{
			name: "InvalidAddress",
			config: &config.RedisConfig{
				Addr:         "invalid:address:port",
				DialTimeout:  5,
				ReadTimeout:  3,
				WriteTimeout: 3,
			},
			expectError: true,
			errorType:   errors.ErrorTypeExternalAPI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := NewRedisCacheProviderAdapter(tt.config)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, adapter)
				var appErr *errors.AppError
				if assert.ErrorAs(t, err, &appErr) {
					assert.Equal(t, tt.errorType, appErr.Type)
				}
				return
			}

			assert.NoError(t, err)
			if assert.NotNil(t, adapter) {
				assert.NoError(t, adapter.Close())
			}
		})
	}
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	mockRedis, adapter := newTestRedisAdapter(t)
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		value := []byte(`{"location":"London"}`)
		require.NoError(t, adapter.Set(ctx, "weather_block_london", value, time.Minute))

		retrieved, err := adapter.Get(ctx, "weather_block_london")
		require.NoError(t, err)
		assert.Equal(t, value, retrieved)
	})

	t.Run("GetNonExistentKey", func(t *testing.T) {
		retrieved, err := adapter.Get(ctx, "non-existent-key")
		assert.Nil(t, retrieved)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeleteReportsExistence", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "delete-key", []byte("v"), time.Minute))

		existed, err := adapter.Delete(ctx, "delete-key")
		require.NoError(t, err)
		assert.True(t, existed)

		existed, err = adapter.Delete(ctx, "delete-key")
		require.NoError(t, err)
		assert.False(t, existed)
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := adapter.Exists(ctx, "exists-key")
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, adapter.Set(ctx, "exists-key", []byte("v"), time.Minute))

		exists, err = adapter.Exists(ctx, "exists-key")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "ttl-key", []byte("ttl-value"), 15*time.Minute))

		mockRedis.FastForward(15*time.Minute - time.Second)
		_, err := adapter.Get(ctx, "ttl-key")
		require.NoError(t, err)

		mockRedis.FastForward(2 * time.Second)
		_, err = adapter.Get(ctx, "ttl-key")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, adapter.Ping(ctx))
	})
}

func TestRedisCacheProviderAdapter_DeleteByPrefix(t *testing.T) {
	mockRedis, adapter := newTestRedisAdapter(t)
	ctx := context.Background()

	// more keys than one SCAN batch
	for i := 0; i < scanBatchSize*2+5; i++ {
		require.NoError(t, adapter.Set(ctx, fmt.Sprintf("weather_block_%03d", i), []byte("v"), time.Minute))
	}
	require.NoError(t, mockRedis.Set("session_token", "keep"))
	require.NoError(t, mockRedis.Set("weather_blocker", "keep"))

	removed, err := adapter.DeleteByPrefix(ctx, "weather_block_")
	require.NoError(t, err)
	assert.Equal(t, scanBatchSize*2+5, removed)

	assert.ElementsMatch(t, []string{"session_token", "weather_blocker"}, mockRedis.Keys())

	removed, err = adapter.DeleteByPrefix(ctx, "weather_block_")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestRedisCacheProviderAdapter_ValidationErrors(t *testing.T) {
	_, adapter := newTestRedisAdapter(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		operation func() error
	}{
		{"GetEmptyKey", func() error { _, err := adapter.Get(ctx, ""); return err }},
		{"SetEmptyKey", func() error { return adapter.Set(ctx, "", []byte("value"), time.Minute) }},
		{"SetNilValue", func() error { return adapter.Set(ctx, "key", nil, time.Minute) }},
		{"SetZeroTTL", func() error { return adapter.Set(ctx, "key", []byte("value"), 0) }},
		{"SetNegativeTTL", func() error { return adapter.Set(ctx, "key", []byte("value"), -time.Minute) }},
		{"DeleteEmptyKey", func() error { _, err := adapter.Delete(ctx, ""); return err }},
		{"DeleteEmptyPrefix", func() error { _, err := adapter.DeleteByPrefix(ctx, ""); return err }},
		{"ExistsEmptyKey", func() error { _, err := adapter.Exists(ctx, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(tt.operation()))
		})
	}
}

func TestRedisCacheProviderAdapter_Metrics(t *testing.T) {
	_, adapter := newTestRedisAdapter(t)
	ctx := context.Background()

	stats := adapter.GetStats()
	assert.Zero(t, stats.TotalOps)

	require.NoError(t, adapter.Set(ctx, "metrics-key", []byte("v"), time.Minute))
	_, _ = adapter.Get(ctx, "metrics-key")
	_, _ = adapter.Get(ctx, "missing-key")

	stats = adapter.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 0.5, stats.HitRatio)
}

func TestRedisCacheProviderAdapter_ServerDown(t *testing.T) {
	mockRedis, adapter := newTestRedisAdapter(t)
	mockRedis.Close()

	_, err := adapter.Get(context.Background(), "key")
	assert.True(t, errors.IsExternalAPIError(err))
	assert.Error(t, adapter.Ping(context.Background()))
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, "weather_block_", escapeGlob("weather_block_"))
	assert.Equal(t, `a\*b\?c\[d\]`, escapeGlob("a*b?c[d]"))
}
