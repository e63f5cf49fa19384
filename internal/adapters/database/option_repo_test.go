package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatherblock.app/internal/config"
	"weatherblock.app/pkg/errors"
)

func setupOptionTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	return db
}

func TestOptionRepository_GetMissing(t *testing.T) {
	repo := NewOptionRepositoryAdapter(setupOptionTestDB(t))

	value, err := repo.Get(context.Background(), "weather_block_api_key")

	assert.Empty(t, value)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestOptionRepository_SetAndOverwrite(t *testing.T) {
	db := setupOptionTestDB(t)
	repo := NewOptionRepositoryAdapter(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "weather_block_api_key", "first"))
	require.NoError(t, repo.Set(ctx, "weather_block_api_key", "second"))

	value, err := repo.Get(ctx, "weather_block_api_key")
	require.NoError(t, err)
	assert.Equal(t, "second", value)

	var count int64
	require.NoError(t, db.Model(&OptionModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOptionRepository_Delete(t *testing.T) {
	repo := NewOptionRepositoryAdapter(setupOptionTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "weather_block_api_key", "value"))
	require.NoError(t, repo.Delete(ctx, "weather_block_api_key"))

	_, err := repo.Get(ctx, "weather_block_api_key")
	assert.True(t, errors.IsNotFoundError(err))

	assert.NoError(t, repo.Delete(ctx, "weather_block_api_key"))
}

func TestOptionRepository_EmptyName(t *testing.T) {
	repo := NewOptionRepositoryAdapter(setupOptionTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, " ")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(repo.Set(ctx, "", "v")))
	assert.True(t, errors.IsValidationError(repo.Delete(ctx, "")))
}

func TestOptionRepository_ClosedDatabase(t *testing.T) {
	db := setupOptionTestDB(t)
	repo := NewOptionRepositoryAdapter(db)
	require.NoError(t, Close(db))

	_, err := repo.Get(context.Background(), "weather_block_api_key")
	assert.True(t, errors.IsDatabaseError(err))
}

func TestOpen(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: config.DatabaseDriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	assert.NoError(t, Migrate(db))
	assert.NoError(t, Close(db))

	_, err = Open(config.DatabaseConfig{Driver: "mysql"})
	assert.True(t, errors.IsConfigurationError(err))
}
