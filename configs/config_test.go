package configs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/gopaginate/configs"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "pages")
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := configs.Load()
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
		assert.Equal(t, "app:secret@tcp(localhost:3306)/pages?parseTime=true", cfg.DatabaseURL)
		assert.Equal(t, 20, cfg.PageSize)
		assert.Equal(t, 0, cfg.UserPageSize)
		assert.Equal(t, 0, cfg.SeedUsers)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("Pagination overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PAGE_SIZE", "50")
		t.Setenv("USER_PAGE_SIZE", "10")
		t.Setenv("SEED_USERS", "100")

		cfg, err := configs.Load()
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.PageSize)
		assert.Equal(t, 10, cfg.UserPageSize)
		assert.Equal(t, 100, cfg.SeedUsers)
	})

	t.Run("Missing database credentials", func(t *testing.T) {
		t.Setenv("DB_USER", "")
		t.Setenv("DB_PASSWORD", "")
		t.Setenv("DB_NAME", "")

		_, err := configs.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("Non-numeric page size", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PAGE_SIZE", "twenty")

		_, err := configs.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid PAGE_SIZE")
	})

	t.Run("Zero page size", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PAGE_SIZE", "0")

		_, err := configs.Load()
		require.Error(t, err)
	})
}
