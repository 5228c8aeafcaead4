package config_test

import (
	"testing"

	"github.com/HadirBos/hr-admin-gateway/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_BaseURLSelection(t *testing.T) {
	t.Run("production uses API_PROD_URL", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("API_PROD_URL", "https://api.hadirbos.io/api")
		t.Setenv("API_BASE_URL", "http://localhost:5000/api")

		cfg := config.Load()
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "https://api.hadirbos.io/api", cfg.APIBaseURL)
	})

	t.Run("development uses API_BASE_URL", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("API_PROD_URL", "https://api.hadirbos.io/api")
		t.Setenv("API_BASE_URL", "http://localhost:5000/api")

		cfg := config.Load()
		assert.False(t, cfg.IsProduction())
		assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	})

	t.Run("default port", func(t *testing.T) {
		t.Setenv("PORT", "")
		cfg := config.Load()
		assert.Equal(t, "3000", cfg.Port)
	})
}
