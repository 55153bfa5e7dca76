package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"APP_NAME", "PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"LOG_LEVEL", "LOG_FORMAT", "DB_DSN",
		"AUTH_BASE_URL", "AUTH_API_KEY", "AUTH_JWT_SECRET",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "pet-haven", cfg.App.Name)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Empty(t, cfg.DB.DSN)
	assert.False(t, cfg.AuthConfigured())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "2s")
	t.Setenv("DB_DSN", " postgres://localhost/haven ")
	t.Setenv("AUTH_BASE_URL", "https://proj.example.co")
	t.Setenv("AUTH_API_KEY", "anon-key")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "postgres://localhost/haven", cfg.DB.DSN, "el DSN viene recortado")
	assert.True(t, cfg.AuthConfigured())
}

func TestLoadDuracionInvalidaUsaDefault(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "no-es-duracion")
	t.Setenv("SERVER_WRITE_TIMEOUT", "-5s")

	cfg := Load()

	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
}
