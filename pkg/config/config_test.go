package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_ADDR", "127.0.0.1:8080")
	t.Setenv("SHUTDOWN_TIMEOUT", "1s")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", t.TempDir()+"/estate.db")
	t.Setenv("GOMAXPROCS", "0")
}

func TestLoadFromEnv(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://megareality.com")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", c.AppEnv)
	assert.Equal(t, time.Second, c.ShutdownTimeout)
	assert.True(t, c.AuthRequired)
	assert.Equal(t, []string{"http://localhost:3000", "https://megareality.com"}, c.CORSAllowedOrigins)
	assert.True(t, c.IsDevelopment())
	assert.Same(t, c, Get())
}

func TestPortOverridesAddr(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PORT", "9000")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", c.HTTPAddr)
}

func TestMemoryDriverNeedsNoURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("DATABASE_URL", "")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", c.DBDriver)
}

func TestRejectsUnknownDriver(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DRIVER", "mongo")

	_, err := Load()
	require.Error(t, err)
}
