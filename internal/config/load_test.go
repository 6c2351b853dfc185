package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets the env vars without which Load fails validation.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FITFOODIE_DATABASE_URL", "postgres://localhost:5432/fitfoodie_test")
	t.Setenv("FITFOODIE_AUTH_JWT_SECRET", "test-jwt-secret-that-is-32-chars!!")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 10080, cfg.Auth.RefreshTokenLifetimeMinutes)
	assert.Equal(t, "postgres://localhost:5432/fitfoodie_test", cfg.Database.URL)
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FITFOODIE_SERVER_PORT", "9090")
	t.Setenv("FITFOODIE_SERVER_LOG_LEVEL", "debug")
	t.Setenv("FITFOODIE_AUTH_TOKEN_LIFETIME_MINUTES", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 30, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("FITFOODIE_AUTH_JWT_SECRET", "test-jwt-secret-that-is-32-chars!!")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadShortJWTSecret(t *testing.T) {
	t.Setenv("FITFOODIE_DATABASE_URL", "postgres://localhost:5432/fitfoodie_test")
	t.Setenv("FITFOODIE_AUTH_JWT_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadInvalidLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FITFOODIE_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
}
