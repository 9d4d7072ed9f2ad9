package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Equal(t, int64(1800), cfg.AccessTokenExpiration)
	assert.Equal(t, int64(60), cfg.RateLimitPerMinute)
	assert.Equal(t, int64(6379), cfg.RedisPort)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ACCESS_TOKEN_EXPIRATION", "3600")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadConfig()

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, int64(3600), cfg.AccessTokenExpiration)
	assert.Equal(t, int64(120), cfg.RateLimitPerMinute)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadConfig_BadIntFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRATION", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, int64(1800), cfg.AccessTokenExpiration)
}
