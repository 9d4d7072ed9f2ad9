package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv                string
	LogLevel              slog.Level
	HTTPPort              string
	PostgreSQLHost        string
	PostgreSQLPort        int64
	PostgreSQLUser        string
	PostgreSQLPassword    string
	PostgreSQLDatabase    string
	JWTSecret             string
	AccessTokenExpiration int64 // seconds
	RedisHost             string
	RedisPort             int64
	RedisPassword         string
	RedisDB               int64
	RateLimitPerMinute    int64
}

func LoadConfig() *Config {
	// Optional .env file for local development; deployments set the
	// environment directly.
	_ = godotenv.Load()

	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		LogLevel:              getLogLevel(),
		HTTPPort:              getEnv("HTTP_PORT", "8000"),
		PostgreSQLHost:        getEnv("POSTGRESQL_HOST", "db"),
		PostgreSQLPort:        getEnvAsInt64("POSTGRESQL_PORT", 5432),
		PostgreSQLUser:        getEnv("POSTGRESQL_USER", "payroll_user"),
		PostgreSQLPassword:    getEnv("POSTGRESQL_PASSWORD", "payroll_password"),
		PostgreSQLDatabase:    getEnv("POSTGRESQL_DATABASE", "payroll_db"),
		JWTSecret:             getEnv("JWT_SECRET", "payroll_secret"),
		AccessTokenExpiration: getEnvAsInt64("ACCESS_TOKEN_EXPIRATION", 1800), // Default 30 minutes
		RedisHost:             getEnv("REDIS_HOST", "redis"),
		RedisPort:             getEnvAsInt64("REDIS_PORT", 6379),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
		RedisDB:               getEnvAsInt64("REDIS_DB", 0),
		RateLimitPerMinute:    getEnvAsInt64("RATE_LIMIT_PER_MINUTE", 60),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
