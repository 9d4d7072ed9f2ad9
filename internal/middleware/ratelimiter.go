package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Nareshm03/Payroll-Management-System/internal/config"
)

// RateLimiter throttles requests per client using Redis
type RateLimiter interface {
	// Allow reports whether the client identified by clientID may proceed,
	// along with the requests used so far inside the current window.
	Allow(ctx context.Context, clientID string) (bool, int64, error)

	// Close closes the Redis connection
	Close() error
}

type redisRateLimiter struct {
	client *redis.Client
	limit  int64
	logger *slog.Logger
}

// NewRateLimiter creates a new Redis-based fixed-window rate limiter
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) (RateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDB),
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("❌ [RateLimiter] Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [RateLimiter] Connected to Redis",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
		"limit_per_minute", cfg.RateLimitPerMinute,
	)

	return &redisRateLimiter{
		client: client,
		limit:  cfg.RateLimitPerMinute,
		logger: logger,
	}, nil
}

// NewRateLimiterWithClient wires an existing Redis client (for testing).
func NewRateLimiterWithClient(client *redis.Client, limit int64, logger *slog.Logger) RateLimiter {
	return &redisRateLimiter{
		client: client,
		limit:  limit,
		logger: logger,
	}
}

// windowKey generates the Redis key for the current one-minute window.
// Format: rate:{clientID}:{YYYY-MM-DDTHH:MM}
func windowKey(clientID string) string {
	window := time.Now().UTC().Format("2006-01-02T15:04")
	return fmt.Sprintf("rate:%s:%s", clientID, window)
}

func (r *redisRateLimiter) Allow(ctx context.Context, clientID string) (bool, int64, error) {
	// Zero or negative means unlimited
	if r.limit <= 0 {
		return true, 0, nil
	}

	key := windowKey(clientID)

	pipe := r.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("❌ [RateLimiter] Failed to count request", "error", err, "client", clientID)
		// On Redis errors the request is allowed rather than failed
		return true, 0, err
	}

	used := incr.Val()
	return used <= r.limit, used, nil
}

func (r *redisRateLimiter) Close() error {
	return r.client.Close()
}

// noOpRateLimiter allows everything; used when Redis is unavailable.
type noOpRateLimiter struct {
	logger *slog.Logger
}

// NewNoOpRateLimiter creates a rate limiter that never throttles
func NewNoOpRateLimiter(logger *slog.Logger) RateLimiter {
	logger.Warn("⚠️ [RateLimiter] Using no-op rate limiter, requests will not be throttled")
	return &noOpRateLimiter{logger: logger}
}

func (n *noOpRateLimiter) Allow(ctx context.Context, clientID string) (bool, int64, error) {
	return true, 0, nil
}

func (n *noOpRateLimiter) Close() error {
	return nil
}

// RateLimit is the gin middleware over a RateLimiter, keyed by client IP.
func RateLimit(limiter RateLimiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, used, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			logger.Warn("⚠️ [RateLimiter] Client over limit", "client", c.ClientIP(), "used", used)
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
