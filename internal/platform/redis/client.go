package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"leadgate/internal/platform/config"
)

// Client wraps the go-redis client with health checking capabilities.
type Client struct {
	*redis.Client
}

// New creates a Redis client from the provided configuration.
// Returns nil if the URL is empty (Redis not configured).
func New(cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{Client: client}, nil
}

// Health checks if the Redis connection is healthy.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.Client.Close()
}

// FixedWindowLimiter counts submissions per key in one-minute windows.
type FixedWindowLimiter struct {
	client *Client
	limit  int
	window time.Duration
}

// NewFixedWindowLimiter builds a limiter allowing limit requests per minute
// per key. Returns nil when the client is nil so callers can treat rate
// limiting as disabled.
func NewFixedWindowLimiter(client *Client, limit int) *FixedWindowLimiter {
	if client == nil || limit <= 0 {
		return nil
	}
	return &FixedWindowLimiter{client: client, limit: limit, window: time.Minute}
}

// Allow increments the key's window counter and reports whether the caller is
// still under the limit.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := fmt.Sprintf("%s:%d", key, time.Now().Unix()/int64(l.window.Seconds()))

	count, err := l.client.Incr(ctx, windowKey).Result()
	if err != nil {
		return false, fmt.Errorf("incr rate window: %w", err)
	}
	if count == 1 {
		// First hit owns setting the expiry; a lost expire only extends the
		// window by one period.
		if err := l.client.Expire(ctx, windowKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("expire rate window: %w", err)
		}
	}
	return count <= int64(l.limit), nil
}
