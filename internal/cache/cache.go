package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
// A nil *Client is valid and behaves like an always-empty cache.
type Client struct {
	client *redis.Client
	logger *zap.Logger
}

// New creates a Redis-backed client. It returns nil when addr is empty so callers can
// run without Redis.
func New(addr, password string, db int, logger *zap.Logger) *Client {
	if addr == "" {
		logger.Info("redis disabled, token revocation is a no-op")
		return nil
	}
	c := &Client{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		logger: logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		logger.Warn("unable to reach redis", zap.String("addr", addr), zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", addr))
	}
	return c
}

// Ping verifies Redis connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return errors.New("redis client not configured")
	}
	return c.client.Ping(ctx).Err()
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		c.logger.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}

// Close releases the underlying connections.
func (c *Client) Close() {
	if c != nil && c.client != nil {
		_ = c.client.Close()
	}
}
