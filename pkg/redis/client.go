// Package redis wraps go-redis for the read-through entity cache.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when the key does not exist.
var ErrMiss = errors.New("redis: key not found")

// RedisClient defines the interface for Redis operations
type RedisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Get returns ErrMiss when key is absent.
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
	GetClient() redis.UniversalClient
}

// Client represents a Redis client wrapper
type Client struct {
	client redis.UniversalClient
}

// New connects to the configured Redis deployment and pings it, so a
// misconfigured cache fails at startup rather than on the first lookup.
func New(config Config) (RedisClient, error) {
	opts := config.universalOptions()
	client := &Client{client: redis.NewUniversalClient(opts)}

	ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		_ = client.client.Close()
		return nil, err
	}

	return client, nil
}

// NewFromClient wraps an existing go-redis client without pinging it.
func NewFromClient(c redis.UniversalClient) RedisClient {
	return &Client{client: c}
}

// Set sets a key-value pair with expiration
func (r *Client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Get gets a value by key
func (r *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return val, err
}

// Del deletes keys
func (r *Client) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

// Ping checks the connection
func (r *Client) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis client
func (r *Client) Close() error {
	return r.client.Close()
}

// GetClient returns the underlying Redis client for advanced operations
func (r *Client) GetClient() redis.UniversalClient {
	return r.client
}
