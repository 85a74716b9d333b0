package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ZaguanLabs/langswap"
)

// RedisStore persists language choices in Redis, for sites that serve
// one visitor profile from several instances. Values are stored
// without expiry.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds configuration for the Redis store.
type RedisConfig struct {
	URL       string // Redis connection URL (e.g., "redis://localhost:6379")
	KeyPrefix string // Prefix for all keys (default: "langswap:")
}

// NewRedisStore creates a Redis store and verifies the connection.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, &langswap.StoreError{Message: "parsing redis URL", Cause: err}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, &langswap.StoreError{Message: "connecting to redis", Cause: err}
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "langswap:"
	}

	return &RedisStore{
		client:    client,
		keyPrefix: prefix,
	}, nil
}

// NewRedisStoreFromClient creates a RedisStore from an existing client.
func NewRedisStoreFromClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "langswap:"
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves a value from Redis. Any error degrades to absent.
func (s *RedisStore) Get(key string) (string, bool) {
	ctx := context.Background()
	val, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a value in Redis without expiry.
func (s *RedisStore) Set(key string, value string) error {
	ctx := context.Background()
	if err := s.client.Set(ctx, s.keyPrefix+key, value, 0).Err(); err != nil {
		return &langswap.StoreError{Message: "writing " + key, Cause: err}
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping tests the Redis connection.
func (s *RedisStore) Ping() error {
	ctx := context.Background()
	return s.client.Ping(ctx).Err()
}

// Verify RedisStore implements Store
var _ Store = (*RedisStore)(nil)
