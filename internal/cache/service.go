package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisService backs the Service interface with a single Redis client.
// Construction pings once so an unreachable Redis surfaces at startup,
// where the caller decides whether to run uncached instead.
type RedisService struct {
	client *redis.Client
}

// NewRedisService connects to Redis and verifies the connection
func NewRedisService(config *Config) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisService{client: client}, nil
}

// Set stores value under key for ttl
func (r *RedisService) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key. An absent key is reported as
// ErrCacheMiss so callers can tell a miss from a transport failure.
func (r *RedisService) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}
	return value, nil
}

// Delete removes key from the cache
func (r *RedisService) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}

// Close releases the Redis client
func (r *RedisService) Close() error {
	return r.client.Close()
}
