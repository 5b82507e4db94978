package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    time.Duration(cfg.TTLSeconds) * time.Second,
	}
}

// Load decodes the cached value at key into dest. A miss returns false, nil.
func (c *RedisCache) Load(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) Store(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

// Version returns the write generation of key, zero if it was never invalidated.
func (c *RedisCache) Version(ctx context.Context, key string) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Invalidate bumps the generation of key so entries stored under an older
// version are never read again. They expire on their own TTL. The counter
// outlives them by one more TTL, so a reset to zero cannot resurrect one.
func (c *RedisCache) Invalidate(ctx context.Context, key string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(key))
		if c.ttl > 0 {
			pipe.Expire(ctx, versionKey(key), 2*c.ttl)
		}
		return nil
	})
	return err
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func recordKey(entity string, id int64) string {
	return fmt.Sprintf("cache:%s:%d", strings.ToLower(entity), id)
}

func versionKey(key string) string {
	return key + ":version"
}

func versionedKey(key string, version int64) string {
	return fmt.Sprintf("%s:v%d", key, version)
}

var _ Cache = (*RedisCache)(nil)
