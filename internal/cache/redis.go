package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"pokedex/internal/config"
	"pokedex/internal/logging"
)

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(ctx context.Context, cfg config.RedisConfig, logger logging.Logger) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisClient{client: rdb}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// Redis is the shared-store ResponseCache backend. Expiry is delegated to
// Redis via the key TTL; capacity is the store's own concern (maxmemory
// policy). Redis read/write failures degrade to recomputing, they never fail
// the request.
type Redis struct {
	client *RedisClient
	prefix string
	ttl    time.Duration
	group  singleflight.Group
	logger logging.Logger
}

func NewRedis(client *RedisClient, ttl time.Duration, logger logging.Logger) *Redis {
	return &Redis{
		client: client,
		prefix: "response:",
		ttl:    ttl,
		logger: logger.With("component", "redis_response_cache"),
	}
}

func (c *Redis) GetOrCompute(ctx context.Context, key string, compute func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	if data, ok := c.get(ctx, key); ok {
		return data, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if data, ok := c.get(ctx, key); ok {
			return data, nil
		}

		data, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		if err := c.client.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
			c.logger.Error("failed to store response in cache", "key", key, "error", err)
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Redis) get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Error("failed to read response cache", "key", key, "error", err)
		}
		return nil, false
	}
	return data, true
}
