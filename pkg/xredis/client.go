package xredis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rfphub/backend/pkg/xcontext"
)

type Client interface {
	Del(ctx context.Context, keys ...string) error

	// Counter
	IncrBy(ctx context.Context, key string, value int64) (int64, error)
	GetInt(ctx context.Context, key string) (int64, bool, error)
	SetInt(ctx context.Context, key string, value int64, ttl time.Duration) error
}

type client struct {
	redisClient *redis.Client
}

func NewClient(ctx context.Context) (*client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:            xcontext.Configs(ctx).Redis.Addr,
		MaxRetries:      5,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		PoolFIFO:        false,
		PoolSize:        5,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{redisClient: redisClient}, nil
}

func (c *client) Del(ctx context.Context, keys ...string) error {
	err := c.redisClient.Del(ctx, keys...).Err()
	if err == nil || errors.Is(err, redis.Nil) {
		return nil
	}

	return err
}

func (c *client) IncrBy(ctx context.Context, key string, value int64) (int64, error) {
	return c.redisClient.IncrBy(ctx, key, value).Result()
}

func (c *client) GetInt(ctx context.Context, key string) (int64, bool, error) {
	n, err := c.redisClient.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return n, true, nil
}

func (c *client) SetInt(ctx context.Context, key string, value int64, ttl time.Duration) error {
	return c.redisClient.Set(ctx, key, value, ttl).Err()
}
