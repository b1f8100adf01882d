package redis

import (
	"context"
	"errors"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

type RedisAdapter struct {
	client *goredis.Client
}

func NewRedisAdapter(client *goredis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ports.ErrCacheMiss
		}
		return nil, err
	}
	return data, nil
}

func (r *RedisAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisAdapter) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// NopCache is used when no Redis address is configured. Every lookup misses.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, error) { return nil, ports.ErrCacheMiss }

func (NopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NopCache) Delete(context.Context, string) error { return nil }
