package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

func TestNopCacheAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	var cache ports.CachePort = NopCache{}

	if err := cache.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, err := cache.Get(ctx, "k"); !errors.Is(err, ports.ErrCacheMiss) {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
	if err := cache.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
}

func TestRedisAdapterUnreachable(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewRedisAdapter(client)

	_, err := cache.Get(context.Background(), "categories:all")
	if err == nil {
		t.Fatal("expected a connection error")
	}
	if errors.Is(err, ports.ErrCacheMiss) {
		t.Error("a connection failure must not look like a cache miss")
	}
}
