package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"
)

// PaymentGateway returns Secret, or Err, and remembers the last request.
type PaymentGateway struct {
	mu           sync.Mutex
	Secret       string
	Err          error
	LastAmount   int64
	LastCurrency string
	Calls        int
}

func (g *PaymentGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls++
	g.LastAmount = amount
	g.LastCurrency = currency
	if g.Err != nil {
		return "", g.Err
	}
	return g.Secret, nil
}

// Cache is a map-backed CachePort that ignores TTLs. Deleted lists the
// evicted keys in order.
type Cache struct {
	mu      sync.Mutex
	data    map[string][]byte
	Deleted []string
}

func NewCache() *Cache {
	return &Cache{data: map[string][]byte{}}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, ports.ErrCacheMiss
	}
	return v, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	c.Deleted = append(c.Deleted, key)
	return nil
}

// Put stores value under key as is.
func (c *Cache) Put(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

// Has reports whether key is present.
func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}
