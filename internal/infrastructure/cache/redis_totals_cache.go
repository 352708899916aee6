package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/erp/pricing/internal/domain/pricing"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces totals entries in a shared Redis
const DefaultKeyPrefix = "pricing:totals:"

// RedisTotalsCache stores totals snapshots in Redis as JSON.
// Decimals are encoded as strings so no precision is lost.
type RedisTotalsCache struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisTotalsCache connects to Redis and verifies the connection
func NewRedisTotalsCache(cfg RedisConfig, keyPrefix string) (*RedisTotalsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisTotalsCacheWithClient(client, keyPrefix), nil
}

// NewRedisTotalsCacheWithClient wraps an existing client
func NewRedisTotalsCacheWithClient(client *redis.Client, keyPrefix string) *RedisTotalsCache {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &RedisTotalsCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the cached snapshot for key, if present
func (c *RedisTotalsCache) Get(ctx context.Context, key string) (pricing.DocumentTotals, bool, error) {
	raw, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return pricing.DocumentTotals{}, false, nil
	}
	if err != nil {
		return pricing.DocumentTotals{}, false, fmt.Errorf("failed to read totals: %w", err)
	}

	var totals pricing.DocumentTotals
	if err := json.Unmarshal(raw, &totals); err != nil {
		return pricing.DocumentTotals{}, false, fmt.Errorf("failed to decode totals: %w", err)
	}
	return totals, true, nil
}

// Set stores a snapshot with the given ttl; zero keeps it until evicted
func (c *RedisTotalsCache) Set(ctx context.Context, key string, totals pricing.DocumentTotals, ttl time.Duration) error {
	raw, err := json.Marshal(totals)
	if err != nil {
		return fmt.Errorf("failed to encode totals: %w", err)
	}
	if err := c.client.Set(ctx, c.keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write totals: %w", err)
	}
	return nil
}

// Ping checks that Redis is reachable
func (c *RedisTotalsCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client
func (c *RedisTotalsCache) Close() error {
	return c.client.Close()
}

// GetClient returns the underlying Redis client
func (c *RedisTotalsCache) GetClient() *redis.Client {
	return c.client
}

var _ pricing.TotalsCache = (*RedisTotalsCache)(nil)
