package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/pricing/internal/domain/pricing"
	"github.com/erp/pricing/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NopTotalsCache never stores anything; every Get is a miss
type NopTotalsCache struct{}

// Get always misses
func (NopTotalsCache) Get(context.Context, string) (pricing.DocumentTotals, bool, error) {
	return pricing.DocumentTotals{}, false, nil
}

// Set discards the snapshot
func (NopTotalsCache) Set(context.Context, string, pricing.DocumentTotals, time.Duration) error {
	return nil
}

var _ pricing.TotalsCache = NopTotalsCache{}

// TotalsCacheFactory creates a totals cache based on configuration
type TotalsCacheFactory struct {
	cacheConfig           config.CacheConfig
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// TotalsCacheFactoryOption is a functional option for configuring the factory
type TotalsCacheFactoryOption func(*TotalsCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) TotalsCacheFactoryOption {
	return func(f *TotalsCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis falls back to
// the in-memory cache. Default is true.
func WithInMemoryFallback(allow bool) TotalsCacheFactoryOption {
	return func(f *TotalsCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewTotalsCacheFactory creates a new factory
func NewTotalsCacheFactory(cacheCfg config.CacheConfig, redisCfg config.RedisConfig, opts ...TotalsCacheFactoryOption) *TotalsCacheFactory {
	f := &TotalsCacheFactory{
		cacheConfig:           cacheCfg,
		redisConfig:           redisCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-backed totals cache
func (f *TotalsCacheFactory) CreateRedisCache() (*RedisTotalsCache, error) {
	c, err := NewRedisTotalsCache(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	}, f.cacheConfig.KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis totals cache: %w", err)
	}
	return c, nil
}

// CreateInMemoryCache creates an in-memory totals cache
func (f *TotalsCacheFactory) CreateInMemoryCache() *MemoryTotalsCache {
	return NewMemoryTotalsCache(f.cacheConfig.TTL, f.cacheConfig.CleanupInterval)
}

// CreateCache creates the cache selected by cache.driver. For the redis
// driver an unreachable server falls back to memory when allowed.
func (f *TotalsCacheFactory) CreateCache() (pricing.TotalsCache, error) {
	switch f.cacheConfig.Driver {
	case "none":
		f.logger.Info("totals cache disabled")
		return NopTotalsCache{}, nil
	case "", "memory":
		f.logger.Info("using in-memory totals cache", zap.Duration("ttl", f.cacheConfig.TTL))
		return f.CreateInMemoryCache(), nil
	case "redis":
		c, err := f.CreateRedisCache()
		if err == nil {
			f.logger.Info("using Redis totals cache", zap.String("addr", f.redisConfig.Addr()))
			return c, nil
		}
		if !f.allowInMemoryFallback {
			return nil, err
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory totals cache", zap.Error(err))
		return f.CreateInMemoryCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", f.cacheConfig.Driver)
	}
}
