package workoutplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/volumeplanner/internal/telemetry/metrics"
	"github.com/2beens/volumeplanner/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

var ErrCacheMiss = errors.New("plan cache miss")

//go:generate mockgen -source=$GOFILE -destination=cache_mocks_test.go -package=workoutplan_test

// planCache is one layer of the plan cache. Plans are a pure function of the profile, so a
// cached plan never goes stale; the TTL only bounds memory.
type planCache interface {
	Get(ctx context.Context, key string) (*PlanResponse, error)
	Set(ctx context.Context, key string, plan *PlanResponse) error
	Layer() string
}

// MemoryCache is the in-process layer, backed by freecache.
type MemoryCache struct {
	cache *freecache.Cache
	ttl   time.Duration
}

func NewMemoryCache(sizeMegabytes int, ttl time.Duration) *MemoryCache {
	megabyte := 1024 * 1024
	return &MemoryCache{
		cache: freecache.NewCache(sizeMegabytes * megabyte),
		ttl:   ttl,
	}
}

func (c *MemoryCache) Layer() string {
	return metrics.CacheLayerMemory
}

func (c *MemoryCache) Get(_ context.Context, key string) (*PlanResponse, error) {
	planBytes, err := c.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("memory cache get: %w", err)
	}

	var plan PlanResponse
	if err := json.Unmarshal(planBytes, &plan); err != nil {
		return nil, fmt.Errorf("unmarshal cached plan: %w", err)
	}
	return &plan, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, plan *PlanResponse) error {
	planBytes, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	if err := c.cache.Set([]byte(key), planBytes, int(c.ttl.Seconds())); err != nil {
		return fmt.Errorf("memory cache set: %w", err)
	}
	return nil
}

func (c *MemoryCache) EntryCount() int64 {
	return c.cache.EntryCount()
}

// RedisCache is the shared layer, so that replicas reuse each other's plans.
type RedisCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisCache(rdb redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *RedisCache) Layer() string {
	return metrics.CacheLayerRedis
}

func (c *RedisCache) Get(ctx context.Context, key string) (_ *PlanResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.redis.get")
	defer func() {
		if errors.Is(err, ErrCacheMiss) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, &err)
	}()

	planJson, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var plan PlanResponse
	if err := json.Unmarshal([]byte(planJson), &plan); err != nil {
		return nil, fmt.Errorf("unmarshal cached plan: %w", err)
	}
	return &plan, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, plan *PlanResponse) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.redis.set")
	defer tracing.EndSpanWithErrCheck(span, &err)

	planJson, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	if err := c.rdb.Set(ctx, key, string(planJson), c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
