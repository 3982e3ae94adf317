// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
)

// ResultCache stores recommendation results by key. Implementations never
// return errors to the caller: a failed lookup is a miss and a failed store
// is dropped.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]ItemSummary, bool)
	Set(ctx context.Context, key string, items []ItemSummary)
	EvictExpired() int
	Len() int
	Backend() string
	Close() error
}

// cacheKey identifies one recommendation result. The entry for a key is a
// function of the key alone: a cold result depends only on the user, a warm
// one also on the resolved content seed. Entries can therefore be shared
// between engines whose swipe ledgers differ.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func cacheKey(req Request, state UserState, seed string) string {
	return fmt.Sprintf("%d:%s:%d:%s", req.UserID, state, req.TopN, seed)
}

// newResultCache builds the configured cache, or nil when caching is off.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func newResultCache(ctx context.Context, cfg CacheConfig, logger zerolog.Logger) (ResultCache, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	switch cfg.Backend {
	case CacheBackendMemory, "":
		return newMemoryCache(cfg.TTL, cfg.MaxEntries), nil
	case CacheBackendRedis:
		return newRedisCache(ctx, cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// ========== Memory backend ==========

type cacheEntry struct {
	items     []ItemSummary
	expiresAt time.Time
}

type memoryCache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
}

func newMemoryCache(ttl time.Duration, maxEntries int) *memoryCache {
	return &memoryCache{
		entries:    make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]ItemSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return append([]ItemSummary(nil), entry.items...), true
}

func (c *memoryCache) Set(_ context.Context, key string, items []ItemSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictExpiredLocked()
		if len(c.entries) >= c.maxEntries {
			c.evictOldestLocked()
		}
	}

	c.entries[key] = cacheEntry{
		items:     append([]ItemSummary(nil), items...),
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *memoryCache) EvictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictExpiredLocked()
}

func (c *memoryCache) evictExpiredLocked() int {
	now := time.Now()
	evicted := 0
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}

func (c *memoryCache) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.expiresAt.Before(oldest) {
			oldestKey, oldest = key, entry.expiresAt
		}
	}
	delete(c.entries, oldestKey)
}

func (c *memoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *memoryCache) Backend() string {
	return CacheBackendMemory
}

func (c *memoryCache) Close() error {
	return nil
}

// ========== Redis backend ==========

// redisCache shares results between replicas. Every call goes through a
// circuit breaker so an unavailable redis degrades to cache misses without
// adding its timeout to each request.
type redisCache struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	prefix  string
	ttl     time.Duration
	timeout time.Duration
	logger  zerolog.Logger
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func newRedisCache(ctx context.Context, cfg CacheConfig, logger zerolog.Logger) *redisCache {
	logger = logger.With().Str("cache", CacheBackendRedis).Str("addr", cfg.Redis.Addr).Logger()

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.OperationTimeout,
		ReadTimeout:  cfg.Redis.OperationTimeout,
		WriteTimeout: cfg.Redis.OperationTimeout,
		MaxRetries:   -1,
	})

	c := &redisCache{
		client:  client,
		prefix:  cfg.Redis.KeyPrefix,
		ttl:     cfg.TTL,
		timeout: cfg.Redis.OperationTimeout,
		logger:  logger,
	}

	threshold := cfg.Breaker.FailureThreshold
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "recommend-cache-redis",
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("cache circuit breaker state changed")
		},
	})

	pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unreachable at startup, results will not be cached until it recovers")
	}

	return c
}

func (c *redisCache) Get(ctx context.Context, key string) ([]ItemSummary, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.breaker.Execute(func() ([]byte, error) {
		b, err := c.client.Get(ctx, c.prefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return b, err
	})
	if err != nil {
		c.logger.Debug().Err(err).Msg("cache get failed")
		return nil, false
	}
	if raw == nil {
		return nil, false
	}

	var items []ItemSummary
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return nil, false
	}
	return items, true
}

func (c *redisCache) Set(ctx context.Context, key string, items []ItemSummary) {
	payload, err := json.Marshal(items)
	if err != nil {
		c.logger.Warn().Err(err).Msg("cache encode failed")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err = c.breaker.Execute(func() ([]byte, error) {
		return nil, c.client.Set(ctx, c.prefix+key, payload, c.ttl).Err()
	})
	if err != nil {
		c.logger.Debug().Err(err).Msg("cache set failed")
	}
}

// EvictExpired is a no-op; redis expires keys itself.
func (c *redisCache) EvictExpired() int {
	return 0
}

// Len is unknown for a shared store and reported as 0.
func (c *redisCache) Len() int {
	return 0
}

func (c *redisCache) Backend() string {
	return CacheBackendRedis
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

// breakerState exposes the breaker state for tests and status reporting.
func (c *redisCache) breakerState() gobreaker.State {
	return c.breaker.State()
}
