// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package recommend

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits contains result size limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`

	// Build contains model construction parameters.
	Build BuildConfig `json:"build" koanf:"build"`

	// Ledger contains swipe ledger parameters.
	Ledger LedgerConfig `json:"ledger" koanf:"ledger"`

	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache" koanf:"cache"`
}

// LimitsConfig contains result size limits.
type LimitsConfig struct {
	// DefaultTopN is used when a request asks for zero or fewer results.
	// Default: 5.
	DefaultTopN int `json:"default_top_n" koanf:"default_top_n"`

	// MaxTopN is the largest result size a request may ask for.
	// Default: 100.
	MaxTopN int `json:"max_top_n" koanf:"max_top_n"`
}

// BuildConfig contains model construction parameters.
type BuildConfig struct {
	// NumWorkers is the number of goroutines per similarity model build.
	// Zero means runtime.NumCPU().
	NumWorkers int `json:"num_workers" koanf:"num_workers"`

	// Timeout bounds the whole startup build. Zero means no limit.
	// Default: 5m.
	Timeout time.Duration `json:"timeout" koanf:"timeout"`
}

// LedgerConfig contains swipe ledger parameters.
type LedgerConfig struct {
	// Shards is the number of independently locked ledger partitions.
	// Default: 64.
	Shards int `json:"shards" koanf:"shards"`
}

// CacheConfig contains result caching parameters.
type CacheConfig struct {
	// Enabled controls whether caching is active.
	// Default: true.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// Backend selects the cache store: "memory" or "redis".
	// Default: memory.
	Backend string `json:"backend" koanf:"backend"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl" koanf:"ttl"`

	// MaxEntries is the maximum number of entries in the memory backend.
	// Default: 10000.
	MaxEntries int `json:"max_entries" koanf:"max_entries"`

	// Redis configures the redis backend.
	Redis RedisConfig `json:"redis" koanf:"redis"`

	// Breaker configures the circuit breaker around the redis backend.
	Breaker BreakerConfig `json:"breaker" koanf:"breaker"`
}

// RedisConfig contains redis connection parameters.
type RedisConfig struct {
	Addr             string        `json:"addr" koanf:"addr"`
	Password         string        `json:"-" koanf:"password"`
	DB               int           `json:"db" koanf:"db"`
	KeyPrefix        string        `json:"key_prefix" koanf:"key_prefix"`
	OperationTimeout time.Duration `json:"operation_timeout" koanf:"operation_timeout"`
}

// BreakerConfig contains circuit breaker parameters.
type BreakerConfig struct {
	// MaxRequests is the number of requests allowed in half-open state.
	MaxRequests uint32 `json:"max_requests" koanf:"max_requests"`

	// Interval is the cyclic period of the closed state for clearing counts.
	Interval time.Duration `json:"interval" koanf:"interval"`

	// Timeout is how long the breaker stays open before half-open.
	Timeout time.Duration `json:"timeout" koanf:"timeout"`

	// FailureThreshold is the number of consecutive failures before opening.
	FailureThreshold uint32 `json:"failure_threshold" koanf:"failure_threshold"`
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultTopN: 5,
			MaxTopN:     100,
		},
		Build: BuildConfig{
			NumWorkers: 0,
			Timeout:    5 * time.Minute,
		},
		Ledger: LedgerConfig{
			Shards: 64,
		},
		Cache: CacheConfig{
			Enabled:    true,
			Backend:    CacheBackendMemory,
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
			Redis: RedisConfig{
				Addr:             "localhost:6379",
				KeyPrefix:        "swipeflix:rec:",
				OperationTimeout: 100 * time.Millisecond,
			},
			Breaker: BreakerConfig{
				MaxRequests:      3,
				Interval:         time.Minute,
				Timeout:          30 * time.Second,
				FailureThreshold: 5,
			},
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	if c.Limits.DefaultTopN < 1 {
		return fmt.Errorf("limits.default_top_n must be positive, got %d", c.Limits.DefaultTopN)
	}
	if c.Limits.MaxTopN < c.Limits.DefaultTopN {
		return fmt.Errorf("limits.max_top_n (%d) must be >= default_top_n (%d)", c.Limits.MaxTopN, c.Limits.DefaultTopN)
	}

	if c.Build.NumWorkers < 0 {
		return fmt.Errorf("build.num_workers must be non-negative, got %d", c.Build.NumWorkers)
	}
	if c.Build.Timeout < 0 {
		return fmt.Errorf("build.timeout must be non-negative, got %v", c.Build.Timeout)
	}

	if c.Ledger.Shards < 1 {
		return fmt.Errorf("ledger.shards must be positive, got %d", c.Ledger.Shards)
	}

	if !c.Cache.Enabled {
		return nil
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
	}

	switch c.Cache.Backend {
	case CacheBackendMemory:
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	case CacheBackendRedis:
		if c.Cache.Redis.Addr == "" {
			return fmt.Errorf("cache.redis.addr is required for the redis backend")
		}
		if c.Cache.Redis.OperationTimeout <= 0 {
			return fmt.Errorf("cache.redis.operation_timeout must be positive, got %v", c.Cache.Redis.OperationTimeout)
		}
		if c.Cache.Breaker.FailureThreshold < 1 {
			return fmt.Errorf("cache.breaker.failure_threshold must be positive, got %d", c.Cache.Breaker.FailureThreshold)
		}
	default:
		return fmt.Errorf("cache.backend must be %q or %q, got %q", CacheBackendMemory, CacheBackendRedis, c.Cache.Backend)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	clone := *c
	return &clone
}

// MarshalJSON renders durations as strings.
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	type build struct {
		NumWorkers int    `json:"num_workers" koanf:"num_workers"`
		Timeout    string `json:"timeout" koanf:"timeout"`
	}
	type cache struct {
		Enabled    bool          `json:"enabled" koanf:"enabled"`
		Backend    string        `json:"backend" koanf:"backend"`
		TTL        string        `json:"ttl" koanf:"ttl"`
		MaxEntries int           `json:"max_entries" koanf:"max_entries"`
		Redis      RedisConfig   `json:"redis" koanf:"redis"`
		Breaker    BreakerConfig `json:"breaker" koanf:"breaker"`
	}
	return json.Marshal(&struct {
		*Alias
		Build build `json:"build" koanf:"build"`
		Cache cache `json:"cache" koanf:"cache"`
	}{
		Alias: (*Alias)(c),
		Build: build{
			NumWorkers: c.Build.NumWorkers,
			Timeout:    c.Build.Timeout.String(),
		},
		Cache: cache{
			Enabled:    c.Cache.Enabled,
			Backend:    c.Cache.Backend,
			TTL:        c.Cache.TTL.String(),
			MaxEntries: c.Cache.MaxEntries,
			Redis:      c.Cache.Redis,
			Breaker:    c.Cache.Breaker,
		},
	})
}
