// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/swipeflix/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/swipeflix/config.yaml",
	"/etc/swipeflix/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Data: DataConfig{
			RatingsPath: "data/u.data",
			ItemsPath:   "data/u.item",
		},
		Recommend: *recommend.DefaultConfig(),
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			SwipeRate:       5,
			SwipeBurst:      20,
		},
		Supervisor: SupervisorConfig{
			FailureThreshold:    5,
			FailureDecay:        30,
			FailureBackoff:      15 * time.Second,
			ShutdownTimeout:     10 * time.Second,
			MaintenanceInterval: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// RATINGS_PATH -> data.ratings_path, REDIS_ADDR -> recommend.cache.redis.addr
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" when none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed as comma-separated lists when set from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Data
	"ratings_path": "data.ratings_path",
	"items_path":   "data.items_path",

	// Recommendation engine
	"recommend_default_top_n": "recommend.limits.default_top_n",
	"recommend_max_top_n":     "recommend.limits.max_top_n",
	"recommend_workers":       "recommend.build.num_workers",
	"recommend_build_timeout": "recommend.build.timeout",
	"recommend_ledger_shards": "recommend.ledger.shards",
	"recommend_cache_enabled": "recommend.cache.enabled",
	"recommend_cache_backend": "recommend.cache.backend",
	"recommend_cache_ttl":     "recommend.cache.ttl",
	"recommend_cache_max":     "recommend.cache.max_entries",
	"redis_addr":              "recommend.cache.redis.addr",
	"redis_password":          "recommend.cache.redis.password",
	"redis_db":                "recommend.cache.redis.db",
	"redis_key_prefix":        "recommend.cache.redis.key_prefix",
	"redis_timeout":           "recommend.cache.redis.operation_timeout",
	"redis_breaker_threshold": "recommend.cache.breaker.failure_threshold",
	"redis_breaker_timeout":   "recommend.cache.breaker.timeout",
	"redis_breaker_interval":  "recommend.cache.breaker.interval",
	"redis_breaker_half_open": "recommend.cache.breaker.max_requests",

	// API
	"api_default_page_size": "api.default_page_size",
	"api_max_page_size":     "api.max_page_size",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"swipe_rate":          "security.swipe_rate",
	"swipe_burst":         "security.swipe_burst",

	// Supervisor
	"supervisor_failure_threshold":    "supervisor.failure_threshold",
	"supervisor_failure_decay":        "supervisor.failure_decay",
	"supervisor_failure_backoff":      "supervisor.failure_backoff",
	"supervisor_shutdown_timeout":     "supervisor.shutdown_timeout",
	"supervisor_maintenance_interval": "supervisor.maintenance_interval",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
