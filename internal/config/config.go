// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/swipeflix/internal/recommend"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML file (config.yaml)
//  3. Environment Variables: Override any mapped setting
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Data       DataConfig       `koanf:"data"`
	Recommend  recommend.Config `koanf:"recommend"`
	API        APIConfig        `koanf:"api"`
	Security   SecurityConfig   `koanf:"security"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the bind address.
	// Default: 0.0.0.0
	Host string `koanf:"host"`

	// Port is the listen port.
	// Default: 8080
	Port int `koanf:"port"`

	// Timeout applies to request reads and response writes.
	// Default: 30s
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DataConfig locates the MovieLens-style catalog files.
type DataConfig struct {
	// RatingsPath is the tab-separated ratings file (user, item, rating, timestamp).
	// Default: data/u.data
	RatingsPath string `koanf:"ratings_path"`

	// ItemsPath is the pipe-separated movie metadata file.
	// Default: data/u.item
	ItemsPath string `koanf:"items_path"`
}

// APIConfig holds catalog pagination limits.
type APIConfig struct {
	// DefaultPageSize is used when a catalog request has no per_page.
	// Default: 20
	DefaultPageSize int `koanf:"default_page_size"`

	// MaxPageSize caps per_page.
	// Default: 100
	MaxPageSize int `koanf:"max_page_size"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	// CORSOrigins lists allowed origins. "*" allows any origin.
	// Default: ["*"]
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitReqs is the number of requests per client IP per window.
	// Default: 100
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// RateLimitWindow is the per-IP rate limit window.
	// Default: 1m
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// RateLimitDisabled turns off per-IP rate limiting.
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`

	// SwipeRate is the sustained number of swipes per second one user may record.
	// Zero disables the per-user throttle.
	// Default: 5
	SwipeRate float64 `koanf:"swipe_rate"`

	// SwipeBurst is the number of swipes one user may record at once.
	// Default: 20
	SwipeBurst int `koanf:"swipe_burst"`
}

// SupervisorConfig holds process supervision settings.
type SupervisorConfig struct {
	// FailureThreshold is the number of failures before entering backoff.
	// Default: 5
	FailureThreshold float64 `koanf:"failure_threshold"`

	// FailureDecay is the rate at which failures decay in seconds.
	// Default: 30
	FailureDecay float64 `koanf:"failure_decay"`

	// FailureBackoff is the duration to wait when the threshold is exceeded.
	// Default: 15s
	FailureBackoff time.Duration `koanf:"failure_backoff"`

	// ShutdownTimeout is the maximum time to wait for services to stop.
	// Default: 10s
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// MaintenanceInterval is the period of cache eviction and throttle cleanup.
	// Default: 1m
	MaintenanceInterval time.Duration `koanf:"maintenance_interval"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Addr returns the HTTP listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
