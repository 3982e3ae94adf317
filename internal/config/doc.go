// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

/*
Package config loads SwipeFlix configuration with Koanf v2.

# Configuration Sources

Sources are layered, later ones winning:
  - Built-in defaults
  - YAML file (CONFIG_PATH, ./config.yaml or /etc/swipeflix/config.yaml)
  - Environment variables

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default 8080), HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT

Data:
  - RATINGS_PATH: ratings file (default data/u.data)
  - ITEMS_PATH: movie metadata file (default data/u.item)

Recommendation engine:
  - RECOMMEND_DEFAULT_TOP_N, RECOMMEND_MAX_TOP_N
  - RECOMMEND_WORKERS, RECOMMEND_BUILD_TIMEOUT, RECOMMEND_LEDGER_SHARDS
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_BACKEND (memory or redis),
    RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_MAX
  - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB, REDIS_KEY_PREFIX, REDIS_TIMEOUT
  - REDIS_BREAKER_THRESHOLD, REDIS_BREAKER_TIMEOUT, REDIS_BREAKER_INTERVAL,
    REDIS_BREAKER_HALF_OPEN

API and security:
  - API_DEFAULT_PAGE_SIZE, API_MAX_PAGE_SIZE
  - CORS_ORIGINS (comma-separated)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - SWIPE_RATE, SWIPE_BURST: per-user swipe throttle

Supervision and logging:
  - SUPERVISOR_FAILURE_THRESHOLD, SUPERVISOR_FAILURE_DECAY,
    SUPERVISOR_FAILURE_BACKOFF, SUPERVISOR_SHUTDOWN_TIMEOUT,
    SUPERVISOR_MAINTENANCE_INTERVAL
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config
