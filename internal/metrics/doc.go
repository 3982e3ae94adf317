// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

/*
Package metrics defines the Prometheus metrics exported by SwipeFlix.

All collectors are registered with the default registry through promauto and
are served by promhttp at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

API:
  - swipeflix_api_requests_total{method,endpoint,status_code}
  - swipeflix_api_request_duration_seconds{method,endpoint}
  - swipeflix_api_active_requests
  - swipeflix_api_rate_limit_hits_total{limiter}: "ip" or "swipe"

Swipes:
  - swipeflix_swipes_total{swipe_type}
  - swipeflix_ledger_users

Recommendations:
  - swipeflix_recommendations_total{state,source}: state is cold or warm,
    source is model, cache or fallback
  - swipeflix_recommendation_duration_seconds{state}
  - swipeflix_recommendation_errors_total{reason}
  - swipeflix_recommend_cache_entries
  - swipeflix_recommend_cache_evictions_total

Catalog:
  - swipeflix_catalog_size{kind}: items, users or ratings
  - swipeflix_model_build_duration_seconds

The endpoint label is the chi route pattern, not the raw path, so user IDs
in URLs do not create new series.
*/
package metrics
