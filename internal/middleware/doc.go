// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

/*
Package middleware provides HTTP middleware and throttling for the API.

Key Components:

  - RequestID: propagates or generates X-Request-ID and stores it in the
    request context for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight instrumentation
    labelled by chi route pattern
  - KeyedLimiter: per-user token buckets (golang.org/x/time/rate) used to
    throttle swipes

Both middlewares have the chi signature and are installed with r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
