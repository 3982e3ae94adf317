// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

/*
Package api provides the SwipeFlix HTTP API on the chi router.

# Endpoints

	POST /api/v1/swipe                         record a like or dislike
	GET  /api/v1/recommendations               hybrid recommendations
	GET  /api/v1/movies                        paged (optionally shuffled) catalog
	GET  /api/v1/users/{userID}/liked-genres   genres of liked titles
	GET  /api/v1/health/live                   liveness
	GET  /api/v1/health/ready                  503 until the models are built
	GET  /metrics                              Prometheus metrics

Every endpoint except /metrics answers with a models.APIResponse envelope.

# Middleware

Global: request ID, RealIP, Recoverer, CORS (go-chi/cors) and Prometheus
instrumentation. The /api/v1 data routes are additionally rate limited per
client IP with go-chi/httprate, and swipes are throttled per user with a
token bucket (middleware.KeyedLimiter).

# Errors

	400 VALIDATION_ERROR   malformed JSON or parameters, unknown swipe type
	404 NOT_FOUND          unknown route
	429 RATE_LIMITED       per-IP or per-user limit
	500 INTERNAL_ERROR     unexpected engine failure

A recommendation request that yields nothing, or fails inside the engine,
is answered with the most popular movies and "fallback": true.
*/
package api
