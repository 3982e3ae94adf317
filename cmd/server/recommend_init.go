// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/swipeflix/internal/api"
	"github.com/tomtom215/swipeflix/internal/config"
	"github.com/tomtom215/swipeflix/internal/logging"
	"github.com/tomtom215/swipeflix/internal/metrics"
	"github.com/tomtom215/swipeflix/internal/middleware"
	"github.com/tomtom215/swipeflix/internal/recommend"
)

// swipeLimiterIdle is how long an unused per-user swipe bucket is kept.
const swipeLimiterIdle = 10 * time.Minute

// initRecommend loads the catalog and builds both similarity models.
// Malformed input files are reported as schema errors.
func initRecommend(ctx context.Context, cfg *config.Config) (*recommend.Engine, error) {
	engine, err := recommend.InitializeFromFiles(
		ctx, &cfg.Recommend, cfg.Data.RatingsPath, cfg.Data.ItemsPath, logging.Component("recommend"),
	)
	if err != nil {
		if errors.Is(err, recommend.ErrSchema) {
			return nil, fmt.Errorf("dataset rejected: %w", err)
		}
		return nil, err
	}

	status := engine.Status()
	metrics.RecordCatalog(status.Items, status.Users, status.Ratings, status.BuildDuration)

	logging.Info().
		Int("items", status.Items).
		Int("users", status.Users).
		Int("ratings", status.Ratings).
		Str("cache_backend", status.CacheBackend).
		Dur("build_duration", status.BuildDuration).
		Msg("Recommendation models built")

	return engine, nil
}

// newSwipeThrottle creates the per-user swipe limiter. A zero rate
// disables it.
func newSwipeThrottle(cfg *config.Config) *middleware.KeyedLimiter {
	return middleware.NewKeyedLimiter(cfg.Security.SwipeRate, cfg.Security.SwipeBurst, swipeLimiterIdle)
}

// newRouter wires handlers and middleware from configuration.
func newRouter(cfg *config.Config, engine api.Engine, throttle *middleware.KeyedLimiter) *api.Router {
	handlerCfg := api.DefaultHandlerConfig()
	handlerCfg.DefaultPageSize = cfg.API.DefaultPageSize
	handlerCfg.MaxPageSize = cfg.API.MaxPageSize
	handlerCfg.RequestTimeout = cfg.Server.Timeout

	mwCfg := api.DefaultChiMiddlewareConfig()
	mwCfg.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwCfg.RateLimitRequests = cfg.Security.RateLimitReqs
	mwCfg.RateLimitWindow = cfg.Security.RateLimitWindow
	mwCfg.RateLimitDisabled = cfg.Security.RateLimitDisabled

	return api.NewRouter(api.NewHandler(engine, throttle, handlerCfg), api.NewChiMiddleware(mwCfg))
}
