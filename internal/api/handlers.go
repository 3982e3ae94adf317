// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package api

import (
	"context"
	"time"

	"github.com/tomtom215/swipeflix/internal/middleware"
	"github.com/tomtom215/swipeflix/internal/recommend"
)

// Engine is the recommendation engine surface used by the handlers.
type Engine interface {
	RecordSwipe(ctx context.Context, userID int, title string, swipe recommend.SwipeType) error
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	ListCatalog() []recommend.ItemSummary
	LikedGenres(userID int) []string
	Popular(n int) []recommend.ItemSummary
	Status() recommend.Status
}

// HandlerConfig holds handler limits.
type HandlerConfig struct {
	// DefaultPageSize and MaxPageSize bound GET /movies pages.
	DefaultPageSize int
	MaxPageSize     int

	// FallbackSize is the number of popular items served when the models
	// return nothing.
	FallbackSize int

	// RequestTimeout bounds a single engine call.
	RequestTimeout time.Duration
}

// DefaultHandlerConfig returns the default handler limits.
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		DefaultPageSize: 20,
		MaxPageSize:     100,
		FallbackSize:    10,
		RequestTimeout:  10 * time.Second,
	}
}

// Handler serves the SwipeFlix HTTP API.
type Handler struct {
	engine    Engine
	throttle  *middleware.KeyedLimiter
	config    HandlerConfig
	startTime time.Time
}

// NewHandler creates a handler. throttle may be nil to disable per-user
// swipe limiting.
func NewHandler(engine Engine, throttle *middleware.KeyedLimiter, config HandlerConfig) *Handler {
	defaults := DefaultHandlerConfig()
	if config.DefaultPageSize < 1 {
		config.DefaultPageSize = defaults.DefaultPageSize
	}
	if config.MaxPageSize < config.DefaultPageSize {
		config.MaxPageSize = config.DefaultPageSize
	}
	if config.FallbackSize < 1 {
		config.FallbackSize = defaults.FallbackSize
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = defaults.RequestTimeout
	}
	return &Handler{
		engine:    engine,
		throttle:  throttle,
		config:    config,
		startTime: time.Now(),
	}
}
