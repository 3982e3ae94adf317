// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/swipeflix/internal/metrics"
	"github.com/tomtom215/swipeflix/internal/recommend"
)

const defaultMaintenanceInterval = time.Minute

// Engine is the part of the recommendation engine that needs periodic care.
type Engine interface {
	EvictExpired() int
	Status() recommend.Status
}

// Limiter is a keyed limiter whose idle entries can be dropped.
type Limiter interface {
	Cleanup() int
}

// MaintenanceService periodically evicts expired recommendation cache
// entries, drops idle per-user limiter buckets and refreshes the engine
// gauges.
type MaintenanceService struct {
	engine   Engine
	limiter  Limiter
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewMaintenanceService creates the service. limiter may be nil. A
// non-positive interval uses one minute.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewMaintenanceService(engine Engine, limiter Limiter, interval time.Duration, logger zerolog.Logger) *MaintenanceService {
	if interval <= 0 {
		interval = defaultMaintenanceInterval
	}
	return &MaintenanceService{
		engine:   engine,
		limiter:  limiter,
		interval: interval,
		logger:   logger.With().Str("service", "maintenance").Logger(),
		name:     "recommend-maintenance",
	}
}

// Serve implements suture.Service. It runs one pass immediately so the
// gauges are populated at startup, then one pass per interval.
func (s *MaintenanceService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("maintenance service starting")

	s.RunOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("maintenance service shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.RunOnce()
		}
	}
}

// RunOnce performs a single maintenance pass.
func (s *MaintenanceService) RunOnce() {
	evicted := s.engine.EvictExpired()
	metrics.RecordCacheEvictions(evicted)

	var dropped int
	if s.limiter != nil {
		dropped = s.limiter.Cleanup()
	}

	status := s.engine.Status()
	metrics.UpdateEngineGauges(status.LedgerUsers, status.CacheEntries)

	if evicted > 0 || dropped > 0 {
		s.logger.Debug().
			Int("cache_evicted", evicted).
			Int("limiters_dropped", dropped).
			Int("ledger_users", status.LedgerUsers).
			Msg("maintenance pass complete")
	}
}

// String names the service in supervisor events.
func (s *MaintenanceService) String() string {
	return s.name
}
