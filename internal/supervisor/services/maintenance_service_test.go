// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/swipeflix/internal/metrics"
	"github.com/tomtom215/swipeflix/internal/recommend"
)

var _ suture.Service = (*MaintenanceService)(nil)

type fakeEngine struct {
	evictions atomic.Int32
	perPass   int
	users     int
}

func (f *fakeEngine) EvictExpired() int {
	f.evictions.Add(1)
	return f.perPass
}

func (f *fakeEngine) Status() recommend.Status {
	return recommend.Status{Ready: true, LedgerUsers: f.users, CacheEntries: 2}
}

type fakeLimiter struct {
	cleanups atomic.Int32
}

func (f *fakeLimiter) Cleanup() int {
	f.cleanups.Add(1)
	return 1
}

func TestMaintenanceService_RunOnce(t *testing.T) {
	engine := &fakeEngine{perPass: 3, users: 7}
	limiter := &fakeLimiter{}
	svc := NewMaintenanceService(engine, limiter, time.Hour, zerolog.Nop())

	before := testutil.ToFloat64(metrics.RecommendCacheEvictions)
	svc.RunOnce()

	if engine.evictions.Load() != 1 || limiter.cleanups.Load() != 1 {
		t.Errorf("evictions=%d cleanups=%d, want 1 and 1", engine.evictions.Load(), limiter.cleanups.Load())
	}
	if got := testutil.ToFloat64(metrics.RecommendCacheEvictions) - before; got != 3 {
		t.Errorf("evictions counter delta = %v, want 3", got)
	}
	if got := testutil.ToFloat64(metrics.LedgerUsers); got != 7 {
		t.Errorf("ledger users gauge = %v, want 7", got)
	}
}

func TestMaintenanceService_NilLimiterAndDefaults(t *testing.T) {
	svc := NewMaintenanceService(&fakeEngine{}, nil, 0, zerolog.Nop())
	if svc.interval != defaultMaintenanceInterval {
		t.Errorf("interval = %v, want %v", svc.interval, defaultMaintenanceInterval)
	}
	if svc.String() != "recommend-maintenance" {
		t.Errorf("String() = %q", svc.String())
	}
	svc.RunOnce()
}

func TestMaintenanceService_Serve(t *testing.T) {
	engine := &fakeEngine{}
	svc := NewMaintenanceService(engine, &fakeLimiter{}, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for engine.evictions.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() error = %v, want context.Canceled", err)
	}
	if engine.evictions.Load() < 3 {
		t.Errorf("ran %d passes, want at least 3", engine.evictions.Load())
	}
}
