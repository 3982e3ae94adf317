// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

// Package services adapts SwipeFlix components to suture.Service.
//
// HTTPServerService turns the blocking ListenAndServe/Shutdown pair into a
// context-driven Serve. MaintenanceService is a ticker loop over the
// recommendation engine's cache and the per-user swipe limiter.
//
// Both return ctx.Err() on shutdown and a wrapped error on failure, which
// tells the supervisor to restart them.
package services
