// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

// Package logging provides the process-wide zerolog logger for SwipeFlix.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("items", n).Msg("catalog loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("swipe rejected")
//
// # Components
//
// Long-lived components take a zerolog.Logger by value and tag it:
//
//	logger := logging.Component("recommend")
//
// # Request Context
//
// The HTTP layer stores a request ID in the context; Ctx(ctx) returns a
// logger that includes it.
//
// # slog Bridge
//
// NewSlogLogger returns a *slog.Logger backed by zerolog for libraries that
// only speak slog, such as the supervisor's sutureslog hook.
//
// # Untrusted Values
//
// Sanitize escapes control characters and bounds the length of client
// supplied strings (titles, query values) before they are logged.
package logging
