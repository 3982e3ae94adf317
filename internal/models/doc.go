// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

// Package models defines the HTTP request and response shapes of the
// SwipeFlix API. Every endpoint answers with an APIResponse envelope.
package models
