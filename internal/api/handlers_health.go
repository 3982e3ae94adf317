// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/swipeflix/internal/models"
)

// HealthLive handles GET /api/v1/health/live.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, models.Metadata{})
}

// HealthReady handles GET /api/v1/health/ready. It answers 503 until both
// similarity models are built.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.engine.Status()

	code := http.StatusOK
	state := "ready"
	if !status.Ready {
		code = http.StatusServiceUnavailable
		state = "not_ready"
	}

	respondJSON(w, r, code, &models.APIResponse{
		Status: state,
		Data: map[string]interface{}{
			"engine": status,
			"uptime": time.Since(h.startTime).Seconds(),
		},
	})
}
