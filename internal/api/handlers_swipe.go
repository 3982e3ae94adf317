// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/swipeflix/internal/logging"
	"github.com/tomtom215/swipeflix/internal/metrics"
	"github.com/tomtom215/swipeflix/internal/models"
	"github.com/tomtom215/swipeflix/internal/recommend"
)

// Swipe handles POST /api/v1/swipe.
func (h *Handler) Swipe(w http.ResponseWriter, r *http.Request) {
	var req models.SwipeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    codeValidation,
			Message: "Invalid JSON body",
		}, err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	userID := *req.UserID

	if h.throttle != nil && !h.throttle.Allow(userID) {
		metrics.RecordRateLimitHit("swipe")
		w.Header().Set("Retry-After", "1")
		respondError(w, r, http.StatusTooManyRequests, &models.APIError{
			Code:    codeRateLimit,
			Message: "Too many swipes, slow down",
		}, nil)
		return
	}

	swipe, err := recommend.ParseSwipeType(req.SwipeType)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, validationAPIError(err), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RequestTimeout)
	defer cancel()

	if err := h.engine.RecordSwipe(ctx, userID, req.MovieTitle, swipe); err != nil {
		if errors.Is(err, recommend.ErrValidation) {
			respondError(w, r, http.StatusBadRequest, validationAPIError(err), nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, &models.APIError{
			Code:    codeInternal,
			Message: "Failed to record swipe",
		}, err)
		return
	}
	metrics.RecordSwipe(swipe.String())

	logging.Ctx(r.Context()).Debug().
		Int("user_id", userID).
		Str("title", logging.Sanitize(req.MovieTitle)).
		Str("swipe", swipe.String()).
		Msg("swipe accepted")

	respondSuccess(w, r, models.SwipeResult{
		Message:     "Swipe recorded",
		UserID:      userID,
		LikedGenres: h.engine.LikedGenres(userID),
	}, models.Metadata{})
}

// LikedGenres handles GET /api/v1/users/{userID}/liked-genres.
func (h *Handler) LikedGenres(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID <= 0 {
		respondError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    codeValidation,
			Message: "userID must be a positive integer",
			Details: map[string]interface{}{"field": "userID"},
		}, nil)
		return
	}

	respondSuccess(w, r, models.LikedGenresResult{
		UserID:      userID,
		LikedGenres: h.engine.LikedGenres(userID),
	}, models.Metadata{})
}

// validationAPIError converts an engine validation error to an error body.
func validationAPIError(err error) *models.APIError {
	apiErr := &models.APIError{Code: codeValidation, Message: err.Error()}
	var verr *recommend.ValidationError
	if errors.As(err, &verr) {
		apiErr.Details = map[string]interface{}{"field": verr.Field}
	}
	return apiErr
}
