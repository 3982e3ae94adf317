// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/swipeflix/internal/logging"
	"github.com/tomtom215/swipeflix/internal/metrics"
	"github.com/tomtom215/swipeflix/internal/models"
	"github.com/tomtom215/swipeflix/internal/recommend"
)

// Recommendations handles GET /api/v1/recommendations.
//
// Query parameters: user_id (required), last_swiped_movie, top_n. When the
// models return nothing, or fail for a reason other than bad input, the most
// popular items are served with fallback set.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, apiErr := queryInt(r, "user_id", 0)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	topN, apiErr := queryInt(r, "top_n", 0)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	query := models.RecommendationsQuery{
		UserID:          userID,
		LastSwipedMovie: r.URL.Query().Get("last_swiped_movie"),
		TopN:            topN,
	}
	if apiErr := validateRequest(&query); apiErr != nil {
		metrics.RecordRecommendationError("validation")
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RequestTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		UserID:          query.UserID,
		LastSwipedMovie: query.LastSwipedMovie,
		TopN:            query.TopN,
		RequestID:       logging.RequestIDFromContext(r.Context()),
	})
	switch {
	case errors.Is(err, recommend.ErrValidation):
		metrics.RecordRecommendationError("validation")
		respondError(w, r, http.StatusBadRequest, validationAPIError(err), nil)
		return
	case err != nil:
		metrics.RecordRecommendationError("engine")
		logging.Ctx(r.Context()).Warn().Err(err).Int("user_id", query.UserID).
			Msg("recommendation failed, serving popular items")
		h.respondFallback(w, r, recommend.ResponseMetadata{}, start)
		return
	}

	if len(resp.Items) == 0 {
		h.respondFallback(w, r, resp.Metadata, start)
		return
	}

	source := "model"
	if resp.Metadata.CacheHit {
		source = "cache"
	}
	metrics.RecordRecommendation(string(resp.Metadata.State), source, time.Since(start))

	respondSuccess(w, r, models.RecommendationsResult{
		Items:   resp.Items,
		Details: resp.Metadata,
	}, models.Metadata{
		QueryTimeMS: resp.Metadata.LatencyMS,
		Cached:      resp.Metadata.CacheHit,
	})
}

func (h *Handler) respondFallback(w http.ResponseWriter, r *http.Request, meta recommend.ResponseMetadata, start time.Time) {
	state := meta.State
	if state == "" {
		state = recommend.StateCold
	}
	metrics.RecordRecommendation(string(state), "fallback", time.Since(start))

	respondSuccess(w, r, models.RecommendationsResult{
		Items:    h.engine.Popular(h.config.FallbackSize),
		Fallback: true,
		Details:  meta,
	}, models.Metadata{QueryTimeMS: time.Since(start).Milliseconds()})
}
