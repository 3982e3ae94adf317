// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package models

import (
	"time"

	"github.com/tomtom215/swipeflix/internal/recommend"
)

// APIResponse is the envelope of every HTTP response.
//
// Status is "success" or "error". Error is set only for errors.
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "request_id": "..."},
//	  "error": {"code": "VALIDATION_ERROR", "message": "swipe_type must be \"like\" or \"dislike\""}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is the error body.
//
// Codes:
//   - VALIDATION_ERROR: invalid body or parameters
//   - NOT_FOUND: unknown route or resource
//   - RATE_LIMITED: per-IP or per-user limit exceeded
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SwipeRequest is the body of POST /api/v1/swipe. UserID is a pointer so a
// missing field can be told apart from zero.
type SwipeRequest struct {
	UserID     *int   `json:"user_id" validate:"required,gt=0"`
	MovieTitle string `json:"movie_title" validate:"notblank,max=500"`
	SwipeType  string `json:"swipe_type" validate:"swipe"`
}

// SwipeResult is the data of a successful swipe.
type SwipeResult struct {
	Message     string   `json:"message"`
	UserID      int      `json:"user_id"`
	LikedGenres []string `json:"liked_genres"`
}

// RecommendationsQuery holds the query parameters of GET /api/v1/recommendations.
type RecommendationsQuery struct {
	UserID          int    `query:"user_id" validate:"gt=0"`
	LastSwipedMovie string `query:"last_swiped_movie" validate:"max=500"`
	TopN            int    `query:"top_n" validate:"gte=0"`
}

// RecommendationsResult is the data of GET /api/v1/recommendations.
// Fallback is true when the models produced nothing and popular items were
// served instead.
type RecommendationsResult struct {
	Items    []recommend.ItemSummary    `json:"items"`
	Fallback bool                       `json:"fallback"`
	Details  recommend.ResponseMetadata `json:"details"`
}

// MoviesQuery holds the query parameters of GET /api/v1/movies.
type MoviesQuery struct {
	Page    int   `query:"page" validate:"gte=1"`
	PerPage int   `query:"per_page" validate:"gte=1"`
	Shuffle bool  `query:"shuffle"`
	Seed    int64 `query:"seed"`
}

// MoviesPage is the data of GET /api/v1/movies.
type MoviesPage struct {
	Movies     []recommend.ItemSummary `json:"movies"`
	Page       int                     `json:"page"`
	PerPage    int                     `json:"per_page"`
	Total      int                     `json:"total"`
	TotalPages int                     `json:"total_pages"`
}

// LikedGenresResult is the data of GET /api/v1/users/{userID}/liked-genres.
type LikedGenresResult struct {
	UserID      int      `json:"user_id"`
	LikedGenres []string `json:"liked_genres"`
}
