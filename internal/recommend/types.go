// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package recommend

import (
	"strings"
	"time"

	"github.com/tomtom215/swipeflix/internal/catalog"
)

// SwipeType is the binary feedback attached to a swipe event.
type SwipeType int

const (
	// SwipeLike records a positive swipe.
	SwipeLike SwipeType = iota + 1

	// SwipeDislike records a negative swipe.
	SwipeDislike
)

// String returns the wire name of the swipe type.
func (s SwipeType) String() string {
	switch s {
	case SwipeLike:
		return "like"
	case SwipeDislike:
		return "dislike"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the defined swipe types.
func (s SwipeType) Valid() bool {
	return s == SwipeLike || s == SwipeDislike
}

// ParseSwipeType parses "like" or "dislike", ignoring case and surrounding
// whitespace.
func ParseSwipeType(s string) (SwipeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "like":
		return SwipeLike, nil
	case "dislike":
		return SwipeDislike, nil
	default:
		return 0, invalid("swipe_type", `must be "like" or "dislike"`)
	}
}

// UserState is the hybrid recommender state a request was served in.
type UserState string

const (
	// StateCold means the user has no liked titles; results are purely
	// collaborative.
	StateCold UserState = "cold"

	// StateWarm means the user has at least one liked title; results merge
	// content and collaborative candidates.
	StateWarm UserState = "warm"
)

// ItemSummary is the public projection of a catalog item.
type ItemSummary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Genres      string `json:"genres"`
}

func summarize(item *catalog.Item) ItemSummary {
	return ItemSummary{
		ID:          item.ID,
		Title:       item.Title,
		ReleaseDate: item.ReleaseDate,
		Genres:      item.GenreTokens,
	}
}

// Request contains parameters for a recommendation request.
type Request struct {
	// UserID is the target user. Required, must be positive.
	UserID int

	// LastSwipedMovie optionally seeds content candidates for a warm user.
	LastSwipedMovie string

	// TopN is the number of results. Zero or negative uses the configured
	// default; larger than the configured maximum is clamped.
	TopN int

	// RequestID is used for logging. Generated when empty.
	RequestID string
}

// Response contains recommendation results.
type Response struct {
	Items    []ItemSummary    `json:"items"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID   string    `json:"request_id"`
	State       UserState `json:"state"`
	TopN        int       `json:"top_n"`
	ContentSeed string    `json:"content_seed,omitempty"`
	CacheHit    bool      `json:"cache_hit"`
	LatencyMS   int64     `json:"latency_ms"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Metrics contains engine counters.
type Metrics struct {
	RequestCount int64 `json:"request_count"`
	ColdRequests int64 `json:"cold_requests"`
	WarmRequests int64 `json:"warm_requests"`
	SwipeCount   int64 `json:"swipe_count"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	ErrorCount   int64 `json:"error_count"`
}

// Status describes the loaded dataset and built models.
type Status struct {
	Ready         bool          `json:"ready"`
	Users         int           `json:"users"`
	Items         int           `json:"items"`
	Ratings       int           `json:"ratings"`
	LedgerUsers   int           `json:"ledger_users"`
	CacheBackend  string        `json:"cache_backend"`
	CacheEntries  int           `json:"cache_entries"`
	BuildDuration time.Duration `json:"build_duration"`
	BuiltAt       time.Time     `json:"built_at"`
}
