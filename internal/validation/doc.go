// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by all handlers. Field errors are
// reported by their json or query tag name so messages match the wire format,
// and are converted to the API's VALIDATION_ERROR shape with ToAPIError.
//
// # Custom Tags
//
//   - swipe: "like" or "dislike", case-insensitive
//   - notblank: non-empty after trimming whitespace
//
// # Usage
//
//	type SwipeRequest struct {
//	    UserID     int    `json:"user_id" validate:"gt=0"`
//	    MovieTitle string `json:"movie_title" validate:"notblank,max=500"`
//	    SwipeType  string `json:"swipe_type" validate:"swipe"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
