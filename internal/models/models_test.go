// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestAPIResponse_ErrorEnvelope(t *testing.T) {
	t.Parallel()

	resp := APIResponse{
		Status:   "error",
		Metadata: Metadata{Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), RequestID: "r1"},
		Error:    &APIError{Code: "NOT_FOUND", Message: "no such route"},
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	out := string(data)
	for _, want := range []string{`"status":"error"`, `"data":null`, `"request_id":"r1"`, `"code":"NOT_FOUND"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
	for _, unwanted := range []string{"query_time_ms", "cached", "details"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("zero field %s should be omitted: %s", unwanted, out)
		}
	}
}

func TestSwipeRequest_MissingUserID(t *testing.T) {
	t.Parallel()

	var req SwipeRequest
	if err := json.Unmarshal([]byte(`{"movie_title":"Heat (1995)","swipe_type":"like"}`), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if req.UserID != nil {
		t.Errorf("UserID = %v, want nil for a missing field", *req.UserID)
	}

	if err := json.Unmarshal([]byte(`{"user_id":0}`), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if req.UserID == nil || *req.UserID != 0 {
		t.Error("explicit zero should decode to a non-nil pointer")
	}
}
