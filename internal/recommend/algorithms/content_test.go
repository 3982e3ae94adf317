// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package algorithms

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
)

var contentDocs = []string{
	"Action Adventure",
	"Action",
	"Comedy",
	"",
	"Sci-Fi Film-Noir",
}

func buildGenreTFIDF(t *testing.T) *GenreTFIDF {
	t.Helper()

	c := NewGenreTFIDF(GenreTFIDFConfig{NumWorkers: 2})
	if err := c.Build(context.Background(), contentDocs); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return c
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "lowercases", doc: "Action Comedy", want: "action comedy"},
		{name: "splits hyphens", doc: "Sci-Fi Film-Noir", want: "sci fi film noir"},
		{name: "drops single characters", doc: "a B cd", want: "cd"},
		{name: "empty", doc: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := strings.Join(Tokenize(tt.doc), " "); got != tt.want {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.doc, got, tt.want)
			}
		})
	}
}

func TestGenreTFIDF_Build(t *testing.T) {
	t.Parallel()

	c := buildGenreTFIDF(t)

	wantTerms := "action adventure comedy fi film noir sci"
	if got := strings.Join(c.Terms(), " "); got != wantTerms {
		t.Errorf("Terms() = %q, want %q", got, wantTerms)
	}

	// idf(action) = ln(6/3) + 1, idf(adventure) = ln(6/2) + 1.
	action := math.Log(2) + 1
	adventure := math.Log(3) + 1
	norm := math.Sqrt(action*action + adventure*adventure)

	w := c.Weights(0)
	if math.Abs(w["action"]-action/norm) > 1e-12 {
		t.Errorf("weight(action) = %v, want %v", w["action"], action/norm)
	}
	if math.Abs(w["adventure"]-adventure/norm) > 1e-12 {
		t.Errorf("weight(adventure) = %v, want %v", w["adventure"], adventure/norm)
	}

	if len(c.Weights(3)) != 0 {
		t.Errorf("empty document should have no weights, got %v", c.Weights(3))
	}
}

func TestGenreTFIDF_Similarity(t *testing.T) {
	t.Parallel()

	c := buildGenreTFIDF(t)

	for i := range contentDocs {
		if got, _ := c.Similarity(i, i); got != 1 {
			t.Errorf("Similarity(%d, %d) = %v, want 1", i, i, got)
		}
		for j := range contentDocs {
			a, _ := c.Similarity(i, j)
			b, _ := c.Similarity(j, i)
			if a != b {
				t.Errorf("Similarity(%d, %d) = %v != Similarity(%d, %d) = %v", i, j, a, j, i, b)
			}
		}
	}

	if got, _ := c.Similarity(0, 1); got <= 0 || got >= 1 {
		t.Errorf("Similarity(0, 1) = %v, want in (0, 1)", got)
	}
	if got, _ := c.Similarity(0, 2); got != 0 {
		t.Errorf("Similarity(0, 2) = %v, want 0", got)
	}
	if _, ok := c.Similarity(0, 99); ok {
		t.Error("Similarity out of range should report false")
	}
}

func TestGenreTFIDF_Recommend(t *testing.T) {
	t.Parallel()

	c := buildGenreTFIDF(t)

	tests := []struct {
		name  string
		index int
		topN  int
		want  []int
	}{
		{name: "best match first then catalog order", index: 1, topN: 2, want: []int{0, 2}},
		{name: "all zero row keeps catalog order", index: 3, topN: 3, want: []int{0, 1, 2}},
		{name: "never returns self", index: 4, topN: 10, want: []int{0, 1, 2, 3}},
		{name: "out of range", index: 42, topN: 3, want: []int{}},
		{name: "non-positive topN", index: 0, topN: 0, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.Recommend(tt.index, tt.topN)
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Recommend(%d, %d) = %v, want %v", tt.index, tt.topN, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Recommend(%d, %d) = %v, want %v", tt.index, tt.topN, got, tt.want)
					break
				}
			}
		})
	}
}

func TestGenreTFIDF_NotBuilt(t *testing.T) {
	t.Parallel()

	c := NewGenreTFIDF(DefaultGenreTFIDFConfig())
	if _, err := c.Recommend(0, 5); !errors.Is(err, ErrNotBuilt) {
		t.Errorf("Recommend() error = %v, want ErrNotBuilt", err)
	}
}

func TestGenreTFIDF_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewGenreTFIDF(DefaultGenreTFIDFConfig())
	if err := c.Build(ctx, contentDocs); !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want context.Canceled", err)
	}
}
