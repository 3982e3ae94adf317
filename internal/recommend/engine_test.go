// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package recommend

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/swipeflix/internal/catalog"
)

func testItem(id int, title string, genres ...string) catalog.Item {
	return catalog.Item{
		ID:          id,
		Title:       title,
		ReleaseDate: "01-Jan-1995",
		Genres:      genres,
		GenreTokens: strings.Join(genres, " "),
	}
}

// testEngine builds an engine over five items and three users.
//
//	user 1: 10=5
//	user 2: 10=5, 11=4
//	user 3: 12=3, 13=4
func testEngine(t *testing.T, modify func(*Config)) *Engine {
	t.Helper()

	items := []catalog.Item{
		testItem(10, "Ten", "Action"),
		testItem(11, "Eleven", "Comedy"),
		testItem(12, "Twelve", "Drama"),
		testItem(13, "Thirteen", "Action", "Adventure"),
		testItem(14, "Fourteen", "Action"),
	}
	ratings := []catalog.Rating{
		{UserID: 1, ItemID: 10, Value: 5},
		{UserID: 2, ItemID: 10, Value: 5},
		{UserID: 2, ItemID: 11, Value: 4},
		{UserID: 3, ItemID: 12, Value: 3},
		{UserID: 3, ItemID: 13, Value: 4},
	}

	cat, err := catalog.New(items, ratings)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}

	cfg := DefaultConfig()
	cfg.Build.NumWorkers = 2
	if modify != nil {
		modify(cfg)
	}

	e, err := NewEngine(context.Background(), cfg, cat, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func titles(items []ItemSummary) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func assertTitles(t *testing.T, got []ItemSummary, want ...string) {
	t.Helper()

	g := titles(got)
	if strings.Join(g, ",") != strings.Join(want, ",") {
		t.Errorf("titles = %v, want %v", g, want)
	}
}

func mustRecommend(t *testing.T, e *Engine, req Request) *Response {
	t.Helper()

	resp, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend(%+v) error = %v", req, err)
	}
	return resp
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	items := "10|Ten|01-Jan-1995||url|0|1|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0\n" +
		"11|Eleven|01-Jan-1995||url|0|0|0|0|0|1|0|0|0|0|0|0|0|0|0|0|0|0|0\n"
	ratings := "1\t10\t5\t1\n2\t10\t5\t2\n2\t11\t4\t3\n"

	e, err := Initialize(context.Background(), nil, catalog.Sources{
		Ratings: strings.NewReader(ratings),
		Items:   strings.NewReader(items),
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	status := e.Status()
	if !status.Ready || status.Users != 2 || status.Items != 2 || status.Ratings != 3 {
		t.Errorf("Status() = %+v", status)
	}
	assertTitles(t, e.ListCatalog(), "Ten", "Eleven")
}

func TestInitialize_SchemaError(t *testing.T) {
	t.Parallel()

	_, err := Initialize(context.Background(), nil, catalog.Sources{
		Ratings: strings.NewReader("1\tten\t5\t1\n"),
		Items:   strings.NewReader("10|Ten|01-Jan-1995||url|0|1|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0\n"),
	}, zerolog.Nop())

	if !errors.Is(err, ErrSchema) {
		t.Fatalf("Initialize() error = %v, want ErrSchema", err)
	}

	var se *catalog.SchemaError
	if !errors.As(err, &se) || se.Column != "item_id" {
		t.Errorf("SchemaError = %+v, want column item_id", se)
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Ledger.Shards = 0
	if _, err := NewEngine(context.Background(), cfg, nil, zerolog.Nop()); err == nil {
		t.Error("NewEngine() should reject invalid config")
	}
}

func TestEngine_CollaborativeScenario(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)

	got, err := e.collaborativeItems(1, 1)
	if err != nil {
		t.Fatalf("collaborativeItems() error = %v", err)
	}
	assertTitles(t, got, "Eleven")

	got, err = e.collaborativeItems(1, 5)
	if err != nil {
		t.Fatalf("collaborativeItems() error = %v", err)
	}
	assertTitles(t, got, "Eleven", "Thirteen", "Twelve")
}

func TestEngine_ColdUserMatchesCollaborative(t *testing.T) {
	t.Parallel()

	e := testEngine(t, func(c *Config) { c.Cache.Enabled = false })

	for _, topN := range []int{1, 2, 5} {
		want, err := e.collaborativeItems(1, topN)
		if err != nil {
			t.Fatalf("collaborativeItems() error = %v", err)
		}
		resp := mustRecommend(t, e, Request{UserID: 1, TopN: topN})
		if resp.Metadata.State != StateCold {
			t.Errorf("State = %q, want cold", resp.Metadata.State)
		}
		assertTitles(t, resp.Items, titles(want)...)
	}

	// A user with only dislikes is still cold.
	if err := e.RecordSwipe(context.Background(), 1, "Eleven", SwipeDislike); err != nil {
		t.Fatalf("RecordSwipe() error = %v", err)
	}
	if resp := mustRecommend(t, e, Request{UserID: 1}); resp.Metadata.State != StateCold {
		t.Errorf("State = %q, want cold after dislike only", resp.Metadata.State)
	}
}

func TestEngine_UnknownUser(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)

	resp := mustRecommend(t, e, Request{UserID: 999})
	if len(resp.Items) != 0 {
		t.Errorf("unknown cold user should get no items, got %v", titles(resp.Items))
	}
}

func TestEngine_WarmUserSeedsFromSwipe(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)
	ctx := context.Background()

	if err := e.RecordSwipe(ctx, 5, "Ten", SwipeLike); err != nil {
		t.Fatalf("RecordSwipe() error = %v", err)
	}

	resp := mustRecommend(t, e, Request{UserID: 5, TopN: 3})
	if resp.Metadata.State != StateWarm {
		t.Errorf("State = %q, want warm", resp.Metadata.State)
	}
	if resp.Metadata.ContentSeed != "Ten" {
		t.Errorf("ContentSeed = %q, want Ten", resp.Metadata.ContentSeed)
	}
	assertTitles(t, resp.Items, "Fourteen", "Thirteen", "Eleven")
}

func TestEngine_LastSwipedOverridesFirstLike(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)

	if err := e.RecordSwipe(context.Background(), 1, "Eleven", SwipeLike); err != nil {
		t.Fatalf("RecordSwipe() error = %v", err)
	}

	resp := mustRecommend(t, e, Request{UserID: 1, TopN: 2, LastSwipedMovie: " Thirteen "})
	if resp.Metadata.ContentSeed != "Thirteen" {
		t.Errorf("ContentSeed = %q, want Thirteen", resp.Metadata.ContentSeed)
	}
	assertTitles(t, resp.Items, "Ten", "Fourteen")
}

func TestEngine_HybridDeduplicates(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)

	if err := e.RecordSwipe(context.Background(), 1, "Eleven", SwipeLike); err != nil {
		t.Fatalf("RecordSwipe() error = %v", err)
	}

	// Content(Eleven) = Ten, Twelve, Thirteen, Fourteen.
	// Collaborative(1) = Eleven, Thirteen, Twelve.
	resp := mustRecommend(t, e, Request{UserID: 1, TopN: 5})
	assertTitles(t, resp.Items, "Ten", "Twelve", "Thirteen", "Fourteen", "Eleven")

	seen := make(map[string]bool)
	for _, title := range titles(resp.Items) {
		if seen[title] {
			t.Errorf("title %q appears twice", title)
		}
		seen[title] = true
	}
}

func TestEngine_UnknownSeedDegrades(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)

	if err := e.RecordSwipe(context.Background(), 1, "Not In Catalog", SwipeLike); err != nil {
		t.Fatalf("RecordSwipe() error = %v", err)
	}

	resp := mustRecommend(t, e, Request{UserID: 1, TopN: 5})
	if resp.Metadata.State != StateWarm {
		t.Errorf("State = %q, want warm", resp.Metadata.State)
	}
	assertTitles(t, resp.Items, "Eleven", "Thirteen", "Twelve")
}

func TestEngine_SimilarItemsNotFound(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)

	if _, err := e.similarItems("Nope", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("similarItems() error = %v, want ErrNotFound", err)
	}

	got, err := e.similarItems("Ten", 10)
	if err != nil {
		t.Fatalf("similarItems() error = %v", err)
	}
	for _, item := range got {
		if item.Title == "Ten" {
			t.Error("an item must not be similar to itself in results")
		}
	}
	assertTitles(t, got, "Fourteen", "Thirteen", "Eleven", "Twelve")
}

func TestEngine_WarmDeterminism(t *testing.T) {
	t.Parallel()

	a := testEngine(t, func(c *Config) { c.Cache.Enabled = false })
	b := testEngine(t, func(c *Config) { c.Cache.Enabled = false; c.Build.NumWorkers = 1 })

	for _, e := range []*Engine{a, b} {
		if err := e.RecordSwipe(context.Background(), 2, "Twelve", SwipeLike); err != nil {
			t.Fatalf("RecordSwipe() error = %v", err)
		}
	}

	first := mustRecommend(t, a, Request{UserID: 2, TopN: 4})
	for i := 0; i < 5; i++ {
		again := mustRecommend(t, a, Request{UserID: 2, TopN: 4})
		assertTitles(t, again.Items, titles(first.Items)...)
	}
	other := mustRecommend(t, b, Request{UserID: 2, TopN: 4})
	assertTitles(t, other.Items, titles(first.Items)...)
}

func TestEngine_TopNLimits(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)

	if resp := mustRecommend(t, e, Request{UserID: 1, TopN: 0}); resp.Metadata.TopN != 5 {
		t.Errorf("TopN = %d, want default 5", resp.Metadata.TopN)
	}
	if resp := mustRecommend(t, e, Request{UserID: 1, TopN: 1000}); resp.Metadata.TopN != 100 {
		t.Errorf("TopN = %d, want clamp to 100", resp.Metadata.TopN)
	}
}

func TestEngine_Cache(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)
	ctx := context.Background()

	first := mustRecommend(t, e, Request{UserID: 1, TopN: 3})
	if first.Metadata.CacheHit {
		t.Error("first request should not be a cache hit")
	}

	second := mustRecommend(t, e, Request{UserID: 1, TopN: 3})
	if !second.Metadata.CacheHit {
		t.Error("identical request should be a cache hit")
	}
	assertTitles(t, second.Items, titles(first.Items)...)

	if err := e.RecordSwipe(ctx, 1, "Eleven", SwipeLike); err != nil {
		t.Fatalf("RecordSwipe() error = %v", err)
	}
	third := mustRecommend(t, e, Request{UserID: 1, TopN: 3})
	if third.Metadata.CacheHit || third.Metadata.State != StateWarm {
		t.Errorf("swipe should invalidate cached result, got %+v", third.Metadata)
	}

	m := e.GetMetrics()
	if m.CacheHits != 1 || m.CacheMisses != 2 || m.RequestCount != 3 || m.SwipeCount != 1 {
		t.Errorf("GetMetrics() = %+v", m)
	}
	if e.Status().CacheEntries != 2 {
		t.Errorf("CacheEntries = %d, want 2", e.Status().CacheEntries)
	}
}

func TestEngine_SharedCacheAcrossLedgers(t *testing.T) {
	t.Parallel()

	a := testEngine(t, nil)
	b := testEngine(t, nil)
	c := testEngine(t, nil)
	b.cache = a.cache
	c.cache = a.cache
	ctx := context.Background()

	// Same user and revision in every ledger, different first likes.
	for e, title := range map[*Engine]string{a: "Ten", b: "Eleven", c: "Ten"} {
		if err := e.RecordSwipe(ctx, 5, title, SwipeLike); err != nil {
			t.Fatalf("RecordSwipe() error = %v", err)
		}
	}

	first := mustRecommend(t, a, Request{UserID: 5})
	assertTitles(t, first.Items, "Fourteen", "Thirteen", "Eleven", "Twelve")

	other := mustRecommend(t, b, Request{UserID: 5})
	if other.Metadata.CacheHit {
		t.Error("a different content seed must not be served from the shared cache")
	}
	if other.Metadata.ContentSeed != "Eleven" {
		t.Errorf("ContentSeed = %q, want Eleven", other.Metadata.ContentSeed)
	}
	assertTitles(t, other.Items, "Ten", "Twelve", "Thirteen", "Fourteen")

	same := mustRecommend(t, c, Request{UserID: 5})
	if !same.Metadata.CacheHit {
		t.Error("an identical seed should hit the shared cache")
	}
	assertTitles(t, same.Items, titles(first.Items)...)
}

func TestEngine_RecordSwipeValidation(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)

	tests := []struct {
		name  string
		user  int
		title string
		swipe SwipeType
		field string
	}{
		{name: "zero user", user: 0, title: "Ten", swipe: SwipeLike, field: "user_id"},
		{name: "negative user", user: -1, title: "Ten", swipe: SwipeLike, field: "user_id"},
		{name: "blank title", user: 1, title: "   ", swipe: SwipeLike, field: "movie_title"},
		{name: "unknown swipe type", user: 1, title: "Ten", swipe: SwipeType(9), field: "swipe_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.RecordSwipe(context.Background(), tt.user, tt.title, tt.swipe)
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Errorf("RecordSwipe() error = %v, want ValidationError on %s", err, tt.field)
			}
		})
	}

	if e.Status().LedgerUsers != 0 {
		t.Error("rejected swipes must not create ledger entries")
	}
}

func TestEngine_RecommendValidation(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)

	if _, err := e.Recommend(context.Background(), Request{UserID: 0}); !errors.Is(err, ErrValidation) {
		t.Errorf("Recommend() error = %v, want ErrValidation", err)
	}
}

func TestEngine_LikedGenres(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)
	ctx := context.Background()

	if got := e.LikedGenres(8); len(got) != 0 {
		t.Errorf("LikedGenres() of unknown user = %v, want empty", got)
	}

	for _, title := range []string{"Ten", "Not In Catalog", "Thirteen", "Ten"} {
		if err := e.RecordSwipe(ctx, 8, title, SwipeLike); err != nil {
			t.Fatalf("RecordSwipe() error = %v", err)
		}
	}
	if err := e.RecordSwipe(ctx, 8, "Eleven", SwipeDislike); err != nil {
		t.Fatalf("RecordSwipe() error = %v", err)
	}

	got := e.LikedGenres(8)
	want := []string{"Action", "Action Adventure", "Action"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("LikedGenres() = %v, want %v", got, want)
	}
}

func TestEngine_ConcurrentSwipes(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)
	ctx := context.Background()

	const goroutines = 20
	const perGoroutine = 25

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				_ = e.RecordSwipe(ctx, 9, "Ten", SwipeLike)
				_, _ = e.Recommend(ctx, Request{UserID: 9, TopN: 2})
			}
		}()
	}
	wg.Wait()

	if got := len(e.LikedGenres(9)); got != goroutines*perGoroutine {
		t.Errorf("LikedGenres() length = %d, want %d", got, goroutines*perGoroutine)
	}
}

func TestEngine_Popular(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)

	// Ten has two ratings; Thirteen and Eleven have one at 4; Twelve one at 3.
	assertTitles(t, e.Popular(3), "Ten", "Eleven", "Thirteen")
}
