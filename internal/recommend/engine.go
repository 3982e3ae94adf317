// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/swipeflix/internal/catalog"
	"github.com/tomtom215/swipeflix/internal/recommend/algorithms"
)

// Engine combines collaborative and content-based models with each user's
// swipe history. The catalog and both models are immutable after
// construction; the swipe ledger is the only mutable state.
// It is safe for concurrent use.
type Engine struct {
	// Configuration
	config *Config
	logger zerolog.Logger

	// Immutable dataset and models
	catalog       *catalog.Catalog
	matrix        *algorithms.InteractionMatrix
	collaborative *algorithms.UserCosine
	content       *algorithms.GenreTFIDF
	builtAt       time.Time
	buildDuration time.Duration

	// Mutable state
	ledger *Ledger
	cache  ResultCache

	// Metrics
	requestCount atomic.Int64
	coldRequests atomic.Int64
	warmRequests atomic.Int64
	swipeCount   atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
}

// Initialize loads both tables and builds the engine. A malformed table
// returns an error matching ErrSchema and no Engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Initialize(ctx context.Context, cfg *Config, src catalog.Sources, logger zerolog.Logger) (*Engine, error) {
	cat, err := catalog.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return NewEngine(ctx, cfg, cat, logger)
}

// InitializeFromFiles is Initialize over files on disk.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func InitializeFromFiles(ctx context.Context, cfg *Config, ratingsPath, itemsPath string, logger zerolog.Logger) (*Engine, error) {
	cat, err := catalog.LoadFiles(ctx, ratingsPath, itemsPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return NewEngine(ctx, cfg, cat, logger)
}

// NewEngine builds the interaction matrix and both similarity models from an
// already loaded catalog. The two models are built concurrently.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(ctx context.Context, cfg *Config, cat *catalog.Catalog, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil {
		return nil, errors.New("catalog is nil")
	}

	e := &Engine{
		config:        cfg,
		logger:        logger.With().Str("component", "recommend").Logger(),
		catalog:       cat,
		collaborative: algorithms.NewUserCosine(algorithms.UserCosineConfig{NumWorkers: cfg.Build.NumWorkers}),
		content:       algorithms.NewGenreTFIDF(algorithms.GenreTFIDFConfig{NumWorkers: cfg.Build.NumWorkers}),
		ledger:        NewLedger(cfg.Ledger.Shards),
	}

	if err := e.build(ctx); err != nil {
		return nil, err
	}

	resultCache, err := newResultCache(ctx, cfg.Cache, e.logger)
	if err != nil {
		return nil, fmt.Errorf("result cache: %w", err)
	}
	e.cache = resultCache

	return e, nil
}

// build constructs the matrix and both similarity models.
func (e *Engine) build(ctx context.Context) error {
	start := time.Now()

	if e.config.Build.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Build.Timeout)
		defer cancel()
	}

	e.matrix = algorithms.BuildInteractionMatrix(e.catalog.Ratings())

	items := e.catalog.Items()
	docs := make([]string, len(items))
	for i := range items {
		docs[i] = items[i].GenreTokens
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := e.collaborative.Build(gctx, e.matrix); err != nil {
			return fmt.Errorf("build collaborative model: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := e.content.Build(gctx, docs); err != nil {
			return fmt.Errorf("build content model: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	e.builtAt = time.Now()
	e.buildDuration = e.builtAt.Sub(start)

	e.logger.Info().
		Int("users", e.matrix.NumUsers()).
		Int("items", e.catalog.Len()).
		Int("ratings", len(e.catalog.Ratings())).
		Int("genre_terms", len(e.content.Terms())).
		Dur("duration", e.buildDuration).
		Msg("models built")

	return nil
}

// RecordSwipe appends a like or dislike to the user's swipe history.
// A malformed event returns an error matching ErrValidation and leaves the
// ledger unchanged.
func (e *Engine) RecordSwipe(ctx context.Context, userID int, title string, swipe SwipeType) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if userID <= 0 {
		return invalid("user_id", "must be a positive integer")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return invalid("movie_title", "must not be empty")
	}
	if !swipe.Valid() {
		return invalid("swipe_type", `must be "like" or "dislike"`)
	}

	revision := e.ledger.Append(userID, title, swipe)
	e.swipeCount.Add(1)

	e.logger.Debug().
		Int("user_id", userID).
		Str("title", title).
		Stringer("swipe_type", swipe).
		Uint64("revision", revision).
		Msg("swipe recorded")

	return nil
}

// Recommend produces up to TopN items for a user.
//
// A user without liked titles receives the collaborative result unchanged.
// A user with likes receives content-similar titles, seeded by
// LastSwipedMovie or else the first liked title, followed by the
// collaborative titles, deduplicated by title and truncated to TopN.
// Unknown users and unknown seed titles degrade to shorter results.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		e.errorCount.Add(1)
		return nil, err
	}
	if req.UserID <= 0 {
		e.errorCount.Add(1)
		return nil, invalid("user_id", "must be a positive integer")
	}

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req)

	history, known := e.ledger.History(req.UserID)
	state := StateCold
	var seed string
	if known && len(history.Liked) > 0 {
		state = StateWarm
		seed = req.LastSwipedMovie
		if seed == "" {
			seed = history.Liked[0]
		}
	}

	key := cacheKey(req, state, seed)
	if resp := e.tryGetCachedResponse(ctx, key, req, state, seed, start, logger); resp != nil {
		return resp, nil
	}

	var (
		items []ItemSummary
		err   error
	)
	if state == StateCold {
		e.coldRequests.Add(1)
		items, err = e.collaborativeItems(req.UserID, req.TopN)
	} else {
		e.warmRequests.Add(1)
		items, err = e.hybridItems(req.UserID, seed, req.TopN, logger)
	}
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("recommend: %w", err)
	}

	if e.cache != nil {
		e.cache.Set(ctx, key, items)
	}

	resp := &Response{
		Items:    items,
		Metadata: e.buildResponseMetadata(req, state, seed, start, false),
	}

	logger.Debug().
		Str("state", string(state)).
		Str("content_seed", seed).
		Int("returned", len(items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	if req.TopN <= 0 {
		req.TopN = e.config.Limits.DefaultTopN
	}
	if req.TopN > e.config.Limits.MaxTopN {
		req.TopN = e.config.Limits.MaxTopN
	}

	req.LastSwipedMovie = strings.TrimSpace(req.LastSwipedMovie)
	return req
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Int("user_id", req.UserID).
		Int("top_n", req.TopN).
		Logger()
}

//nolint:gocritic // hugeParam and logger by value are acceptable here
func (e *Engine) tryGetCachedResponse(ctx context.Context, key string, req Request, state UserState, seed string, start time.Time, logger zerolog.Logger) *Response {
	if e.cache == nil {
		return nil
	}

	items, ok := e.cache.Get(ctx, key)
	if !ok {
		e.cacheMisses.Add(1)
		return nil
	}

	e.cacheHits.Add(1)
	if state == StateCold {
		e.coldRequests.Add(1)
	} else {
		e.warmRequests.Add(1)
	}
	logger.Debug().Msg("cache hit")

	return &Response{
		Items:    items,
		Metadata: e.buildResponseMetadata(req, state, seed, start, true),
	}
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponseMetadata(req Request, state UserState, seed string, start time.Time, cacheHit bool) ResponseMetadata {
	return ResponseMetadata{
		RequestID:   req.RequestID,
		State:       state,
		TopN:        req.TopN,
		ContentSeed: seed,
		CacheHit:    cacheHit,
		LatencyMS:   time.Since(start).Milliseconds(),
		GeneratedAt: time.Now(),
	}
}

// hybridItems merges content candidates for seed with collaborative
// candidates for the user.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) hybridItems(userID int, seed string, topN int, logger zerolog.Logger) ([]ItemSummary, error) {
	content, err := e.similarItems(seed, topN)
	if errors.Is(err, ErrNotFound) {
		logger.Debug().Str("title", seed).Msg("content seed not in catalog")
		content = nil
	} else if err != nil {
		return nil, err
	}

	collaborative, err := e.collaborativeItems(userID, topN)
	if err != nil {
		return nil, err
	}

	return mergeByTitle(topN, content, collaborative), nil
}

// collaborativeItems resolves the collaborative model's item ids. Ids that
// are rated but missing from the catalog are skipped.
func (e *Engine) collaborativeItems(userID, topN int) ([]ItemSummary, error) {
	ids, err := e.collaborative.Recommend(userID, topN)
	if err != nil {
		return nil, err
	}

	out := make([]ItemSummary, 0, len(ids))
	for _, id := range ids {
		item, ok := e.catalog.ItemByID(id)
		if !ok {
			continue
		}
		out = append(out, summarize(&item))
	}
	return out, nil
}

// similarItems returns the catalog items most similar in genre to title.
// An unknown title returns an error matching ErrNotFound.
func (e *Engine) similarItems(title string, topN int) ([]ItemSummary, error) {
	idx, ok := e.catalog.IndexOfTitle(title)
	if !ok {
		return nil, fmt.Errorf("%w: title %q", ErrNotFound, title)
	}

	positions, err := e.content.Recommend(idx, topN)
	if err != nil {
		return nil, err
	}

	items := e.catalog.Items()
	out := make([]ItemSummary, len(positions))
	for i, p := range positions {
		out[i] = summarize(&items[p])
	}
	return out, nil
}

// mergeByTitle concatenates lists, keeps the first occurrence of each title
// and truncates to limit.
func mergeByTitle(limit int, lists ...[]ItemSummary) []ItemSummary {
	seen := make(map[string]struct{}, limit)
	out := make([]ItemSummary, 0, limit)
	for _, list := range lists {
		for _, item := range list {
			if len(out) == limit {
				return out
			}
			if _, dup := seen[item.Title]; dup {
				continue
			}
			seen[item.Title] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// ListCatalog returns every item in catalog order.
func (e *Engine) ListCatalog() []ItemSummary {
	items := e.catalog.Items()
	out := make([]ItemSummary, len(items))
	for i := range items {
		out[i] = summarize(&items[i])
	}
	return out
}

// LikedGenres returns the genre token string of every liked title in swipe
// order. Titles not in the catalog are skipped.
func (e *Engine) LikedGenres(userID int) []string {
	history, ok := e.ledger.History(userID)
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(history.Liked))
	for _, title := range history.Liked {
		item, ok := e.catalog.ItemByTitle(title)
		if !ok {
			continue
		}
		out = append(out, item.GenreTokens)
	}
	return out
}

// History returns a copy of the user's swipe history.
func (e *Engine) History(userID int) (History, bool) {
	return e.ledger.History(userID)
}

// Popular returns up to n items by rating count, then mean rating.
func (e *Engine) Popular(n int) []ItemSummary {
	items := e.catalog.Popular(n)
	out := make([]ItemSummary, len(items))
	for i := range items {
		out[i] = summarize(&items[i])
	}
	return out
}

// EvictExpired drops expired cache entries and returns how many were removed.
func (e *Engine) EvictExpired() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.EvictExpired()
}

// Status returns a snapshot of the dataset and model state.
func (e *Engine) Status() Status {
	s := Status{
		Ready:         e.collaborative.IsBuilt() && e.content.IsBuilt(),
		Users:         e.matrix.NumUsers(),
		Items:         e.catalog.Len(),
		Ratings:       len(e.catalog.Ratings()),
		LedgerUsers:   e.ledger.Users(),
		CacheBackend:  "disabled",
		BuildDuration: e.buildDuration,
		BuiltAt:       e.builtAt,
	}
	if e.cache != nil {
		s.CacheBackend = e.cache.Backend()
		s.CacheEntries = e.cache.Len()
	}
	return s
}

// GetMetrics returns the current engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount: e.requestCount.Load(),
		ColdRequests: e.coldRequests.Load(),
		WarmRequests: e.warmRequests.Load(),
		SwipeCount:   e.swipeCount.Load(),
		CacheHits:    e.cacheHits.Load(),
		CacheMisses:  e.cacheMisses.Load(),
		ErrorCount:   e.errorCount.Load(),
	}
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// Close releases the result cache.
func (e *Engine) Close() error {
	if e.cache == nil {
		return nil
	}
	return e.cache.Close()
}
