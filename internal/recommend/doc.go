// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

// Package recommend provides the hybrid movie recommendation engine.
//
// The engine combines two similarity models built once at startup with the
// like/dislike history each user accumulates while swiping:
//
//   - Collaborative: cosine similarity between users' rating rows
//     (algorithms.UserCosine)
//   - Content: cosine similarity between TF-IDF vectors of item genres
//     (algorithms.GenreTFIDF)
//
// # Architecture
//
//	catalog.Load ──▶ InteractionMatrix ──▶ UserCosine ─┐
//	      │                                           ├──▶ Engine.Recommend
//	      └────────▶ GenreTFIDF ──────────────────────┘          ▲
//	                                                             │
//	Engine.RecordSwipe ──▶ Ledger ───────────────────────────────┘
//
// # User States
//
// A user with no liked titles is cold and receives the collaborative result
// unchanged. Once the user has liked at least one title they are warm: the
// result starts with titles similar in genre to the last swiped title (or
// the first liked title when none is given), continues with the
// collaborative titles, and is deduplicated by title.
//
// # Caching
//
// Results may be cached in memory or in redis. Cache keys carry the user's
// ledger revision, so a new swipe makes earlier entries unreachable.
//
// # Thread Safety
//
// The catalog and both models are read-only after construction. The ledger
// is sharded by user id with one RWMutex per shard, and every read returns
// a copy. All Engine methods are safe for concurrent use.
//
// # Usage
//
//	engine, err := recommend.InitializeFromFiles(ctx, recommend.DefaultConfig(),
//	    "data/u.data", "data/u.item", logger)
//	if err != nil {
//	    return err // errors.Is(err, recommend.ErrSchema) for malformed input
//	}
//
//	_ = engine.RecordSwipe(ctx, 5, "Toy Story (1995)", recommend.SwipeLike)
//	resp, err := engine.Recommend(ctx, recommend.Request{UserID: 5, TopN: 5})
package recommend
