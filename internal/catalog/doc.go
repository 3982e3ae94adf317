// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

// Package catalog loads the movie catalog and rating history that the
// recommendation engine is built from.
//
// # Source Formats
//
// Two delimited tables are consumed, both without a header row:
//
//   - Ratings: tab-separated user_id, item_id, rating, timestamp
//   - Items: pipe-separated, ISO-8859-1 encoded item_id, title, release_date,
//     video_release_date, imdb_url followed by one 0/1 column per genre in
//     the order given by Genres
//
// Titles are whitespace-trimmed at load time and each item carries a derived
// genre token string (the space-joined names of its set genre flags).
//
// # Errors
//
// Any structural problem (too few columns, non-numeric ids or ratings, an
// empty table) is reported as a *SchemaError, which matches ErrSchema with
// errors.Is. Loading failures are fatal for the engine.
//
// # Thread Safety
//
// A Catalog is immutable after Load returns and is safe for concurrent reads.
package catalog
