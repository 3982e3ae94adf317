// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package catalog

import (
	"io"
	"strings"
)

// Genres is the fixed genre vocabulary, in items table column order.
var Genres = [...]string{
	"unknown", "Action", "Adventure", "Animation", "Children", "Comedy",
	"Crime", "Documentary", "Drama", "Fantasy", "Film-Noir", "Horror",
	"Musical", "Mystery", "Romance", "Sci-Fi", "Thriller", "War", "Western",
}

// Item is a movie from the items table.
type Item struct {
	// ID is the unique item identifier.
	ID int `json:"id"`

	// Title is the trimmed movie title.
	Title string `json:"title"`

	// ReleaseDate is the theatrical release date as it appears in the source.
	ReleaseDate string `json:"release_date"`

	// VideoReleaseDate is the home video release date (usually empty).
	VideoReleaseDate string `json:"video_release_date,omitempty"`

	// IMDbURL is the external reference URL.
	IMDbURL string `json:"imdb_url,omitempty"`

	// Genres lists the names of the set genre flags in vocabulary order.
	Genres []string `json:"genres"`

	// GenreTokens is the space-joined Genres, computed once at load.
	GenreTokens string `json:"genre_tokens"`
}

// newItem builds an Item and derives its genre token string.
func newItem(id int, title, release, videoRelease, url string, flags []bool) Item {
	genres := make([]string, 0, 3)
	for i, set := range flags {
		if set && i < len(Genres) {
			genres = append(genres, Genres[i])
		}
	}
	return Item{
		ID:               id,
		Title:            strings.TrimSpace(title),
		ReleaseDate:      release,
		VideoReleaseDate: videoRelease,
		IMDbURL:          url,
		Genres:           genres,
		GenreTokens:      strings.Join(genres, " "),
	}
}

// Rating is one row of the ratings table.
type Rating struct {
	UserID    int     `json:"user_id"`
	ItemID    int     `json:"item_id"`
	Value     float64 `json:"rating"`
	Timestamp int64   `json:"timestamp"`
}

// Sources holds the raw tables a Catalog is loaded from.
type Sources struct {
	// Ratings is the tab-separated ratings table.
	Ratings io.Reader

	// Items is the pipe-separated, Latin-1 encoded items table.
	Items io.Reader
}

// ItemStats holds per-item rating aggregates.
type ItemStats struct {
	Count int
	Mean  float64
}
