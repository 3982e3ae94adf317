// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package catalog

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	sourceRatings = "ratings"
	sourceItems   = "items"

	// ratingColumns is the minimum number of ratings table columns.
	ratingColumns = 4

	// itemFixedColumns precede the genre flag columns in the items table.
	itemFixedColumns = 5
)

var ratingColumnNames = [ratingColumns]string{"user_id", "item_id", "rating", "timestamp"}

// Load parses both tables and returns the assembled Catalog.
func Load(ctx context.Context, src Sources) (*Catalog, error) {
	if src.Ratings == nil {
		return nil, &SchemaError{Source: sourceRatings, Reason: "source is missing"}
	}
	if src.Items == nil {
		return nil, &SchemaError{Source: sourceItems, Reason: "source is missing"}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items, err := LoadItems(src.Items)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ratings, err := LoadRatings(src.Ratings)
	if err != nil {
		return nil, err
	}

	return New(items, ratings)
}

// LoadFiles opens the two tables from disk and loads them.
func LoadFiles(ctx context.Context, ratingsPath, itemsPath string) (*Catalog, error) {
	rf, err := os.Open(ratingsPath) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open ratings: %w", err)
	}
	defer func() { _ = rf.Close() }()

	itf, err := os.Open(itemsPath) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open items: %w", err)
	}
	defer func() { _ = itf.Close() }()

	return Load(ctx, Sources{
		Ratings: bufio.NewReader(rf),
		Items:   bufio.NewReader(itf),
	})
}

// newReader returns a csv.Reader configured for headerless delimited tables
// with a variable number of fields per record.
func newReader(r io.Reader, sep rune) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return cr
}

// LoadRatings parses the tab-separated ratings table.
func LoadRatings(r io.Reader) ([]Rating, error) {
	cr := newReader(r, '\t')

	ratings := make([]Rating, 0, 1024)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(sourceRatings, err)
		}
		line, _ := cr.FieldPos(0)

		if isBlank(rec) {
			continue
		}
		if len(rec) < ratingColumns {
			return nil, &SchemaError{
				Source: sourceRatings,
				Line:   line,
				Column: ratingColumnNames[len(rec)],
				Reason: fmt.Sprintf("expected %d columns, got %d", ratingColumns, len(rec)),
			}
		}

		rating, err := parseRating(rec, line)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}

	if len(ratings) == 0 {
		return nil, &SchemaError{Source: sourceRatings, Reason: "no rows"}
	}
	return ratings, nil
}

// parseRating converts one ratings record.
func parseRating(rec []string, line int) (Rating, error) {
	userID, err := parseInt(rec[0], sourceRatings, "user_id", line)
	if err != nil {
		return Rating{}, err
	}
	itemID, err := parseInt(rec[1], sourceRatings, "item_id", line)
	if err != nil {
		return Rating{}, err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return Rating{}, &SchemaError{Source: sourceRatings, Line: line, Column: "rating", Reason: "not numeric", Err: err}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Rating{}, &SchemaError{Source: sourceRatings, Line: line, Column: "rating", Reason: "not numeric"}
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(rec[3]), 10, 64)
	if err != nil {
		return Rating{}, &SchemaError{Source: sourceRatings, Line: line, Column: "timestamp", Reason: "not numeric", Err: err}
	}

	return Rating{UserID: userID, ItemID: itemID, Value: value, Timestamp: ts}, nil
}

// LoadItems parses the pipe-separated, Latin-1 encoded items table.
func LoadItems(r io.Reader) ([]Item, error) {
	cr := newReader(charmap.ISO8859_1.NewDecoder().Reader(r), '|')
	want := itemFixedColumns + len(Genres)

	items := make([]Item, 0, 256)
	flags := make([]bool, len(Genres))
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(sourceItems, err)
		}
		line, _ := cr.FieldPos(0)

		if isBlank(rec) {
			continue
		}
		if len(rec) < want {
			return nil, &SchemaError{
				Source: sourceItems,
				Line:   line,
				Reason: fmt.Sprintf("expected %d columns, got %d", want, len(rec)),
			}
		}

		id, err := parseInt(rec[0], sourceItems, "item_id", line)
		if err != nil {
			return nil, err
		}
		for g := range Genres {
			v, err := parseInt(rec[itemFixedColumns+g], sourceItems, Genres[g], line)
			if err != nil {
				return nil, err
			}
			flags[g] = v == 1
		}

		items = append(items, newItem(id, rec[1], rec[2], rec[3], rec[4], flags))
	}

	if len(items) == 0 {
		return nil, &SchemaError{Source: sourceItems, Reason: "no rows"}
	}
	return items, nil
}

func parseInt(s, source, column string, line int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &SchemaError{Source: source, Line: line, Column: column, Reason: "not an integer", Err: err}
	}
	return v, nil
}

// csvError converts a reader failure into a SchemaError.
func csvError(source string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &SchemaError{Source: source, Line: pe.Line, Reason: "malformed record", Err: pe.Err}
	}
	return &SchemaError{Source: source, Reason: "read failed", Err: err}
}

func isBlank(rec []string) bool {
	return len(rec) == 1 && strings.TrimSpace(rec[0]) == ""
}
