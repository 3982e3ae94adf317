// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package api

import (
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/swipeflix/internal/models"
	"github.com/tomtom215/swipeflix/internal/recommend"
)

// Movies handles GET /api/v1/movies.
//
// Query parameters: page (default 1), per_page (default and cap from
// config), shuffle, seed. With shuffle the whole catalog is permuted before
// paging; the same seed yields the same permutation so pages do not overlap.
// Without a seed a fresh permutation is drawn per request.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	page, apiErr := queryInt(r, "page", 1)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	perPage, apiErr := queryInt(r, "per_page", h.config.DefaultPageSize)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	if perPage > h.config.MaxPageSize {
		perPage = h.config.MaxPageSize
	}

	query := models.MoviesQuery{
		Page:    page,
		PerPage: perPage,
		Shuffle: queryBool(r, "shuffle"),
	}
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, &models.APIError{
				Code:    codeValidation,
				Message: "seed must be an integer",
				Details: map[string]interface{}{"field": "seed"},
			}, nil)
			return
		}
		query.Seed = seed
	} else {
		query.Seed = time.Now().UnixNano()
	}
	if apiErr := validateRequest(&query); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	all := h.engine.ListCatalog()
	if query.Shuffle {
		shuffle(all, query.Seed)
	}

	respondSuccess(w, r, paginate(all, query.Page, query.PerPage), models.Metadata{})
}

func shuffle(items []recommend.ItemSummary, seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0x5f1f))
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

func paginate(items []recommend.ItemSummary, page, perPage int) models.MoviesPage {
	total := len(items)
	result := models.MoviesPage{
		Movies:     []recommend.ItemSummary{},
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}

	// Compare pages before multiplying; (page-1)*perPage can overflow.
	if page > result.TotalPages {
		return result
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	result.Movies = items[start:end]
	return result
}
