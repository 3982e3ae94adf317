// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package algorithms

import (
	"context"
	"errors"
	"sort"
	"time"
)

// UserCosineConfig contains configuration for the collaborative model.
type UserCosineConfig struct {
	// NumWorkers is the number of parallel workers used by Build.
	// Zero means runtime.NumCPU().
	NumWorkers int
}

// DefaultUserCosineConfig returns default collaborative model configuration.
func DefaultUserCosineConfig() UserCosineConfig {
	return UserCosineConfig{
		NumWorkers: 4,
	}
}

// UserCosine implements user-based collaborative filtering.
//
// For a target user u it walks the other users in descending order of
// cosine similarity to u. Each neighbour v contributes, for every item it
// rated that u has not, its raw rating r(v, i) to the candidate's score:
//
//	score(u, i) = sum_{v in N(u)} r(v, i)
//
// The walk stops once at least topN distinct candidates have been seen.
type UserCosine struct {
	BaseAlgorithm
	config UserCosineConfig

	matrix *InteractionMatrix

	// similarity is the dense user x user cosine matrix with a unit diagonal.
	similarity [][]float64
}

// NewUserCosine creates a new collaborative model.
func NewUserCosine(cfg UserCosineConfig) *UserCosine {
	if cfg.NumWorkers < 0 {
		cfg.NumWorkers = 0
	}
	return &UserCosine{
		BaseAlgorithm: NewBaseAlgorithm("user_cosine"),
		config:        cfg,
	}
}

// Build computes the pairwise user similarity matrix.
func (u *UserCosine) Build(ctx context.Context, m *InteractionMatrix) error {
	if m == nil {
		return errors.New("interaction matrix is nil")
	}

	u.acquireBuildLock()
	defer u.releaseBuildLock()

	started := time.Now()
	n := m.NumUsers()

	norms := make([]float64, n)
	for i := 0; i < n; i++ {
		norms[i] = l2Norm(m.Row(i))
	}

	sim := newSquare(n)

	// Upper triangle first; every pair is computed exactly once so the
	// result is bit-for-bit symmetric.
	err := forEachRow(ctx, n, u.config.NumWorkers, func(i int) {
		row := m.Row(i)
		cols := m.Nonzero(i)
		sim[i][i] = 1
		for j := i + 1; j < n; j++ {
			other := m.Row(j)
			var dot float64
			for _, k := range cols {
				dot += row[k] * other[k]
			}
			sim[i][j] = cosine(dot, norms[i], norms[j])
		}
	})
	if err != nil {
		return err
	}

	err = forEachRow(ctx, n, u.config.NumWorkers, func(j int) {
		for i := 0; i < j; i++ {
			sim[j][i] = sim[i][j]
		}
	})
	if err != nil {
		return err
	}

	u.matrix = m
	u.similarity = sim
	u.markBuilt(started)
	return nil
}

// Similarity returns the cosine similarity between two users.
func (u *UserCosine) Similarity(userA, userB int) (float64, bool) {
	u.acquireQueryLock()
	defer u.releaseQueryLock()

	if !u.built {
		return 0, false
	}
	a, ok := u.matrix.UserIndex(userA)
	if !ok {
		return 0, false
	}
	b, ok := u.matrix.UserIndex(userB)
	if !ok {
		return 0, false
	}
	return u.similarity[a][b], true
}

// Neighbors returns the other users ordered by descending similarity to
// userID. Ties keep ascending user id. The target is never included.
func (u *UserCosine) Neighbors(userID int) []int {
	u.acquireQueryLock()
	defer u.releaseQueryLock()

	if !u.built {
		return nil
	}
	target, ok := u.matrix.UserIndex(userID)
	if !ok {
		return nil
	}

	order := u.rankNeighbors(target)
	ids := make([]int, len(order))
	for i, idx := range order {
		ids[i] = u.matrix.users[idx]
	}
	return ids
}

// rankNeighbors returns the row indices of all users except target, sorted
// by descending similarity with ties kept in row order.
func (u *UserCosine) rankNeighbors(target int) []int {
	simRow := u.similarity[target]
	order := make([]int, 0, len(simRow)-1)
	for v := range simRow {
		if v != target {
			order = append(order, v)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return simRow[order[a]] > simRow[order[b]]
	})
	return order
}

// Recommend returns up to topN item ids for userID, best first.
// An unknown user or topN <= 0 yields an empty result.
func (u *UserCosine) Recommend(userID, topN int) ([]int, error) {
	u.acquireQueryLock()
	defer u.releaseQueryLock()

	if !u.built {
		return nil, ErrNotBuilt
	}
	target, ok := u.matrix.UserIndex(userID)
	if !ok || topN <= 0 {
		return []int{}, nil
	}

	rated := u.matrix.Row(target)
	scores := make(map[int]float64)
	candidates := make([]int, 0, topN)

	for _, v := range u.rankNeighbors(target) {
		row := u.matrix.Row(v)
		for _, k := range u.matrix.Nonzero(v) {
			if row[k] <= 0 || rated[k] != 0 {
				continue
			}
			if _, seen := scores[k]; !seen {
				candidates = append(candidates, k)
			}
			scores[k] += row[k]
		}
		if len(candidates) >= topN {
			break
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return scores[candidates[a]] > scores[candidates[b]]
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	ids := make([]int, len(candidates))
	for i, k := range candidates {
		ids[i] = u.matrix.items[k]
	}
	return ids, nil
}
