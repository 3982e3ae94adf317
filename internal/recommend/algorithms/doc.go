// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

// Package algorithms implements the similarity models behind the hybrid
// recommender.
//
// # Models
//
// InteractionMatrix:
//   - Dense user x item pivot of the ratings table
//   - Rows ordered by ascending user id, columns by ascending item id
//   - Missing cells are 0; a repeated (user, item) pair keeps the last value
//
// UserCosine (collaborative filtering):
//   - Pairwise cosine similarity over full user rows
//   - Recommends items rated by the most similar users that the target has not rated
//   - Candidate scores are the sum of the neighbours' raw ratings
//
// GenreTFIDF (content-based filtering):
//   - TF-IDF vectors over genre tokens with smoothed idf and L2 normalisation
//   - Pairwise cosine similarity indexed by catalog position
//
// # Determinism
//
// All rankings use stable sorts. Ties keep ascending user id (neighbour
// ranking), first-seen order (collaborative candidates) or catalog order
// (content ranking). Two builds over the same input produce identical output.
//
// # Thread Safety
//
// Build acquires an exclusive lock while queries use a shared lock. After
// Build returns, a model is read-only and safe for concurrent queries.
//
// # Usage
//
//	m := algorithms.BuildInteractionMatrix(cat.Ratings())
//
//	cf := algorithms.NewUserCosine(algorithms.DefaultUserCosineConfig())
//	if err := cf.Build(ctx, m); err != nil {
//	    return err
//	}
//	itemIDs, err := cf.Recommend(userID, 5)
package algorithms
