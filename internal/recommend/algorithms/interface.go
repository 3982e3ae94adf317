// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package algorithms

import (
	"context"
	"errors"
	"math"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrNotBuilt is returned when a model is queried before Build.
var ErrNotBuilt = errors.New("model not built")

// cancelCheckInterval is how many rows a worker processes between
// context checks.
const cancelCheckInterval = 64

// BaseAlgorithm provides the build bookkeeping shared by all models.
type BaseAlgorithm struct {
	name          string
	built         bool
	version       int
	lastBuiltAt   time.Time
	buildDuration time.Duration
	mu            sync.RWMutex
}

// NewBaseAlgorithm creates a new base algorithm with the given name.
func NewBaseAlgorithm(name string) BaseAlgorithm {
	return BaseAlgorithm{
		name: name,
	}
}

// Name returns the model identifier.
func (b *BaseAlgorithm) Name() string {
	return b.name
}

// IsBuilt reports whether Build has completed successfully.
func (b *BaseAlgorithm) IsBuilt() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.built
}

// Version returns how many times the model has been built.
func (b *BaseAlgorithm) Version() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// LastBuiltAt returns when the model was last built.
func (b *BaseAlgorithm) LastBuiltAt() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastBuiltAt
}

// BuildDuration returns how long the last build took.
func (b *BaseAlgorithm) BuildDuration() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.buildDuration
}

// markBuilt updates the build state.
// Must be called while holding the build lock (acquireBuildLock).
func (b *BaseAlgorithm) markBuilt(started time.Time) {
	b.built = true
	b.version++
	b.lastBuiltAt = time.Now()
	b.buildDuration = b.lastBuiltAt.Sub(started)
}

func (b *BaseAlgorithm) acquireBuildLock() {
	b.mu.Lock()
}

func (b *BaseAlgorithm) releaseBuildLock() {
	b.mu.Unlock()
}

func (b *BaseAlgorithm) acquireQueryLock() {
	b.mu.RLock()
}

func (b *BaseAlgorithm) releaseQueryLock() {
	b.mu.RUnlock()
}

// l2Norm returns the Euclidean length of v.
func l2Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// cosine returns dot / (normA * normB), or 0 when either norm is zero.
func cosine(dot, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}

// newSquare allocates an n x n matrix backed by a single slice.
func newSquare(n int) [][]float64 {
	backing := make([]float64, n*n)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = backing[i*n : (i+1)*n : (i+1)*n]
	}
	return rows
}

// forEachRow calls fn for every row in [0, n) using up to workers goroutines.
// Rows are striped across workers so that triangular workloads stay balanced.
// fn must only write to memory owned by its row.
func forEachRow(ctx context.Context, n, workers int, fn func(i int)) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if i%cancelCheckInterval == 0 && ContextCancelled(ctx) {
				return ctx.Err()
			}
			fn(i)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i, done := w, 0; i < n; i, done = i+workers, done+1 {
				if done%cancelCheckInterval == 0 && ContextCancelled(gctx) {
					return gctx.Err()
				}
				fn(i)
			}
			return nil
		})
	}
	return g.Wait()
}

// ContextCancelled checks if the context has been cancelled.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
