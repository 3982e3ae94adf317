// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package algorithms

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"
)

// tokenPattern matches runs of two or more word characters. Hyphenated
// genres therefore split ("Sci-Fi" becomes "sci" and "fi") and single
// character fragments are dropped.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Tokenize lowercases doc and returns its terms in order of appearance.
func Tokenize(doc string) []string {
	return tokenPattern.FindAllString(strings.ToLower(doc), -1)
}

// GenreTFIDFConfig contains configuration for the content model.
type GenreTFIDFConfig struct {
	// NumWorkers is the number of parallel workers used by Build.
	// Zero means runtime.NumCPU().
	NumWorkers int
}

// DefaultGenreTFIDFConfig returns default content model configuration.
func DefaultGenreTFIDFConfig() GenreTFIDFConfig {
	return GenreTFIDFConfig{
		NumWorkers: 4,
	}
}

// GenreTFIDF implements content-based filtering over genre tokens.
//
// Each document is vectorised with raw term counts weighted by a smoothed
// inverse document frequency and scaled to unit length:
//
//	idf(t) = ln((1 + n) / (1 + df(t))) + 1
//	w(d, t) = tf(d, t) * idf(t) / ||tf(d) * idf||
//
// The similarity of two documents is the dot product of their vectors.
// Documents are addressed by their position in the input slice.
type GenreTFIDF struct {
	BaseAlgorithm
	config GenreTFIDFConfig

	terms   []string
	idf     []float64
	vectors [][]float64

	// similarity is the dense document x document matrix with a unit diagonal.
	similarity [][]float64
}

// NewGenreTFIDF creates a new content model.
func NewGenreTFIDF(cfg GenreTFIDFConfig) *GenreTFIDF {
	if cfg.NumWorkers < 0 {
		cfg.NumWorkers = 0
	}
	return &GenreTFIDF{
		BaseAlgorithm: NewBaseAlgorithm("genre_tfidf"),
		config:        cfg,
	}
}

// Build vectorises docs and computes the pairwise similarity matrix.
func (c *GenreTFIDF) Build(ctx context.Context, docs []string) error {
	c.acquireBuildLock()
	defer c.releaseBuildLock()

	started := time.Now()
	n := len(docs)

	tokens := make([][]string, n)
	df := make(map[string]int)
	for i, doc := range docs {
		tokens[i] = Tokenize(doc)
		seen := make(map[string]struct{}, len(tokens[i]))
		for _, t := range tokens[i] {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for k, t := range terms {
		vocab[t] = k
		idf[k] = math.Log(float64(1+n)/float64(1+df[t])) + 1
	}

	vectors := make([][]float64, n)
	for i := range tokens {
		vec := make([]float64, len(terms))
		for _, t := range tokens[i] {
			vec[vocab[t]]++
		}
		for k := range vec {
			vec[k] *= idf[k]
		}
		if norm := l2Norm(vec); norm > 0 {
			for k := range vec {
				vec[k] /= norm
			}
		}
		vectors[i] = vec
	}

	if ContextCancelled(ctx) {
		return ctx.Err()
	}

	sim := newSquare(n)
	err := forEachRow(ctx, n, c.config.NumWorkers, func(i int) {
		sim[i][i] = 1
		for j := i + 1; j < n; j++ {
			var dot float64
			for k, w := range vectors[i] {
				dot += w * vectors[j][k]
			}
			sim[i][j] = dot
		}
	})
	if err != nil {
		return err
	}

	err = forEachRow(ctx, n, c.config.NumWorkers, func(j int) {
		for i := 0; i < j; i++ {
			sim[j][i] = sim[i][j]
		}
	})
	if err != nil {
		return err
	}

	c.terms = terms
	c.idf = idf
	c.vectors = vectors
	c.similarity = sim
	c.markBuilt(started)
	return nil
}

// Terms returns the vocabulary in ascending order.
func (c *GenreTFIDF) Terms() []string {
	c.acquireQueryLock()
	defer c.releaseQueryLock()
	return append([]string(nil), c.terms...)
}

// Weights returns the non-zero term weights of document i.
func (c *GenreTFIDF) Weights(i int) map[string]float64 {
	c.acquireQueryLock()
	defer c.releaseQueryLock()

	if i < 0 || i >= len(c.vectors) {
		return nil
	}
	out := make(map[string]float64)
	for k, w := range c.vectors[i] {
		if w != 0 {
			out[c.terms[k]] = w
		}
	}
	return out
}

// Similarity returns the similarity between documents i and j.
func (c *GenreTFIDF) Similarity(i, j int) (float64, bool) {
	c.acquireQueryLock()
	defer c.releaseQueryLock()

	n := len(c.similarity)
	if !c.built || i < 0 || j < 0 || i >= n || j >= n {
		return 0, false
	}
	return c.similarity[i][j], true
}

// Recommend returns the positions of up to topN documents most similar to
// document index, best first. The document itself is never returned and
// ties keep input order.
func (c *GenreTFIDF) Recommend(index, topN int) ([]int, error) {
	c.acquireQueryLock()
	defer c.releaseQueryLock()

	if !c.built {
		return nil, ErrNotBuilt
	}
	if index < 0 || index >= len(c.similarity) || topN <= 0 {
		return []int{}, nil
	}

	row := c.similarity[index]
	order := make([]int, 0, len(row)-1)
	for j := range row {
		if j != index {
			order = append(order, j)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return row[order[a]] > row[order[b]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	return order, nil
}
