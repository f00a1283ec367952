// Copyright 2025 Clinsight Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package retrieval implements semantic retrieval of literature passages
// for a set of clinical findings. The engine embeds a query built from the
// findings and ranks every store passage by cosine similarity.
package retrieval

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/clinsight/clinsight/ai"
	"github.com/clinsight/clinsight/core"
	"github.com/clinsight/clinsight/store"
)

const defaultTopK = 8

// Engine retrieves relevant literature passages for clinical findings.
type Engine interface {
	// Retrieve returns up to topK passages ranked by relevance to the
	// findings, most relevant first. An empty findings slice yields an
	// empty result without touching the embedder.
	Retrieve(ctx context.Context, findings []core.Finding) ([]core.ScoredPassage, error)
}

// engine is the production Engine over an in-memory evidence store.
type engine struct {
	store    *store.EvidenceStore
	embedder ai.Embedder
	topK     int
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*engine) error

// WithTopK sets how many passages Retrieve returns at most.
// Default is 8.
func WithTopK(topK int) Option {
	return func(e *engine) error {
		if topK > 0 {
			e.topK = topK
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a retrieval engine over the given store.
//
// Returns Engine interface to enforce abstraction.
func NewEngine(evidenceStore *store.EvidenceStore, embedder ai.Embedder, opts ...Option) (Engine, error) {
	if evidenceStore == nil {
		return nil, ErrStoreRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	e := &engine{
		store:    evidenceStore,
		embedder: embedder,
		topK:     defaultTopK,
		logger:   slog.Default().With("component", "retrieval-engine"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Retrieve embeds the findings query and scores every store passage by
// dot product. The query vector is L2-normalized first, so scores are
// cosine similarities against the store's normalized vectors.
func (e *engine) Retrieve(ctx context.Context, findings []core.Finding) ([]core.ScoredPassage, error) {
	query := buildQuery(findings)
	if query == "" {
		e.logger.Debug("no findings, skipping retrieval")
		return []core.ScoredPassage{}, nil
	}

	e.logger.Debug("retrieving passages", "query", query, "topK", e.topK)

	embedding, err := e.embedder.EmbedText(ctx, query)
	if err != nil {
		e.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	embedding = l2Normalize(embedding)

	type scoredRow struct {
		row   int
		score float32
	}
	rows := make([]scoredRow, e.store.Len())
	for i := range rows {
		rows[i] = scoredRow{row: i, score: dotProduct(embedding, e.store.Vector(i))}
	}

	// Stable sort keeps row order for equal scores, so ties resolve to the
	// earlier corpus passage deterministically.
	slices.SortStableFunc(rows, func(a, b scoredRow) int {
		if a.score > b.score {
			return -1
		}
		if a.score < b.score {
			return 1
		}
		return 0
	})

	limit := e.topK
	if limit > len(rows) {
		limit = len(rows)
	}

	seen := make(map[string]bool, limit)
	results := make([]core.ScoredPassage, 0, limit)
	for _, r := range rows[:limit] {
		passage := e.store.Passage(r.row)
		if seen[passage.ID] {
			continue
		}
		seen[passage.ID] = true
		results = append(results, core.ScoredPassage{
			Passage: passage,
			Score:   r.score,
		})
	}

	e.logger.Debug("retrieved passages", "count", len(results))
	return results, nil
}

// buildQuery joins finding names and non-empty values with spaces, in
// finding order.
func buildQuery(findings []core.Finding) string {
	parts := make([]string, 0, len(findings)*2)
	for _, f := range findings {
		parts = append(parts, f.Name)
		if f.Value != "" {
			parts = append(parts, f.Value)
		}
	}
	return strings.Join(parts, " ")
}
