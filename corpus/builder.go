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


// Package corpus holds the built-in literature corpus and builds evidence
// stores from it: articles are chunked into passages, embedded in parallel
// batches, normalized, and assembled into an immutable store.
package corpus

import (
	"context"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/clinsight/clinsight/ai"
	"github.com/clinsight/clinsight/core"
	"github.com/clinsight/clinsight/store"
)

const defaultBatchSize = 16

// Builder turns articles into an evidence store.
type Builder struct {
	embedder  ai.Embedder
	chunker   Chunker
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}
		if b.pool != nil {
			b.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// WithBatchSize sets how many passages are embedded per batch request.
func WithBatchSize(size int) Option {
	return func(b *Builder) error {
		if size > 0 {
			b.batchSize = size
		}
		return nil
	}
}

// WithChunker sets a custom chunker.
func WithChunker(chunker Chunker) Option {
	return func(b *Builder) error {
		if chunker != nil {
			b.chunker = chunker
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates a corpus builder using the given embedder.
func NewBuilder(embedder ai.Embedder, opts ...Option) (*Builder, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		embedder:  embedder,
		chunker:   NewChunker(),
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default().With("component", "corpus-builder"),
	}

	for _, opt := range opts {
		if optErr := opt(b); optErr != nil {
			b.Release()
			return nil, optErr
		}
	}

	return b, nil
}

// Build chunks the articles, embeds all passages, and assembles an evidence
// store. Passage order follows article order, which fixes the store's row
// order and therefore retrieval tie-breaking.
func (b *Builder) Build(ctx context.Context, articles []Article) (*store.EvidenceStore, error) {
	if len(articles) == 0 {
		return nil, ErrNoArticles
	}

	var passages []core.Passage
	for _, article := range articles {
		chunks, err := b.chunker.Chunk(article)
		if err != nil {
			return nil, err
		}
		passages = append(passages, chunks...)
	}

	b.logger.Info("building evidence store",
		"articles", len(articles),
		"passages", len(passages))

	vectors := make([][]float32, len(passages))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for start := 0; start < len(passages); start += b.batchSize {
		end := start + b.batchSize
		if end > len(passages) {
			end = len(passages)
		}
		batchStart, batchEnd := start, end

		wg.Add(1)
		submitErr := b.pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, batchEnd-batchStart)
			for i := range texts {
				texts[i] = passages[batchStart+i].Text
			}

			embeddings, err := b.embedder.EmbedTexts(ctx, texts)
			if err == nil && len(embeddings) != len(texts) {
				err = ErrEmbeddingMismatch
			}
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			for i, vector := range embeddings {
				vectors[batchStart+i] = l2Normalize(vector)
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
			break
		}
	}

	wg.Wait()

	if firstErr != nil {
		b.logger.Error("failed to embed corpus", "err", firstErr)
		return nil, firstErr
	}

	records := make([]core.PassageRecord, len(passages))
	for i := range passages {
		records[i] = core.PassageRecord{
			Passage: passages[i],
			Vector:  vectors[i],
		}
	}

	s, err := store.New(records, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	m := s.Manifest()
	b.logger.Info("evidence store built",
		"passages", m.Passages,
		"dimensions", m.Dimensions,
		"fingerprint", m.Fingerprint)

	return s, nil
}

// Release releases the worker pool.
// The builder should not be used after calling Release.
func (b *Builder) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}

// l2Normalize scales the vector to unit length. Zero vectors are returned
// unchanged.
func l2Normalize(vector []float32) []float32 {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares == 0 {
		return vector
	}
	norm := float32(1.0 / math.Sqrt(sumSquares))
	normalized := make([]float32, len(vector))
	for i, v := range vector {
		normalized[i] = v * norm
	}
	return normalized
}
