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


// Package store provides the immutable in-memory evidence store: corpus
// passages and their L2-normalized embedding vectors, aligned by index.
// Stores are built once by the corpus builder and read concurrently by
// the retrieval engine.
package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/clinsight/clinsight/core"
)

// EvidenceStore holds passages and their embedding vectors, row-aligned.
// It is immutable after construction and safe for concurrent reads.
type EvidenceStore struct {
	passages []core.Passage
	vectors  [][]float32
	byID     map[string]int
	manifest core.StoreManifest
}

// New builds an evidence store from passage records. Records are validated,
// passage IDs must be unique, and all vectors must share one dimensionality.
// Row order follows the input order and is part of the store's contract:
// retrieval ties are broken by row order.
func New(records []core.PassageRecord, builtAt time.Time) (*EvidenceStore, error) {
	if len(records) == 0 {
		return nil, ErrEmptyStore
	}

	passages := make([]core.Passage, len(records))
	vectors := make([][]float32, len(records))
	byID := make(map[string]int, len(records))

	dims := len(records[0].Vector)
	for i, record := range records {
		if err := core.ValidatePassage(&record.Passage); err != nil {
			return nil, err
		}
		if len(record.Vector) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrVectorMissing, record.Passage.ID)
		}
		if len(record.Vector) != dims {
			return nil, fmt.Errorf("%w: %s has %d dimensions, store has %d",
				ErrDimensionMismatch, record.Passage.ID, len(record.Vector), dims)
		}
		if _, ok := byID[record.Passage.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePassage, record.Passage.ID)
		}
		byID[record.Passage.ID] = i
		passages[i] = record.Passage
		vectors[i] = record.Vector
	}

	return &EvidenceStore{
		passages: passages,
		vectors:  vectors,
		byID:     byID,
		manifest: core.StoreManifest{
			Fingerprint: Fingerprint(passages),
			Dimensions:  dims,
			Passages:    len(passages),
			BuiltAt:     builtAt,
		},
	}, nil
}

// Fingerprint derives a deterministic corpus fingerprint from passage
// identity and content. Stores built from identical corpora share a
// fingerprint regardless of build time.
func Fingerprint(passages []core.Passage) core.ID {
	var b strings.Builder
	for _, p := range passages {
		b.WriteString(p.ID)
		b.WriteByte('\n')
		b.WriteString(p.Text)
		b.WriteByte('\n')
	}
	return core.IDFromContent(b.String())
}

// Len returns the number of passages in the store.
func (s *EvidenceStore) Len() int {
	return len(s.passages)
}

// Passage returns the passage at row i.
func (s *EvidenceStore) Passage(i int) core.Passage {
	return s.passages[i]
}

// Vector returns the embedding vector at row i. The returned slice must
// not be modified.
func (s *EvidenceStore) Vector(i int) []float32 {
	return s.vectors[i]
}

// Lookup returns the row index for a passage ID.
func (s *EvidenceStore) Lookup(id string) (int, bool) {
	i, ok := s.byID[id]
	return i, ok
}

// Manifest returns the store's manifest.
func (s *EvidenceStore) Manifest() core.StoreManifest {
	return s.manifest
}

// Records returns a copy of the store's contents as passage records,
// suitable for persistence.
func (s *EvidenceStore) Records() []core.PassageRecord {
	records := make([]core.PassageRecord, len(s.passages))
	for i := range s.passages {
		records[i] = core.PassageRecord{
			Passage: s.passages[i],
			Vector:  s.vectors[i],
		}
	}
	return records
}
