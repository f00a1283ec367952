package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier derived from content.
// It is used to fingerprint corpus versions deterministically.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Finding is a single clinical observation extracted from free-text notes.
// Value carries an optional quantity or qualifier ("" when absent), and
// Context is the sentence the finding appeared in (may be empty).
type Finding struct {
	Name    string
	Value   string
	Context string
}

// Terms returns the finding's scoring terms: the lowercased name and,
// when present, the lowercased value.
func (f Finding) Terms() []string {
	terms := []string{strings.ToLower(f.Name)}
	if f.Value != "" {
		terms = append(terms, strings.ToLower(f.Value))
	}
	return terms
}

// Passage is one retrievable literature chunk. Passages are immutable once
// the evidence store is built.
type Passage struct {
	ID          string
	SourceID    string
	SourceTitle string
	SourceURL   string
	Ordinal     int
	Text        string
}

// PassageID derives the stable passage identifier from its source document
// and ordinal position within that document.
func PassageID(sourceID string, ordinal int) string {
	return fmt.Sprintf("%s_chunk_%d", sourceID, ordinal)
}

// ScoredPassage is a Passage with a query-time relevance score attached.
// Scores are cosine similarities and are never persisted.
type ScoredPassage struct {
	Passage
	Score float32
}

// Condition is a static catalog entry mapping a named condition to the
// finding keywords considered diagnostic for it. SourceAffinity tags the
// literature source whose passages are preferred as supporting evidence.
type Condition struct {
	Name           string
	Keywords       []string
	Description    string
	SourceAffinity string
}

// DifferentialEntry is one ranked hypothesis in a differential diagnosis,
// derived per query and valid for a single pipeline run.
type DifferentialEntry struct {
	Condition  Condition
	Matched    []string
	Score      int
	MaxScore   int
	Confidence string
	Supporting []ScoredPassage
}

// ValidationResult reports the outcome of citation validation over a report.
// CitationsFound counts every reference found, whether or not it validated;
// it is a volume metric, not a correctness metric.
type ValidationResult struct {
	Valid          bool
	Issues         []string
	CitationsFound int
}

// StageTiming records the wall-clock duration of one pipeline stage.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}

// PipelineResult aggregates the output of one pipeline run. It is owned
// exclusively by that run and never shared across concurrent invocations.
type PipelineResult struct {
	Findings   []Finding
	Evidence   []ScoredPassage
	Report     string
	Validation ValidationResult
	Timings    []StageTiming
	Err        error
}

// StoreManifest describes a built evidence store: its corpus fingerprint,
// embedding dimensionality, passage count, and build time.
type StoreManifest struct {
	Fingerprint ID
	Dimensions  int
	Passages    int
	BuiltAt     time.Time
}

// PassageRecord is the persistence shape of a passage: the passage itself
// plus its L2-normalized embedding vector.
type PassageRecord struct {
	Passage Passage
	Vector  []float32
}
