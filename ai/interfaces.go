package ai

import (
	"context"

	"github.com/clinsight/clinsight/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// FindingExtractor extracts discrete clinical findings from free-text notes.
// Implementations must be thread-safe for concurrent use.
type FindingExtractor interface {
	// ExtractFindings analyzes clinical notes and extracts findings
	// (symptoms, signs, demographics, risk factors) with optional values
	// and the sentence each finding appeared in.
	// Returns an empty slice if no findings are recognized.
	// Returns an error if extraction fails.
	ExtractFindings(ctx context.Context, notes string) ([]core.Finding, error)
}

// ReportGenerator produces a differential diagnosis report from findings and
// retrieved evidence. Implementations must be thread-safe for concurrent use.
//
// A generator may return ("", nil) to signal that it has nothing to offer;
// callers are expected to fall back to a deterministic engine in that case.
type ReportGenerator interface {
	// GenerateReport produces report text citing the given evidence.
	// Returns an error if generation fails.
	GenerateReport(ctx context.Context, findings []core.Finding, evidence []core.ScoredPassage) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder, FindingExtractor, and ReportGenerator
// instances, ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// FindingExtractor returns the clinical finding extraction service.
	// The returned FindingExtractor is safe for concurrent use.
	FindingExtractor() FindingExtractor

	// ReportGenerator returns the report generation service.
	// The returned ReportGenerator is safe for concurrent use.
	ReportGenerator() ReportGenerator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
