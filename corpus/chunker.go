package corpus

import (
	"strings"

	"github.com/tmc/langchaingo/textsplitter"

	"github.com/clinsight/clinsight/core"
)

const (
	defaultChunkSize    = 500
	defaultChunkOverlap = 100
)

// chunkSeparators split paragraphs first, then lines, then sentences,
// then words, mirroring how the corpus articles are written.
var chunkSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// Chunker splits an article into retrievable passages.
type Chunker interface {
	// Chunk splits the article text into overlapping passages. Passage IDs
	// are derived from the article ID and the chunk's position.
	Chunk(article Article) ([]core.Passage, error)
}

// recursiveChunker implements Chunker with recursive character splitting.
type recursiveChunker struct {
	splitter textsplitter.RecursiveCharacter
}

// ChunkerOption configures the chunker.
type ChunkerOption func(*chunkerConfig)

type chunkerConfig struct {
	chunkSize    int
	chunkOverlap int
}

// WithChunkSize sets the target passage size in characters.
func WithChunkSize(size int) ChunkerOption {
	return func(c *chunkerConfig) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithChunkOverlap sets the overlap between consecutive passages in characters.
func WithChunkOverlap(overlap int) ChunkerOption {
	return func(c *chunkerConfig) {
		if overlap >= 0 {
			c.chunkOverlap = overlap
		}
	}
}

// NewChunker creates a chunker with 500-character passages overlapping by 100.
//
// Returns Chunker interface to enforce abstraction.
func NewChunker(opts ...ChunkerOption) Chunker {
	cfg := &chunkerConfig{
		chunkSize:    defaultChunkSize,
		chunkOverlap: defaultChunkOverlap,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &recursiveChunker{
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(cfg.chunkSize),
			textsplitter.WithChunkOverlap(cfg.chunkOverlap),
			textsplitter.WithSeparators(chunkSeparators),
		),
	}
}

// Chunk splits the article text into overlapping passages.
func (c *recursiveChunker) Chunk(article Article) ([]core.Passage, error) {
	splits, err := c.splitter.SplitText(strings.TrimSpace(article.Text))
	if err != nil {
		return nil, err
	}

	passages := make([]core.Passage, len(splits))
	for i, text := range splits {
		passages[i] = core.Passage{
			ID:          core.PassageID(article.ID, i),
			SourceID:    article.ID,
			SourceTitle: article.Title,
			SourceURL:   article.URL,
			Ordinal:     i,
			Text:        text,
		}
	}
	return passages, nil
}
