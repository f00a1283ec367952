package corpus

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsight/clinsight/core"
)

func TestChunk(t *testing.T) {
	chunker := NewChunker()

	t.Run("passages carry source metadata", func(t *testing.T) {
		article := BuiltinArticles()[0]
		passages, err := chunker.Chunk(article)
		require.NoError(t, err)
		require.NotEmpty(t, passages)

		for i, p := range passages {
			assert.Equal(t, core.PassageID(article.ID, i), p.ID)
			assert.Equal(t, article.ID, p.SourceID)
			assert.Equal(t, article.Title, p.SourceTitle)
			assert.Equal(t, article.URL, p.SourceURL)
			assert.Equal(t, i, p.Ordinal)
			assert.NotEmpty(t, p.Text)
		}
	})

	t.Run("articles split into multiple passages", func(t *testing.T) {
		for _, article := range BuiltinArticles() {
			passages, err := chunker.Chunk(article)
			require.NoError(t, err)
			assert.Greater(t, len(passages), 1, "article %s", article.ID)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		article := BuiltinArticles()[3]
		a, err := chunker.Chunk(article)
		require.NoError(t, err)
		b, err := chunker.Chunk(article)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("short article yields a single passage", func(t *testing.T) {
		article := Article{
			ID:    "doc1",
			Title: "Short Note",
			URL:   "https://example.org/short",
			Text:  "A short note that fits comfortably in one passage.",
		}
		passages, err := chunker.Chunk(article)
		require.NoError(t, err)
		require.Len(t, passages, 1)
		assert.Equal(t, "doc1_chunk_0", passages[0].ID)
	})

	t.Run("custom chunk size", func(t *testing.T) {
		small := NewChunker(WithChunkSize(100), WithChunkOverlap(20))
		article := BuiltinArticles()[0]

		coarse, err := chunker.Chunk(article)
		require.NoError(t, err)
		fine, err := small.Chunk(article)
		require.NoError(t, err)

		assert.Greater(t, len(fine), len(coarse))
	})
}

func TestBuiltinArticles(t *testing.T) {
	articles := BuiltinArticles()
	require.Len(t, articles, 11)

	seen := map[string]bool{}
	for _, a := range articles {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.URL)
		assert.NotEmpty(t, a.Text)
		assert.False(t, seen[a.ID], fmt.Sprintf("duplicate article id %s", a.ID))
		seen[a.ID] = true
	}
}
