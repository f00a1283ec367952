package retrieval

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsight/clinsight/ai/mock"
	"github.com/clinsight/clinsight/core"
	"github.com/clinsight/clinsight/store"
)

// testStore builds a small store with hand-picked unit vectors so tests can
// control similarity ordering exactly.
func testStore(t *testing.T, vectors [][]float32) *store.EvidenceStore {
	t.Helper()
	records := make([]core.PassageRecord, len(vectors))
	for i, v := range vectors {
		records[i] = core.PassageRecord{
			Passage: core.Passage{
				ID:          core.PassageID("PMC_pneumonia_review", i),
				SourceID:    "PMC_pneumonia_review",
				SourceTitle: "Community-Acquired Pneumonia",
				SourceURL:   "https://example.org/cap",
				Ordinal:     i,
				Text:        "Clinical presentation typically includes cough and fever.",
			},
			Vector: v,
		}
	}
	s, err := store.New(records, time.Now())
	require.NoError(t, err)
	return s
}

// fixedEmbedder returns the same vector for every query.
func fixedEmbedder(vector []float32) *mock.MockEmbedder {
	e := mock.NewMockEmbedder()
	e.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return vector, nil
	}
	return e
}

func TestNewEngine(t *testing.T) {
	s := testStore(t, [][]float32{{1, 0}})

	t.Run("requires store", func(t *testing.T) {
		_, err := NewEngine(nil, mock.NewMockEmbedder())
		assert.ErrorIs(t, err, ErrStoreRequired)
	})

	t.Run("requires embedder", func(t *testing.T) {
		_, err := NewEngine(s, nil)
		assert.ErrorIs(t, err, ErrEmbedderRequired)
	})
}

func TestRetrieve(t *testing.T) {
	ctx := context.Background()
	findings := []core.Finding{{Name: "fever"}, {Name: "cough"}}

	t.Run("ranks by cosine similarity descending", func(t *testing.T) {
		s := testStore(t, [][]float32{
			{0, 1},     // orthogonal, score 0
			{1, 0},     // identical, score 1
			{0.6, 0.8}, // score 0.6
		})
		engine, err := NewEngine(s, fixedEmbedder([]float32{1, 0}))
		require.NoError(t, err)

		results, err := engine.Retrieve(ctx, findings)
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, 1, results[0].Ordinal)
		assert.Equal(t, 2, results[1].Ordinal)
		assert.Equal(t, 0, results[2].Ordinal)
		assert.Greater(t, results[0].Score, results[1].Score)
		assert.Greater(t, results[1].Score, results[2].Score)
	})

	t.Run("ties resolve to earlier row", func(t *testing.T) {
		s := testStore(t, [][]float32{
			{0.6, 0.8},
			{0.6, 0.8},
			{1, 0},
		})
		engine, err := NewEngine(s, fixedEmbedder([]float32{1, 0}))
		require.NoError(t, err)

		results, err := engine.Retrieve(ctx, findings)
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, 2, results[0].Ordinal)
		assert.Equal(t, 0, results[1].Ordinal)
		assert.Equal(t, 1, results[2].Ordinal)
	})

	t.Run("caps results at topK", func(t *testing.T) {
		vectors := make([][]float32, 10)
		for i := range vectors {
			vectors[i] = []float32{1, float32(i) * 0.01}
		}
		s := testStore(t, vectors)

		engine, err := NewEngine(s, fixedEmbedder([]float32{1, 0}), WithTopK(3))
		require.NoError(t, err)

		results, err := engine.Retrieve(ctx, findings)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("no duplicate passage ids", func(t *testing.T) {
		s := testStore(t, [][]float32{{1, 0}, {0, 1}, {0.6, 0.8}})
		engine, err := NewEngine(s, fixedEmbedder([]float32{0.5, 0.5}))
		require.NoError(t, err)

		results, err := engine.Retrieve(ctx, findings)
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, r := range results {
			assert.False(t, seen[r.ID])
			seen[r.ID] = true
		}
	})

	t.Run("empty findings skip embedding", func(t *testing.T) {
		s := testStore(t, [][]float32{{1, 0}})
		embedder := mock.NewMockEmbedder()
		engine, err := NewEngine(s, embedder)
		require.NoError(t, err)

		results, err := engine.Retrieve(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Zero(t, embedder.CallCount())
	})

	t.Run("query vector normalized before scoring", func(t *testing.T) {
		s := testStore(t, [][]float32{{1, 0}})
		// Unnormalized query vector; scores must still be cosine in [-1, 1].
		engine, err := NewEngine(s, fixedEmbedder([]float32{10, 0}))
		require.NoError(t, err)

		results, err := engine.Retrieve(ctx, findings)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.InDelta(t, 1.0, results[0].Score, 1e-6)
	})

	t.Run("embedder error propagates", func(t *testing.T) {
		s := testStore(t, [][]float32{{1, 0}})
		embedder := mock.NewMockEmbedder()
		wantErr := errors.New("embedding service down")
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, wantErr
		}
		engine, err := NewEngine(s, embedder)
		require.NoError(t, err)

		_, err = engine.Retrieve(ctx, findings)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("deterministic", func(t *testing.T) {
		s := testStore(t, [][]float32{{0, 1}, {1, 0}, {0.6, 0.8}})
		engine, err := NewEngine(s, fixedEmbedder([]float32{0.7, 0.3}))
		require.NoError(t, err)

		a, err := engine.Retrieve(ctx, findings)
		require.NoError(t, err)
		b, err := engine.Retrieve(ctx, findings)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestBuildQuery(t *testing.T) {
	t.Run("names and values in order", func(t *testing.T) {
		query := buildQuery([]core.Finding{
			{Name: "age", Value: "67"},
			{Name: "sex", Value: "male"},
			{Name: "fever"},
			{Name: "cough"},
		})
		assert.Equal(t, "age 67 sex male fever cough", query)
	})

	t.Run("empty findings", func(t *testing.T) {
		assert.Equal(t, "", buildQuery(nil))
	})
}
