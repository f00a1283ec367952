package citations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsight/clinsight/core"
)

func evidenceWith(titles ...string) []core.ScoredPassage {
	evidence := make([]core.ScoredPassage, len(titles))
	for i, title := range titles {
		evidence[i] = core.ScoredPassage{
			Passage: core.Passage{
				ID:          core.PassageID("PMC_pneumonia_review", i),
				SourceID:    "PMC_pneumonia_review",
				SourceTitle: title,
				SourceURL:   "https://example.org/cap",
				Ordinal:     i,
				Text:        "Clinical presentation typically includes cough and fever.",
			},
			Score: 0.8,
		}
	}
	return evidence
}

func TestValidate(t *testing.T) {
	evidence := evidenceWith("Community-Acquired Pneumonia: A Comprehensive Review")

	t.Run("no citations is valid", func(t *testing.T) {
		result := Validate("A report without any citations.", evidence)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Issues)
		assert.Zero(t, result.CitationsFound)
	})

	t.Run("exact title accepted", func(t *testing.T) {
		result := Validate("[Source: Community-Acquired Pneumonia: A Comprehensive Review]", evidence)
		assert.True(t, result.Valid)
		assert.Equal(t, 1, result.CitationsFound)
	})

	t.Run("partial title accepted", func(t *testing.T) {
		result := Validate("[Source: Community-Acquired Pneumonia]", evidence)
		assert.True(t, result.Valid)
	})

	t.Run("superset of title accepted", func(t *testing.T) {
		result := Validate("[Source: Community-Acquired Pneumonia: A Comprehensive Review, 2nd ed.]", evidence)
		assert.True(t, result.Valid)
	})

	t.Run("case insensitive", func(t *testing.T) {
		result := Validate("[source: community-acquired pneumonia]", evidence)
		assert.True(t, result.Valid)
	})

	t.Run("unknown source flagged with one issue", func(t *testing.T) {
		result := Validate("[Source: Harrison's Principles of Internal Medicine]", evidence)
		assert.False(t, result.Valid)
		require.Len(t, result.Issues, 1)
		assert.Contains(t, result.Issues[0], "Harrison's Principles of Internal Medicine")
		assert.Equal(t, 1, result.CitationsFound)
	})

	t.Run("exact chunk id accepted", func(t *testing.T) {
		result := Validate("[Chunk: PMC_pneumonia_review_chunk_0]", evidence)
		assert.True(t, result.Valid)
		assert.Equal(t, 1, result.CitationsFound)
	})

	t.Run("chunk id case insensitive but exact", func(t *testing.T) {
		assert.True(t, Validate("[chunk: PMC_PNEUMONIA_REVIEW_chunk_0]", evidence).Valid)
		assert.False(t, Validate("[Chunk: PMC_pneumonia_review_chunk]", evidence).Valid)
	})

	t.Run("citations found counts invalid citations too", func(t *testing.T) {
		report := "[Source: Unknown Title] and [Chunk: nope]"
		result := Validate(report, evidence)
		assert.False(t, result.Valid)
		assert.Len(t, result.Issues, 2)
		assert.Equal(t, 2, result.CitationsFound)
	})

	t.Run("whitespace after colon tolerated", func(t *testing.T) {
		result := Validate("[Source:   Community-Acquired Pneumonia]", evidence)
		assert.True(t, result.Valid)
	})

	t.Run("no evidence makes any citation invalid", func(t *testing.T) {
		result := Validate("[Source: Community-Acquired Pneumonia]", nil)
		assert.False(t, result.Valid)
	})

	t.Run("idempotent", func(t *testing.T) {
		report := "[Source: Community-Acquired Pneumonia] [Chunk: missing]"
		assert.Equal(t, Validate(report, evidence), Validate(report, evidence))
	})
}
