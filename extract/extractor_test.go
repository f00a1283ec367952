package extract

import (
	"context"
	"testing"

	"github.com/clinsight/clinsight/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findingNames(findings []core.Finding) []string {
	names := make([]string, len(findings))
	for i, f := range findings {
		names[i] = f.Name
	}
	return names
}

func TestExtractFindings(t *testing.T) {
	extractor := NewRuleExtractor()
	ctx := context.Background()

	t.Run("pneumonia vignette", func(t *testing.T) {
		notes := "A 67-year-old male presents with fever, productive cough with " +
			"purulent sputum, and pleuritic chest pain for 3 days. Exam reveals " +
			"crackles in the right lower lung field, tachypnea, and tachycardia."

		findings, err := extractor.ExtractFindings(ctx, notes)
		require.NoError(t, err)

		names := findingNames(findings)
		assert.Equal(t, "age", names[0])
		assert.Equal(t, "67", findings[0].Value)
		assert.Equal(t, "sex", names[1])
		assert.Equal(t, "male", findings[1].Value)
		assert.Contains(t, names, "fever")
		assert.Contains(t, names, "cough")
		assert.Contains(t, names, "sputum")
		assert.Contains(t, names, "pleuritic chest pain")
		assert.Contains(t, names, "crackles")
		assert.Contains(t, names, "tachypnea")
		assert.Contains(t, names, "tachycardia")
	})

	t.Run("age with hyphens", func(t *testing.T) {
		findings, err := extractor.ExtractFindings(ctx, "A 45-year-old woman with headache.")
		require.NoError(t, err)

		names := findingNames(findings)
		assert.Equal(t, []string{"age", "sex", "headache"}, names)
		assert.Equal(t, "45", findings[0].Value)
		assert.Equal(t, "female", findings[1].Value)
	})

	t.Run("male wins over female when both present", func(t *testing.T) {
		findings, err := extractor.ExtractFindings(ctx, "A man and a woman were seen.")
		require.NoError(t, err)

		require.GreaterOrEqual(t, len(findings), 1)
		assert.Equal(t, "sex", findings[0].Name)
		assert.Equal(t, "male", findings[0].Value)
	})

	t.Run("word boundaries respected", func(t *testing.T) {
		// "feverish" must not match "fever" and "coughing" must not match "cough"
		findings, err := extractor.ExtractFindings(ctx, "Patient is feverish and coughing.")
		require.NoError(t, err)

		names := findingNames(findings)
		assert.NotContains(t, names, "fever")
		assert.NotContains(t, names, "cough")
	})

	t.Run("female in multiword term does not trigger sex", func(t *testing.T) {
		findings, err := extractor.ExtractFindings(ctx, "A 30-year-old female with dysuria.")
		require.NoError(t, err)

		names := findingNames(findings)
		assert.Equal(t, []string{"age", "sex", "dysuria", "female"}, names)
	})

	t.Run("context is the containing sentence", func(t *testing.T) {
		notes := "Patient denies chest pain. She reports fever since yesterday."
		findings, err := extractor.ExtractFindings(ctx, notes)
		require.NoError(t, err)

		var fever *core.Finding
		for i := range findings {
			if findings[i].Name == "fever" {
				fever = &findings[i]
			}
		}
		require.NotNil(t, fever)
		assert.Equal(t, "She reports fever since yesterday.", fever.Context)
	})

	t.Run("each term reported once", func(t *testing.T) {
		findings, err := extractor.ExtractFindings(ctx, "Cough, cough and more cough.")
		require.NoError(t, err)

		count := 0
		for _, f := range findings {
			if f.Name == "cough" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("empty notes yield no findings", func(t *testing.T) {
		findings, err := extractor.ExtractFindings(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("unrecognized notes yield no findings", func(t *testing.T) {
		findings, err := extractor.ExtractFindings(ctx, "Please schedule a follow-up appointment.")
		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("deterministic", func(t *testing.T) {
		notes := "A 70-year-old male smoker with dyspnea, wheezing and cough."
		a, err := extractor.ExtractFindings(ctx, notes)
		require.NoError(t, err)
		b, err := extractor.ExtractFindings(ctx, notes)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestSplitSentences(t *testing.T) {
	t.Run("splits on terminal punctuation", func(t *testing.T) {
		got := splitSentences("One. Two! Three? Four")
		assert.Equal(t, []string{"One.", "Two!", "Three?", "Four"}, got)
	})

	t.Run("no boundary returns whole text", func(t *testing.T) {
		got := splitSentences("no punctuation here")
		assert.Equal(t, []string{"no punctuation here"}, got)
	})
}
