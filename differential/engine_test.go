package differential

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsight/clinsight/core"
)

func findingsFor(names ...string) []core.Finding {
	findings := make([]core.Finding, len(names))
	for i, name := range names {
		findings[i] = core.Finding{Name: name}
	}
	return findings
}

func passage(sourceID, title, text string) core.ScoredPassage {
	return core.ScoredPassage{
		Passage: core.Passage{
			ID:          core.PassageID(sourceID, 0),
			SourceID:    sourceID,
			SourceTitle: title,
			SourceURL:   "https://example.org/" + sourceID,
			Ordinal:     0,
			Text:        text,
		},
		Score: 0.9,
	}
}

func TestRank(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	t.Run("pneumonia findings rank CAP first", func(t *testing.T) {
		findings := findingsFor("fever", "cough", "sputum", "pleuritic chest pain",
			"crackles", "tachypnea", "tachycardia")
		entries := engine.Rank(findings, nil)

		require.NotEmpty(t, entries)
		assert.Equal(t, "Community-Acquired Pneumonia (CAP)", entries[0].Condition.Name)
		assert.Equal(t, 7, entries[0].Score)
		assert.Equal(t, 10, entries[0].MaxScore)
	})

	t.Run("unmatched conditions dropped", func(t *testing.T) {
		entries := engine.Rank(findingsFor("hemiparesis"), nil)
		require.Len(t, entries, 1)
		assert.Equal(t, "Acute Ischemic Stroke", entries[0].Condition.Name)
	})

	t.Run("no findings no entries", func(t *testing.T) {
		assert.Empty(t, engine.Rank(nil, nil))
	})

	t.Run("values count as terms", func(t *testing.T) {
		findings := []core.Finding{{Name: "history", Value: "diabetes"}}
		entries := engine.Rank(findings, nil)

		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Condition.Name
		}
		assert.Contains(t, names, "Acute Coronary Syndrome (ACS)")
		assert.Contains(t, names, "Type 2 Diabetes – Acute Complications")
	})

	t.Run("equal scores keep catalog order", func(t *testing.T) {
		// "wheezing" alone matches COPD Exacerbation and Asthma Exacerbation
		// with score 1 each; COPD is declared first.
		entries := engine.Rank(findingsFor("wheezing"), nil)
		require.Len(t, entries, 2)
		assert.Equal(t, "COPD Exacerbation", entries[0].Condition.Name)
		assert.Equal(t, "Asthma Exacerbation", entries[1].Condition.Name)
	})

	t.Run("matched keywords in catalog order", func(t *testing.T) {
		entries := engine.Rank(findingsFor("cough", "fever"), nil)
		require.NotEmpty(t, entries)
		assert.Equal(t, []string{"fever", "cough"}, entries[0].Matched)
	})
}

func TestConfidenceBands(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	tests := []struct {
		name     string
		score    int
		maxScore int
		want     string
	}{
		{"3 of 5 is high", 3, 5, "High"},           // 60%
		{"7 of 12 is moderate", 7, 12, "Moderate"}, // 58%
		{"4 of 10 is moderate", 4, 10, "Moderate"}, // 40%
		{"2 of 6 is low", 2, 6, "Low"},             // 33%
		{"1 of 1 is high", 1, 1, "High"},
		{"zero max treated as one", 0, 0, "Low"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, engine.confidence(tc.score, tc.maxScore))
		})
	}
}

func TestAttachEvidence(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)
	capCond := DefaultCatalog()[0] // pneumonia affinity

	t.Run("affinity passages preferred in retrieval order", func(t *testing.T) {
		evidence := []core.ScoredPassage{
			passage("PMC_sepsis_review", "Sepsis", "fever and tachycardia"),
			passage("PMC_pneumonia_review", "CAP Review", "lobar consolidation"),
		}
		supporting := engine.attachEvidence(capCond, []string{"fever"}, evidence)
		require.Len(t, supporting, 1)
		assert.Equal(t, "PMC_pneumonia_review", supporting[0].SourceID)
	})

	t.Run("affinity passages capped at three", func(t *testing.T) {
		evidence := make([]core.ScoredPassage, 5)
		for i := range evidence {
			p := passage("PMC_pneumonia_review", "CAP Review", "consolidation")
			p.Passage.ID = core.PassageID("PMC_pneumonia_review", i)
			p.Passage.Ordinal = i
			evidence[i] = p
		}
		supporting := engine.attachEvidence(capCond, []string{"fever"}, evidence)
		assert.Len(t, supporting, 3)
	})

	t.Run("keyword fallback only when no affinity match", func(t *testing.T) {
		evidence := []core.ScoredPassage{
			passage("PMC_sepsis_review", "Sepsis", "patients present with fever"),
			passage("PMC_covid19_review", "COVID-19", "fever and cough are common"),
			passage("PMC_stroke_review", "Stroke", "fever may occur"),
		}
		supporting := engine.attachEvidence(capCond, []string{"fever"}, evidence)
		// Fallback caps at two even though three passages mention the keyword.
		require.Len(t, supporting, 2)
		assert.Equal(t, "PMC_sepsis_review", supporting[0].SourceID)
		assert.Equal(t, "PMC_covid19_review", supporting[1].SourceID)
	})

	t.Run("no evidence attaches nothing", func(t *testing.T) {
		supporting := engine.attachEvidence(capCond, []string{"fever"}, nil)
		assert.Empty(t, supporting)
	})

	t.Run("caps are configurable", func(t *testing.T) {
		tight, err := NewEngine(WithEvidenceCaps(1, 1))
		require.NoError(t, err)

		evidence := []core.ScoredPassage{
			passage("PMC_pneumonia_review", "CAP Review", "consolidation"),
			passage("PMC_pneumonia_review", "CAP Review", "crackles"),
		}
		evidence[1].Passage.ID = core.PassageID("PMC_pneumonia_review", 1)
		evidence[1].Passage.Ordinal = 1

		supporting := tight.attachEvidence(capCond, []string{"fever"}, evidence)
		assert.Len(t, supporting, 1)
	})
}

func TestGenerate(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	t.Run("no survivors yields no-match message", func(t *testing.T) {
		report := engine.Generate(nil, nil)
		assert.Equal(t, NoMatchReport, report)
	})

	t.Run("report structure", func(t *testing.T) {
		findings := findingsFor("fever", "cough", "sputum", "crackles")
		evidence := []core.ScoredPassage{
			passage("PMC_pneumonia_review", "Community-Acquired Pneumonia: A Comprehensive Review",
				"Clinical presentation typically includes cough, fever, pleuritic chest pain, and dyspnea."),
		}

		report := engine.Generate(findings, evidence)

		assert.True(t, strings.HasPrefix(report, "# Differential Diagnosis"))
		assert.Contains(t, report, "## 1. Community-Acquired Pneumonia (CAP)")
		assert.Contains(t, report, "**Confidence:**")
		assert.Contains(t, report, "**Matching findings:** fever, cough, sputum, crackles")
		assert.Contains(t, report, "[Source: Community-Acquired Pneumonia: A Comprehensive Review]")
	})

	t.Run("missing evidence noted per condition", func(t *testing.T) {
		report := engine.Generate(findingsFor("hemiparesis"), nil)
		assert.Contains(t, report, "*No directly matching literature chunk retrieved for this condition.*")
	})

	t.Run("at most seven conditions", func(t *testing.T) {
		// dyspnea alone matches 8 catalog conditions
		report := engine.Generate(findingsFor("dyspnea"), nil)
		assert.Contains(t, report, "## 7. ")
		assert.NotContains(t, report, "## 8. ")
	})

	t.Run("snippet truncated to 300 characters", func(t *testing.T) {
		long := strings.Repeat("evidence about fever ", 30) // > 300 chars
		evidence := []core.ScoredPassage{
			passage("PMC_pneumonia_review", "CAP Review", long),
		}
		report := engine.Generate(findingsFor("fever"), evidence)

		for _, line := range strings.Split(report, "\n") {
			if strings.HasPrefix(line, "> \"") {
				assert.LessOrEqual(t, len(line), 300+len("> \"...\""))
				assert.True(t, strings.HasSuffix(line, "...\""))
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		findings := findingsFor("fever", "cough", "dyspnea")
		evidence := []core.ScoredPassage{
			passage("PMC_covid19_review", "COVID-19", "fever, cough, fatigue"),
		}
		assert.Equal(t, engine.Generate(findings, evidence), engine.Generate(findings, evidence))
	})
}

func TestGenerateReport(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	report, err := engine.GenerateReport(context.Background(), findingsFor("fever"), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, report)
}
