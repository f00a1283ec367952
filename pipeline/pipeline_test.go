package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsight/clinsight/ai"
	"github.com/clinsight/clinsight/ai/mock"
	"github.com/clinsight/clinsight/core"
	"github.com/clinsight/clinsight/corpus"
	"github.com/clinsight/clinsight/differential"
	"github.com/clinsight/clinsight/extract"
	"github.com/clinsight/clinsight/retrieval"
)

const pneumoniaNotes = `45-year-old male presents with 3 days of productive cough
with yellow sputum, fever up to 38.9C, and pleuritic chest pain on the right side.
Reports increasing shortness of breath on exertion. Smoker, 20 pack-years.
On exam: crackles at the right lung base, temperature 38.5C.`

const pulmonaryEmbolismNotes = `65-year-old obese female presents with sudden onset
dyspnea and pleuritic chest pain that started this morning. She underwent right knee
replacement surgery 2 weeks ago. Reports one episode of hemoptysis.`

const heartFailureNotes = `72-year-old female with progressive dyspnea on exertion
over 3 weeks, orthopnea requiring 3 pillows, and paroxysmal nocturnal dyspnea.
Weight gain of 4 kg. Bilateral ankle edema. Elevated JVP, S3 gallop, bibasilar crackles.`

const covidNotes = `35-year-old male with fever, dry cough, fatigue, and myalgia
for 5 days. Headache and loss of smell and taste since yesterday.`

func newTestEngine(t *testing.T, embedder ai.Embedder) retrieval.Engine {
	t.Helper()

	builder, err := corpus.NewBuilder(embedder, corpus.WithPoolSize(2))
	require.NoError(t, err)
	defer builder.Release()

	evidenceStore, err := builder.Build(context.Background(), corpus.BuiltinArticles())
	require.NoError(t, err)

	engine, err := retrieval.NewEngine(evidenceStore, embedder)
	require.NoError(t, err)
	return engine
}

func newTestRunner(t *testing.T, opts ...Option) *Runner {
	t.Helper()

	fallback, err := differential.NewEngine()
	require.NoError(t, err)

	runner, err := NewRunner(
		extract.NewRuleExtractor(),
		newTestEngine(t, mock.NewMockEmbedder()),
		fallback,
		opts...,
	)
	require.NoError(t, err)
	return runner
}

func TestNewRunner(t *testing.T) {
	fallback, err := differential.NewEngine()
	require.NoError(t, err)
	engine := newTestEngine(t, mock.NewMockEmbedder())

	t.Run("requires extractor", func(t *testing.T) {
		_, err := NewRunner(nil, engine, fallback)
		assert.ErrorIs(t, err, ErrExtractorRequired)
	})

	t.Run("requires retrieval engine", func(t *testing.T) {
		_, err := NewRunner(extract.NewRuleExtractor(), nil, fallback)
		assert.ErrorIs(t, err, ErrRetrievalEngineRequired)
	})

	t.Run("requires fallback generator", func(t *testing.T) {
		_, err := NewRunner(extract.NewRuleExtractor(), engine, nil)
		assert.ErrorIs(t, err, ErrFallbackGeneratorRequired)
	})
}

func TestRunVignettes(t *testing.T) {
	runner := newTestRunner(t)

	tests := []struct {
		name        string
		notes       string
		wantFinding string
		wantTop     string
	}{
		{"pneumonia", pneumoniaNotes, "cough", "Community-Acquired Pneumonia (CAP)"},
		{"pulmonary embolism", pulmonaryEmbolismNotes, "hemoptysis", "Pulmonary Embolism (PE)"},
		{"heart failure", heartFailureNotes, "orthopnea", "Acute Heart Failure / Decompensated Heart Failure"},
		{"covid-19", covidNotes, "myalgia", "COVID-19"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := runner.Run(context.Background(), tc.notes)

			require.NoError(t, result.Err)
			assert.NotEmpty(t, result.Findings)
			assert.NotEmpty(t, result.Evidence)
			assert.True(t, strings.HasPrefix(result.Report, "# Differential Diagnosis"))
			assert.True(t, result.Validation.Valid, "issues: %v", result.Validation.Issues)

			names := make([]string, len(result.Findings))
			for i, f := range result.Findings {
				names[i] = f.Name
			}
			assert.Contains(t, names, tc.wantFinding)
			assert.Contains(t, result.Report, "## 1. "+tc.wantTop)

			require.Len(t, result.Timings, 4)
			assert.Equal(t, StageExtract, result.Timings[0].Stage)
			assert.Equal(t, StageRetrieve, result.Timings[1].Stage)
			assert.Equal(t, StageGenerate, result.Timings[2].Stage)
			assert.Equal(t, StageValidate, result.Timings[3].Stage)
		})
	}
}

func TestRunNoFindings(t *testing.T) {
	runner := newTestRunner(t)

	result := runner.Run(context.Background(), "The weather was pleasant today.")

	assert.ErrorIs(t, result.Err, ErrNoFindings)
	assert.Empty(t, result.Findings)
	assert.Empty(t, result.Evidence)
	assert.Empty(t, result.Report)

	// Only the extraction stage ran.
	require.Len(t, result.Timings, 1)
	assert.Equal(t, StageExtract, result.Timings[0].Stage)
}

func TestRunExtractorError(t *testing.T) {
	fallback, err := differential.NewEngine()
	require.NoError(t, err)

	extractor := mock.NewMockFindingExtractor()
	extractor.ExtractFindingsFunc = func(ctx context.Context, notes string) ([]core.Finding, error) {
		return nil, errors.New("model unavailable")
	}

	runner, err := NewRunner(extractor, newTestEngine(t, mock.NewMockEmbedder()), fallback)
	require.NoError(t, err)

	result := runner.Run(context.Background(), pneumoniaNotes)

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "extract findings")
	require.Len(t, result.Timings, 1)
}

func TestRunExtractorFallback(t *testing.T) {
	fallback, err := differential.NewEngine()
	require.NoError(t, err)

	primary := mock.NewMockFindingExtractor()
	primary.ExtractFindingsFunc = func(ctx context.Context, notes string) ([]core.Finding, error) {
		return nil, errors.New("model unavailable")
	}

	runner, err := NewRunner(primary, newTestEngine(t, mock.NewMockEmbedder()), fallback,
		WithExtractorFallback(extract.NewRuleExtractor()))
	require.NoError(t, err)

	result := runner.Run(context.Background(), pneumoniaNotes)

	require.NoError(t, result.Err)
	assert.NotEmpty(t, result.Findings)
	assert.Equal(t, 1, primary.CallCount())
	require.Len(t, result.Timings, 4)
}

func TestRunRetrievalError(t *testing.T) {
	fallback, err := differential.NewEngine()
	require.NoError(t, err)

	// Embed the corpus normally, then fail query embedding only.
	embedder := mock.NewMockEmbedder()
	engine := newTestEngine(t, embedder)
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding host down")
	}

	runner, err := NewRunner(extract.NewRuleExtractor(), engine, fallback)
	require.NoError(t, err)

	result := runner.Run(context.Background(), pneumoniaNotes)

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "retrieve literature")
	assert.NotEmpty(t, result.Findings)
	assert.Empty(t, result.Evidence)
	require.Len(t, result.Timings, 2)
	assert.Equal(t, StageRetrieve, result.Timings[1].Stage)
}

func TestRunGeneratorSelection(t *testing.T) {
	t.Run("external report preferred when non-empty", func(t *testing.T) {
		external := mock.NewMockReportGenerator()
		external.GenerateReportFunc = func(ctx context.Context, findings []core.Finding, evidence []core.ScoredPassage) (string, error) {
			return "# Differential Diagnosis\n\nExternal assessment.", nil
		}

		runner := newTestRunner(t, WithReportGenerator(external))
		result := runner.Run(context.Background(), pneumoniaNotes)

		require.NoError(t, result.Err)
		assert.Equal(t, "# Differential Diagnosis\n\nExternal assessment.", result.Report)
		assert.Equal(t, 1, external.CallCount())
	})

	t.Run("fallback used when external errors", func(t *testing.T) {
		external := mock.NewMockReportGenerator()
		external.GenerateReportFunc = func(ctx context.Context, findings []core.Finding, evidence []core.ScoredPassage) (string, error) {
			return "", errors.New("generator host down")
		}

		runner := newTestRunner(t, WithReportGenerator(external))
		result := runner.Run(context.Background(), pneumoniaNotes)

		require.NoError(t, result.Err)
		assert.Contains(t, result.Report, "**Confidence:**")
		require.Len(t, result.Timings, 4)
	})

	t.Run("fallback used when external returns empty text", func(t *testing.T) {
		// Default mock generator returns empty text.
		external := mock.NewMockReportGenerator()

		runner := newTestRunner(t, WithReportGenerator(external))
		result := runner.Run(context.Background(), pneumoniaNotes)

		require.NoError(t, result.Err)
		assert.Equal(t, 1, external.CallCount())
		assert.Contains(t, result.Report, "**Confidence:**")
	})
}

func TestRunDeterministic(t *testing.T) {
	runner := newTestRunner(t)

	first := runner.Run(context.Background(), heartFailureNotes)
	second := runner.Run(context.Background(), heartFailureNotes)

	require.NoError(t, first.Err)
	assert.Equal(t, first.Findings, second.Findings)
	assert.Equal(t, first.Report, second.Report)
	assert.Equal(t, first.Validation, second.Validation)
}
