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


// Package pipeline orchestrates the four analysis stages over clinical
// notes: finding extraction, evidence retrieval, report generation, and
// citation validation.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clinsight/clinsight/ai"
	"github.com/clinsight/clinsight/citations"
	"github.com/clinsight/clinsight/core"
	"github.com/clinsight/clinsight/retrieval"
)

// Stage names used in timing entries.
const (
	StageExtract  = "extract_findings"
	StageRetrieve = "retrieve_literature"
	StageGenerate = "generate_differential"
	StageValidate = "validate_citations"
)

// Runner executes the full pipeline for one set of clinical notes.
// A Runner is safe for concurrent use; each Run owns its result.
type Runner struct {
	extractor         ai.FindingExtractor
	extractorFallback ai.FindingExtractor // optional, used when extractor errors
	engine            retrieval.Engine
	generator         ai.ReportGenerator // optional external generator, tried first
	fallback          ai.ReportGenerator // deterministic generator, always available
	logger            *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner) error

// WithReportGenerator sets an external report generator that is tried
// before the deterministic fallback. A generator that returns empty text
// or an error simply yields to the fallback.
func WithReportGenerator(generator ai.ReportGenerator) Option {
	return func(r *Runner) error {
		r.generator = generator
		return nil
	}
}

// WithExtractorFallback sets a finding extractor that is used when the
// primary one fails. Pairs an LLM extractor with the deterministic
// rule-based one.
func WithExtractorFallback(extractor ai.FindingExtractor) Option {
	return func(r *Runner) error {
		r.extractorFallback = extractor
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRunner creates a pipeline runner.
func NewRunner(
	extractor ai.FindingExtractor,
	engine retrieval.Engine,
	fallback ai.ReportGenerator,
	opts ...Option,
) (*Runner, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if engine == nil {
		return nil, ErrRetrievalEngineRequired
	}
	if fallback == nil {
		return nil, ErrFallbackGeneratorRequired
	}

	r := &Runner{
		extractor: extractor,
		engine:    engine,
		fallback:  fallback,
		logger:    slog.Default().With("component", "pipeline"),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Run executes all four stages over the notes. A stage failure stops the
// pipeline and is reported in the result's Err field; stages that already
// completed keep their output and timings. An empty extraction result is
// terminal but keeps its timing entry.
func (r *Runner) Run(ctx context.Context, notes string) *core.PipelineResult {
	result := &core.PipelineResult{}

	// Stage 1: finding extraction
	t0 := time.Now()
	findings, err := r.extractor.ExtractFindings(ctx, notes)
	if err != nil && r.extractorFallback != nil {
		r.logger.Warn("finding extractor failed, using fallback", "err", err)
		findings, err = r.extractorFallback.ExtractFindings(ctx, notes)
	}
	result.Timings = append(result.Timings, core.StageTiming{Stage: StageExtract, Duration: time.Since(t0)})
	if err != nil {
		result.Err = fmt.Errorf("extract findings: %w", err)
		return result
	}
	result.Findings = findings

	if len(findings) == 0 {
		r.logger.Info("no findings extracted, stopping pipeline")
		result.Err = ErrNoFindings
		return result
	}

	// Stage 2: literature retrieval
	t0 = time.Now()
	evidence, err := r.engine.Retrieve(ctx, findings)
	result.Timings = append(result.Timings, core.StageTiming{Stage: StageRetrieve, Duration: time.Since(t0)})
	if err != nil {
		result.Err = fmt.Errorf("retrieve literature: %w", err)
		return result
	}
	result.Evidence = evidence

	// Stage 3: report generation
	t0 = time.Now()
	report, err := r.generate(ctx, findings, evidence)
	result.Timings = append(result.Timings, core.StageTiming{Stage: StageGenerate, Duration: time.Since(t0)})
	if err != nil {
		result.Err = fmt.Errorf("generate differential: %w", err)
		return result
	}
	result.Report = report

	// Stage 4: citation validation
	t0 = time.Now()
	result.Validation = citations.Validate(report, evidence)
	result.Timings = append(result.Timings, core.StageTiming{Stage: StageValidate, Duration: time.Since(t0)})

	r.logger.Info("pipeline completed",
		"findings", len(result.Findings),
		"evidence", len(result.Evidence),
		"valid", result.Validation.Valid,
		"citations", result.Validation.CitationsFound)

	return result
}

// generate tries the external generator first and falls back to the
// deterministic one when it fails or produces no text.
func (r *Runner) generate(ctx context.Context, findings []core.Finding, evidence []core.ScoredPassage) (string, error) {
	if r.generator != nil {
		report, err := r.generator.GenerateReport(ctx, findings, evidence)
		if err != nil {
			r.logger.Warn("external generator failed, using fallback", "err", err)
		} else if report != "" {
			return report, nil
		}
	}
	return r.fallback.GenerateReport(ctx, findings, evidence)
}
