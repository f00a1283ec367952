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


package clinsight

import (
	"context"
	"errors"
	"log/slog"

	"github.com/clinsight/clinsight/ai"
	"github.com/clinsight/clinsight/ai/openai"
	"github.com/clinsight/clinsight/core"
	"github.com/clinsight/clinsight/corpus"
	"github.com/clinsight/clinsight/differential"
	"github.com/clinsight/clinsight/extract"
	"github.com/clinsight/clinsight/pipeline"
	"github.com/clinsight/clinsight/retrieval"
	"github.com/clinsight/clinsight/store"
	"github.com/clinsight/clinsight/store/badger"
)

// System wires the full diagnostic stack: the persisted evidence store, the
// retrieval engine, and the AI provider. Create one with NewSystem and reuse
// it across requests.
type System struct {
	backend        *badger.Backend
	storeRepo      *badger.StoreRepository
	evidenceStore  *store.EvidenceStore
	engine         retrieval.Engine
	provider       ai.AIProvider
	ruleExtraction bool
	logger         *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig       *ai.Config
	provider       ai.AIProvider
	articles       []corpus.Article
	topK           int
	ruleExtraction bool
	rebuild        bool
}

// WithAIConfig sets the AI service configuration used to create the default
// OpenAI-compatible provider. Ignored when WithProvider is used.
func WithAIConfig(config *ai.Config) SystemOption {
	return func(o *systemOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects an AI provider, replacing the default
// OpenAI-compatible one.
func WithProvider(provider ai.AIProvider) SystemOption {
	return func(o *systemOptions) {
		o.provider = provider
	}
}

// WithArticles sets the literature corpus to index.
// Default is the built-in corpus.
func WithArticles(articles []corpus.Article) SystemOption {
	return func(o *systemOptions) {
		o.articles = articles
	}
}

// WithTopK sets how many passages retrieval returns per diagnosis.
func WithTopK(topK int) SystemOption {
	return func(o *systemOptions) {
		o.topK = topK
	}
}

// WithRuleExtraction makes pipelines use the deterministic rule-based
// finding extractor instead of the provider's LLM extractor.
func WithRuleExtraction() SystemOption {
	return func(o *systemOptions) {
		o.ruleExtraction = true
	}
}

// WithRebuild forces re-embedding the corpus even when a persisted store
// exists.
func WithRebuild() SystemOption {
	return func(o *systemOptions) {
		o.rebuild = true
	}
}

// NewSystem opens the evidence database at filePath and prepares the
// diagnostic stack. A persisted evidence store is restored when its
// fingerprint still matches; otherwise the corpus is embedded and the
// store persisted before returning.
func NewSystem(ctx context.Context, filePath string, opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(),
		articles: corpus.BuiltinArticles(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	storeRepo, err := badger.NewStoreRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	sys := &System{
		backend:   backend,
		storeRepo: storeRepo,
		provider:  provider,
		logger:    slog.Default().With("component", "system"),
	}

	evidenceStore, err := sys.loadOrBuildStore(ctx, options)
	if err != nil {
		sys.Close()
		return nil, err
	}
	sys.evidenceStore = evidenceStore

	var engineOpts []retrieval.Option
	if options.topK > 0 {
		engineOpts = append(engineOpts, retrieval.WithTopK(options.topK))
	}
	engine, err := retrieval.NewEngine(evidenceStore, provider.Embedder(), engineOpts...)
	if err != nil {
		sys.Close()
		return nil, err
	}
	sys.engine = engine
	sys.ruleExtraction = options.ruleExtraction

	return sys, nil
}

// loadOrBuildStore restores the persisted store or embeds the corpus from
// scratch. A corrupt or mismatched persisted store triggers a rebuild
// rather than an error.
func (s *System) loadOrBuildStore(ctx context.Context, options *systemOptions) (*store.EvidenceStore, error) {
	if !options.rebuild {
		restored, err := s.storeRepo.LoadStore(ctx)
		if err == nil {
			return restored, nil
		}
		if !errors.Is(err, store.ErrStoreNotFound) && !errors.Is(err, store.ErrManifestMismatch) {
			return nil, err
		}
		if errors.Is(err, store.ErrManifestMismatch) {
			s.logger.Warn("persisted evidence store is inconsistent, rebuilding", "err", err)
		}
	}

	builder, err := corpus.NewBuilder(s.provider.Embedder())
	if err != nil {
		return nil, err
	}
	defer builder.Release()

	built, err := builder.Build(ctx, options.articles)
	if err != nil {
		return nil, err
	}

	if err := s.storeRepo.SaveStore(ctx, built); err != nil {
		return nil, err
	}
	return built, nil
}

// Close releases the AI provider and the underlying database.
func (s *System) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// EvidenceStore returns the active evidence store.
func (s *System) EvidenceStore() *store.EvidenceStore {
	return s.evidenceStore
}

// StoreRepository returns the persistence layer for evidence stores.
func (s *System) StoreRepository() *badger.StoreRepository {
	return s.storeRepo
}

// Engine returns the retrieval engine over the active store.
func (s *System) Engine() retrieval.Engine {
	return s.engine
}

// NewRunner creates a pipeline runner over the system's components. The
// provider's report generator is wired in as the preferred generator with
// the deterministic differential engine as fallback.
func (s *System) NewRunner(opts ...pipeline.Option) (*pipeline.Runner, error) {
	fallback, err := differential.NewEngine()
	if err != nil {
		return nil, err
	}

	extractor := s.provider.FindingExtractor()
	runnerOpts := []pipeline.Option{
		pipeline.WithReportGenerator(s.provider.ReportGenerator()),
	}
	if s.ruleExtraction {
		extractor = extract.NewRuleExtractor()
	} else {
		runnerOpts = append(runnerOpts, pipeline.WithExtractorFallback(extract.NewRuleExtractor()))
	}
	runnerOpts = append(runnerOpts, opts...)

	return pipeline.NewRunner(extractor, s.engine, fallback, runnerOpts...)
}

// Diagnose runs the full pipeline over the notes.
func (s *System) Diagnose(ctx context.Context, notes string) (*core.PipelineResult, error) {
	runner, err := s.NewRunner()
	if err != nil {
		return nil, err
	}
	return runner.Run(ctx, notes), nil
}
