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


package openai

import (
	"log/slog"

	"github.com/clinsight/clinsight/ai"
)

// Provider implements ai.AIProvider using OpenAI-compatible services.
// It manages embedder, finding extractor and report generator instances.
type Provider struct {
	config    *ai.Config
	embedder  *Embedder
	extractor *FindingExtractor
	generator *ReportGenerator
	logger    *slog.Logger
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns ai.AIProvider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create services (using internal constructors for concrete types)
	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	extractor, err := newFindingExtractor(config)
	if err != nil {
		return nil, err
	}

	generator, err := newReportGenerator(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:    config,
		embedder:  embedder,
		extractor: extractor,
		generator: generator,
		logger:    slog.Default().With("component", "openai-provider"),
	}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// FindingExtractor returns the finding extraction service.
func (p *Provider) FindingExtractor() ai.FindingExtractor {
	return p.extractor
}

// ReportGenerator returns the report generation service.
func (p *Provider) ReportGenerator() ai.ReportGenerator {
	return p.generator
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
