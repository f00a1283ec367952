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
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/clinsight/clinsight/ai"
	"github.com/clinsight/clinsight/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ReportGenerator implements ai.ReportGenerator using OpenAI-compatible chat APIs.
type ReportGenerator struct {
	client llms.Model
	logger *slog.Logger
}

// newReportGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newReportGenerator(config *ai.Config) (*ReportGenerator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.GeneratorHost),
		openai.WithToken("none"),
		openai.WithModel(config.GeneratorModel),
	)
	if err != nil {
		return nil, err
	}

	return &ReportGenerator{
		client: client,
		logger: slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewReportGenerator creates a new report generator using the provided configuration.
//
// Returns ai.ReportGenerator interface to enforce abstraction.
func NewReportGenerator(config *ai.Config) (ai.ReportGenerator, error) {
	return newReportGenerator(config)
}

// GenerateReport produces a differential diagnosis report citing the given evidence.
// It returns ("", nil) when the model produces no usable text so callers can fall
// back to the deterministic engine.
func (g *ReportGenerator) GenerateReport(ctx context.Context, findings []core.Finding, evidence []core.ScoredPassage) (string, error) {
	prompt := buildReportPrompt(formatFindings(findings), formatEvidence(evidence))
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(0.2))
	if err != nil {
		g.logger.Error("failed to generate report", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		g.logger.Debug("no choices returned from model")
		return "", nil
	}

	report := strings.TrimSpace(response.Choices[0].Content)
	g.logger.Debug("generated report", "length", len(report))
	return report, nil
}

// formatFindings renders findings one per line for the prompt.
func formatFindings(findings []core.Finding) string {
	var b strings.Builder
	for _, f := range findings {
		b.WriteString("- ")
		b.WriteString(f.Name)
		if f.Value != "" {
			b.WriteString(": ")
			b.WriteString(f.Value)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatEvidence renders scored passages with their titles so the model can
// cite them by exact title.
func formatEvidence(evidence []core.ScoredPassage) string {
	var b strings.Builder
	for i, e := range evidence {
		fmt.Fprintf(&b, "[%d] Title: %s\nPassage: %s\n\n", i+1, e.SourceTitle, e.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}
