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
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/clinsight/clinsight/ai"
	"github.com/clinsight/clinsight/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// FindingExtractor implements ai.FindingExtractor using OpenAI-compatible chat APIs.
type FindingExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// finding is an internal type used for JSON unmarshaling.
// It matches the structure expected by the LLM.
type finding struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Context string `json:"context"`
}

// extraction is the wrapper structure for the LLM's JSON response.
type extraction struct {
	Findings []finding `json:"findings"`
}

// newFindingExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newFindingExtractor(config *ai.Config) (*FindingExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/extraction
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.GeneratorHost),
		openai.WithToken("none"),
		openai.WithModel(config.GeneratorModel),
	)
	if err != nil {
		return nil, err
	}

	return &FindingExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewFindingExtractor creates a new finding extractor using the provided configuration.
//
// Returns ai.FindingExtractor interface to enforce abstraction.
func NewFindingExtractor(config *ai.Config) (ai.FindingExtractor, error) {
	return newFindingExtractor(config)
}

// ExtractFindings extracts clinical findings from free-text notes using an LLM.
func (e *FindingExtractor) ExtractFindings(ctx context.Context, notes string) ([]core.Finding, error) {
	notes = normalizeNotes(notes)

	systemPrompt := buildExtractionPrompt()
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(notes),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result extraction
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return []core.Finding{}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			e.logger.Warn("error parsing extractor response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse extractor response after retries", "err", lastErr)
		return nil, lastErr
	}

	// Convert to core.Finding, dropping entries with no name and
	// keeping the first occurrence of each finding name.
	seen := make(map[string]bool, len(result.Findings))
	extracted := make([]core.Finding, 0, len(result.Findings))
	for _, f := range result.Findings {
		name := strings.ToLower(strings.TrimSpace(f.Name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		extracted = append(extracted, core.Finding{
			Name:    name,
			Value:   strings.TrimSpace(f.Value),
			Context: strings.TrimSpace(f.Context),
		})
	}

	e.logger.Debug("extracted findings",
		"total", len(result.Findings),
		"kept", len(extracted))

	return extracted, nil
}
