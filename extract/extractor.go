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


// Package extract provides a deterministic rule-based clinical finding
// extractor. It recognizes a fixed vocabulary of symptoms, signs and risk
// factors plus age and sex, and needs no external model, which makes it the
// fallback when no LLM is configured and the reference implementation in
// tests.
package extract

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/clinsight/clinsight/ai"
	"github.com/clinsight/clinsight/core"
)

var (
	agePattern    = regexp.MustCompile(`(\d{1,3})[\s-]*year[\s-]*old`)
	malePattern   = regexp.MustCompile(`\b(male|man)\b`)
	femalePattern = regexp.MustCompile(`\b(female|woman)\b`)
	// Sentence boundary: terminal punctuation followed by whitespace.
	sentencePattern = regexp.MustCompile(`[.!?]\s+`)
)

// RuleExtractor implements ai.FindingExtractor with keyword rules.
// The zero value is not usable; call NewRuleExtractor.
type RuleExtractor struct {
	terms  []*termMatcher
	logger *slog.Logger
}

type termMatcher struct {
	name    string
	pattern *regexp.Regexp
}

// newRuleExtractor is an internal constructor that returns the concrete type.
func newRuleExtractor() *RuleExtractor {
	terms := make([]*termMatcher, len(knownFindings))
	for i, name := range knownFindings {
		terms[i] = &termMatcher{
			name:    name,
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`),
		}
	}
	return &RuleExtractor{
		terms:  terms,
		logger: slog.Default().With("component", "rule-extractor"),
	}
}

// NewRuleExtractor creates a rule-based finding extractor.
//
// Returns ai.FindingExtractor interface to enforce abstraction.
func NewRuleExtractor() ai.FindingExtractor {
	return newRuleExtractor()
}

// ExtractFindings extracts clinical findings from free-text notes.
// Age is reported first, then sex, then vocabulary terms in declaration
// order. Each term is reported at most once with the first sentence it
// appeared in as context. Extraction never fails.
func (e *RuleExtractor) ExtractFindings(ctx context.Context, notes string) ([]core.Finding, error) {
	notesLower := strings.ToLower(notes)
	sentences := splitSentences(notes)

	findings := []core.Finding{}

	if m := agePattern.FindStringSubmatch(notesLower); m != nil {
		findings = append(findings, core.Finding{
			Name:    "age",
			Value:   m[1],
			Context: m[0],
		})
	}

	if malePattern.MatchString(notesLower) {
		findings = append(findings, core.Finding{Name: "sex", Value: "male"})
	} else if femalePattern.MatchString(notesLower) {
		findings = append(findings, core.Finding{Name: "sex", Value: "female"})
	}

	for _, term := range e.terms {
		if !term.pattern.MatchString(notesLower) {
			continue
		}
		ctxSentence := ""
		for _, s := range sentences {
			if term.pattern.MatchString(strings.ToLower(s)) {
				ctxSentence = strings.TrimSpace(s)
				break
			}
		}
		findings = append(findings, core.Finding{
			Name:    term.name,
			Context: ctxSentence,
		})
	}

	e.logger.Debug("extracted findings", "count", len(findings))
	return findings, nil
}

// splitSentences splits text at terminal punctuation followed by whitespace,
// keeping the punctuation with the preceding sentence.
func splitSentences(text string) []string {
	locs := sentencePattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}
	sentences := make([]string, 0, len(locs)+1)
	start := 0
	for _, loc := range locs {
		sentences = append(sentences, text[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}
