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


// Package differential ranks catalog conditions against extracted findings
// and renders a deterministic, evidence-cited differential diagnosis report.
package differential

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/clinsight/clinsight/core"
)

const (
	defaultMaxEntries    = 7
	defaultSnippetLength = 300
	defaultHighPct       = 60
	defaultModeratePct   = 35
	defaultAffinityCap   = 3
	defaultKeywordCap    = 2

	// NoMatchReport is returned when no catalog condition matches any finding.
	// It is a successful outcome, not an error.
	NoMatchReport = "No matching conditions found for the provided findings. Please provide more clinical detail."
)

// Engine scores conditions against findings and generates reports.
type Engine struct {
	catalog       []core.Condition
	maxEntries    int
	snippetLength int
	highPct       int
	moderatePct   int
	affinityCap   int
	keywordCap    int
	logger        *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithCatalog replaces the default condition catalog.
// Catalog order fixes tie-breaking between equally scored conditions.
func WithCatalog(catalog []core.Condition) Option {
	return func(e *Engine) error {
		for i := range catalog {
			if err := core.ValidateCondition(&catalog[i]); err != nil {
				return err
			}
		}
		e.catalog = catalog
		return nil
	}
}

// WithMaxEntries sets how many ranked conditions the report includes.
// Default is 7.
func WithMaxEntries(n int) Option {
	return func(e *Engine) error {
		if n > 0 {
			e.maxEntries = n
		}
		return nil
	}
}

// WithSnippetLength sets the evidence snippet length in characters.
// Default is 300.
func WithSnippetLength(n int) Option {
	return func(e *Engine) error {
		if n > 0 {
			e.snippetLength = n
		}
		return nil
	}
}

// WithConfidenceBands sets the match percentage thresholds for High and
// Moderate confidence. Defaults are 60 and 35.
func WithConfidenceBands(highPct, moderatePct int) Option {
	return func(e *Engine) error {
		if highPct < moderatePct {
			return fmt.Errorf("high band %d below moderate band %d", highPct, moderatePct)
		}
		e.highPct = highPct
		e.moderatePct = moderatePct
		return nil
	}
}

// WithEvidenceCaps sets how many supporting passages a condition may carry:
// affinityCap for preferred-source passages, keywordCap for the keyword
// fallback. Defaults are 3 and 2.
func WithEvidenceCaps(affinityCap, keywordCap int) Option {
	return func(e *Engine) error {
		if affinityCap < 1 || keywordCap < 1 {
			return fmt.Errorf("evidence caps must be positive, got %d and %d", affinityCap, keywordCap)
		}
		e.affinityCap = affinityCap
		e.keywordCap = keywordCap
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a differential engine with the built-in catalog.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		catalog:       DefaultCatalog(),
		maxEntries:    defaultMaxEntries,
		snippetLength: defaultSnippetLength,
		highPct:       defaultHighPct,
		moderatePct:   defaultModeratePct,
		affinityCap:   defaultAffinityCap,
		keywordCap:    defaultKeywordCap,
		logger:        slog.Default().With("component", "differential-engine"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Rank scores every catalog condition against the findings and returns the
// surviving conditions ordered by score descending. Conditions with no
// matching keyword are dropped. Equal scores keep catalog order.
func (e *Engine) Rank(findings []core.Finding, evidence []core.ScoredPassage) []core.DifferentialEntry {
	termSet := findingTerms(findings)

	entries := make([]core.DifferentialEntry, 0, len(e.catalog))
	for _, condition := range e.catalog {
		matched := make([]string, 0, len(condition.Keywords))
		for _, kw := range condition.Keywords {
			if termSet[kw] {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}

		entry := core.DifferentialEntry{
			Condition:  condition,
			Matched:    matched,
			Score:      len(matched),
			MaxScore:   len(condition.Keywords),
			Supporting: e.attachEvidence(condition, matched, evidence),
		}
		entry.Confidence = e.confidence(entry.Score, entry.MaxScore)
		entries = append(entries, entry)
	}

	// Stable sort keeps catalog order for equal scores.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	e.logger.Debug("ranked conditions", "candidates", len(entries))
	return entries
}

// attachEvidence selects supporting passages for a condition. Passages from
// the condition's preferred source are taken first, in retrieval order. Only
// when none exist, passages whose text mentions a matched keyword are taken
// instead, capped at two. At most three passages are attached.
func (e *Engine) attachEvidence(condition core.Condition, matched []string, evidence []core.ScoredPassage) []core.ScoredPassage {
	var supporting []core.ScoredPassage
	affinity := strings.ToLower(condition.SourceAffinity)

	for _, passage := range evidence {
		if affinity != "" && strings.Contains(strings.ToLower(passage.SourceID), affinity) {
			supporting = append(supporting, passage)
		}
	}

	if len(supporting) == 0 {
		for _, passage := range evidence {
			text := strings.ToLower(passage.Text)
			for _, kw := range matched {
				if strings.Contains(text, kw) {
					supporting = append(supporting, passage)
					break
				}
			}
			if len(supporting) >= e.keywordCap {
				break
			}
		}
	}

	if len(supporting) > e.affinityCap {
		supporting = supporting[:e.affinityCap]
	}
	return supporting
}

// confidence maps a score fraction to a band.
func (e *Engine) confidence(score, maxScore int) string {
	if maxScore < 1 {
		maxScore = 1
	}
	pct := int(math.Round(float64(score) / float64(maxScore) * 100))
	switch {
	case pct >= e.highPct:
		return "High"
	case pct >= e.moderatePct:
		return "Moderate"
	default:
		return "Low"
	}
}

// Generate renders the ranked differential as a Markdown report with inline
// citations. When nothing matches it returns NoMatchReport.
func (e *Engine) Generate(findings []core.Finding, evidence []core.ScoredPassage) string {
	entries := e.Rank(findings, evidence)
	if len(entries) == 0 {
		return NoMatchReport
	}

	if len(entries) > e.maxEntries {
		entries = entries[:e.maxEntries]
	}

	lines := []string{"# Differential Diagnosis\n"}
	for rank, entry := range entries {
		lines = append(lines, fmt.Sprintf("## %d. %s", rank+1, entry.Condition.Name))
		lines = append(lines, fmt.Sprintf("**Confidence:** %s (%d/%d key findings matched)\n",
			entry.Confidence, entry.Score, entry.MaxScore))
		lines = append(lines, fmt.Sprintf("**Description:** %s\n", entry.Condition.Description))
		lines = append(lines, fmt.Sprintf("**Matching findings:** %s\n", strings.Join(entry.Matched, ", ")))

		if len(entry.Supporting) > 0 {
			lines = append(lines, "**Supporting Evidence:**")
			for _, passage := range entry.Supporting {
				lines = append(lines, fmt.Sprintf("> \"%s...\"", e.snippet(passage.Text)))
				lines = append(lines, fmt.Sprintf("> — *[Source: %s](%s)*\n", passage.SourceTitle, passage.SourceURL))
			}
		} else {
			lines = append(lines, "*No directly matching literature chunk retrieved for this condition.*\n")
		}

		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// GenerateReport implements ai.ReportGenerator so the engine can serve as
// the deterministic fallback generator. It never fails.
func (e *Engine) GenerateReport(ctx context.Context, findings []core.Finding, evidence []core.ScoredPassage) (string, error) {
	return e.Generate(findings, evidence), nil
}

// snippet returns the leading portion of text with newlines flattened.
func (e *Engine) snippet(text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	runes := []rune(flat)
	if len(runes) > e.snippetLength {
		runes = runes[:e.snippetLength]
	}
	return string(runes)
}

// findingTerms collects the lowercased names and values of all findings.
func findingTerms(findings []core.Finding) map[string]bool {
	set := make(map[string]bool, len(findings)*2)
	for _, f := range findings {
		for _, term := range f.Terms() {
			set[term] = true
		}
	}
	return set
}
