package mock

import (
	"context"
	"strings"

	"github.com/clinsight/clinsight/core"
)

// MockFindingExtractor is a test double for ai.FindingExtractor.
// It allows custom behavior injection via function fields.
type MockFindingExtractor struct {
	// ExtractFindingsFunc is called by ExtractFindings if set.
	// If nil, uses default simple word extraction.
	ExtractFindingsFunc func(ctx context.Context, notes string) ([]core.Finding, error)

	callCount int
}

// NewMockFindingExtractor creates a mock finding extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockExtractor().
func NewMockFindingExtractor() *MockFindingExtractor {
	return &MockFindingExtractor{}
}

// ExtractFindings extracts simple mock findings from notes.
// Default behavior: splits notes by spaces and creates findings from words.
func (m *MockFindingExtractor) ExtractFindings(ctx context.Context, notes string) ([]core.Finding, error) {
	m.callCount++

	if m.ExtractFindingsFunc != nil {
		return m.ExtractFindingsFunc(ctx, notes)
	}

	// Default: turn the first few words into findings
	words := strings.Fields(strings.ToLower(notes))
	if len(words) == 0 {
		return []core.Finding{}, nil
	}

	seen := make(map[string]bool, len(words))
	findings := make([]core.Finding, 0, len(words))
	for _, word := range words {
		if len(findings) >= 5 { // Limit to 5 findings
			break
		}

		// Clean the word
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true

		findings = append(findings, core.Finding{
			Name:    word,
			Context: notes,
		})
	}

	return findings, nil
}

// CallCount returns the number of times ExtractFindings was called.
func (m *MockFindingExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockFindingExtractor) Reset() {
	m.callCount = 0
	m.ExtractFindingsFunc = nil
}
