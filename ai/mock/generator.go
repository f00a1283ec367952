package mock

import (
	"context"

	"github.com/clinsight/clinsight/core"
)

// MockReportGenerator is a test double for ai.ReportGenerator.
// It allows custom behavior injection via function fields.
type MockReportGenerator struct {
	// GenerateReportFunc is called by GenerateReport if set.
	// If nil, returns empty text so callers exercise their fallback path.
	GenerateReportFunc func(ctx context.Context, findings []core.Finding, evidence []core.ScoredPassage) (string, error)

	callCount int
}

// NewMockReportGenerator creates a mock report generator with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockGenerator().
func NewMockReportGenerator() *MockReportGenerator {
	return &MockReportGenerator{}
}

// GenerateReport returns empty text by default, signaling callers to fall
// back to deterministic report generation.
func (m *MockReportGenerator) GenerateReport(ctx context.Context, findings []core.Finding, evidence []core.ScoredPassage) (string, error) {
	m.callCount++

	if m.GenerateReportFunc != nil {
		return m.GenerateReportFunc(ctx, findings, evidence)
	}

	return "", nil
}

// CallCount returns the number of times GenerateReport was called.
func (m *MockReportGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockReportGenerator) Reset() {
	m.callCount = 0
	m.GenerateReportFunc = nil
}
