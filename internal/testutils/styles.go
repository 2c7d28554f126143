package testutils

import (
	"strings"

	"doxhub/internal/output"
)

// MockStyleProvider wraps text in [semantic]...[/semantic] markers so tests can see
// which style was applied without ANSI sequences.
type MockStyleProvider struct{}

// NewMockStyleProvider creates a mock style provider.
func NewMockStyleProvider() *MockStyleProvider {
	return &MockStyleProvider{}
}

// GetStyle implements output.StyleProvider.
func (m *MockStyleProvider) GetStyle(semantic string) output.TextStyle {
	return mockStyle(semantic)
}

// IsAvailable implements output.StyleProvider.
func (m *MockStyleProvider) IsAvailable() bool {
	return true
}

type mockStyle string

func (m mockStyle) Render(text ...string) string {
	return "[" + string(m) + "]" + strings.Join(text, " ") + "[/" + string(m) + "]"
}
