// Package output provides the console output system for DoxHub.
// It uses dependency injection to support optional styling while maintaining clean architecture.
package output

// StyleProvider is the interface that styling sources (like a theme.Theme) implement
// to provide styled text rendering capabilities.
// The output package depends only on this interface, not on concrete themes.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the style provider is ready to provide styles.
	// This allows the output system to gracefully fall back to plain text.
	IsAvailable() bool
}

// TextStyle represents the capability to render text with styling.
// This interface is implemented by lipgloss.Style or other styling systems.
type TextStyle interface {
	Render(text ...string) string
}

// MarkdownRenderer turns markdown into terminal output.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	SemanticPlain   SemanticType = "plain"
	SemanticInfo    SemanticType = "info"
	SemanticSuccess SemanticType = "success"
	SemanticWarning SemanticType = "warning"
	SemanticError   SemanticType = "error"

	// Menu elements
	SemanticTitle       SemanticType = "title"
	SemanticBreadcrumb  SemanticType = "breadcrumb"
	SemanticNumber      SemanticType = "number"
	SemanticLabel       SemanticType = "label"
	SemanticDescription SemanticType = "description"
	SemanticPrompt      SemanticType = "prompt"
	SemanticHighlight   SemanticType = "highlight"
)
