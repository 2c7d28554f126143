// Package render turns markdown into terminal output with glamour.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"doxhub/internal/logger"
)

// DefaultWordWrap is the wrap width used when none is configured.
const DefaultWordWrap = 80

// Markdown renders markdown with a fixed glamour style.
type Markdown struct {
	renderer *glamour.TermRenderer
	style    string
}

// NewMarkdown creates a renderer for a glamour standard style ("auto", "dark",
// "light", "notty", "ascii"). Unknown styles fall back to "auto".
func NewMarkdown(style string, wordWrap int) (*Markdown, error) {
	if wordWrap <= 0 {
		wordWrap = DefaultWordWrap
	}

	options := []glamour.TermRendererOption{glamour.WithWordWrap(wordWrap)}
	switch style {
	case "", "auto":
		style = "auto"
		options = append(options, glamour.WithAutoStyle())
	default:
		options = append(options, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		logger.Debug("Failed to create renderer with style, falling back to auto", "style", style, "error", err)
		renderer, err = glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wordWrap))
		if err != nil {
			return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		style = "auto"
	}

	return &Markdown{renderer: renderer, style: style}, nil
}

// Style returns the glamour style in use.
func (m *Markdown) Style() string {
	return m.style
}

// Render renders markdown content to ANSI terminal output.
func (m *Markdown) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}

	rendered, err := m.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return rendered, nil
}
