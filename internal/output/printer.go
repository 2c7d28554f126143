package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer is the main output handler that supports both plain and styled output.
// It uses dependency injection to optionally support styling while maintaining
// clean architecture with no service dependencies.
type Printer struct {
	styleProvider StyleProvider
	markdown      MarkdownRenderer
	writer        io.Writer
	forcePlain    bool

	mu sync.Mutex
}

// NewPrinter creates a new Printer with the given options.
// By default, it writes to os.Stdout.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Print outputs text without any semantic styling.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Println outputs text with a newline without any semantic styling.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info outputs informational text with info styling.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Success outputs success text with success styling (typically green).
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text, true)
}

// Warning outputs warning text with warning styling (typically yellow).
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error outputs error text with error styling (typically red).
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Markdown renders markdown through the configured renderer. Without a renderer, in
// plain mode or on render failure the text is printed verbatim.
func (p *Printer) Markdown(text string) {
	if p.markdown != nil && !p.forcePlain {
		if rendered, err := p.markdown.Render(text); err == nil {
			p.output(SemanticPlain, rendered, true)
			return
		}
	}
	p.output(SemanticPlain, text, true)
}

// Styled renders text with the style of semantic without writing it.
// Plain mode returns text unchanged so callers control layout themselves.
func (p *Printer) Styled(semantic SemanticType, text string) string {
	if !p.IsStylable() {
		return text
	}
	return p.styleProvider.GetStyle(string(semantic)).Render(text)
}

func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var result string
	if p.IsStylable() {
		result = p.styleProvider.GetStyle(string(semantic)).Render(text)
	} else {
		// Fall back to plain text with semantic prefixes
		result = plainStyles.GetStyle(string(semantic)).Render(text)
	}

	if addNewline && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	_, _ = fmt.Fprint(p.writer, result) // Ignore write errors for output operations
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}
