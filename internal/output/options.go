package output

import "io"

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithStyles configures the printer to use the provided StyleProvider for styling.
// If the provider is nil or not available, the printer will fall back to plain text.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styleProvider = provider
		}
	}
}

// WithMarkdown configures the renderer used by Printer.Markdown.
func WithMarkdown(renderer MarkdownRenderer) Option {
	return func(p *Printer) {
		p.markdown = renderer
	}
}

// WithWriter configures the printer to write output to the specified writer.
// Default is os.Stdout if not specified.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// TestMode configures the printer for deterministic output in tests.
// This ensures consistent output regardless of terminal capabilities.
func TestMode() Option {
	return func(p *Printer) {
		p.forcePlain = true
		p.markdown = nil
	}
}
