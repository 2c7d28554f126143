package output

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeMarkdown struct {
	err error
}

func (f fakeMarkdown) Render(markdown string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "<md>" + markdown + "</md>", nil
}

type bracketStyles struct {
	available bool
}

func (b bracketStyles) GetStyle(semantic string) TextStyle {
	return bracketStyle(semantic)
}

func (b bracketStyles) IsAvailable() bool {
	return b.available
}

type bracketStyle string

func (s bracketStyle) Render(text ...string) string {
	return "[" + string(s) + "]" + strings.Join(text, " ") + "[/" + string(s) + "]"
}

func TestPrinter_PlainSemantics(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	printer.Print("hello ")
	printer.Println("world")
	printer.Info("information")
	printer.Success("opened")
	printer.Warning("careful")
	printer.Error("failed")

	assert.Equal(t, []string{
		"hello world",
		"ℹ information",
		"✓ opened",
		"⚠ careful",
		"✗ failed",
	}, buffer.Lines())
}

func TestPrinter_StyleProvider(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		options   []Option
		expected  string
	}{
		{name: "styled", available: true, expected: "[info]message[/info]\n"},
		{name: "unavailable provider falls back", available: false, expected: "ℹ message\n"},
		{name: "test mode ignores provider", available: true, options: []Option{TestMode()}, expected: "ℹ message\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffer := NewCaptureBuffer()
			printer := NewPrinter(append([]Option{WithWriter(buffer), WithStyles(bracketStyles{available: tt.available})}, tt.options...)...)
			printer.Info("message")

			assert.Equal(t, tt.expected, buffer.String())
		})
	}
}

func TestPrinter_Styled(t *testing.T) {
	styled := NewPrinter(WithStyles(bracketStyles{available: true}))
	assert.Equal(t, "[number]7[/number]", styled.Styled(SemanticNumber, "7"))
	assert.True(t, styled.IsStylable())

	plain := NewPrinter(WithStyles(bracketStyles{available: true}), TestMode())
	assert.Equal(t, "7", plain.Styled(SemanticNumber, "7"))
	assert.False(t, plain.IsStylable())
}

func TestPrinter_Markdown(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithMarkdown(fakeMarkdown{}))
	printer.Markdown("**hi**")
	assert.Equal(t, "<md>**hi**</md>\n", buffer.String())

	buffer.Reset()
	printer = NewPrinter(WithWriter(buffer), WithMarkdown(fakeMarkdown{err: errors.New("boom")}))
	printer.Markdown("**hi**")
	assert.Equal(t, "**hi**\n", buffer.String())

	buffer.Reset()
	printer = NewPrinter(WithWriter(buffer), WithMarkdown(fakeMarkdown{}), TestMode())
	printer.Markdown("**hi**")
	assert.Equal(t, "**hi**\n", buffer.String())
}
