// Package testutils provides scripted collaborators and assertion helpers for DoxHub tests.
package testutils

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ScriptedPrompter answers prompts from a fixed list and returns io.EOF when it runs out.
type ScriptedPrompter struct {
	answers []string
	// Labels records every label that was prompted for, in order.
	Labels []string
}

// NewScriptedPrompter creates a prompter that replays answers.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

// Prompt returns the next scripted answer.
func (p *ScriptedPrompter) Prompt(label string) (string, error) {
	p.Labels = append(p.Labels, label)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

// Remaining returns how many answers are left.
func (p *ScriptedPrompter) Remaining() int {
	return len(p.answers)
}

// RecordingOpener records opened locators and fails with Err when it is set.
type RecordingOpener struct {
	Opened []string
	Err    error
}

// Open records locator.
func (o *RecordingOpener) Open(locator string) error {
	if o.Err != nil {
		return o.Err
	}
	o.Opened = append(o.Opened, locator)
	return nil
}

// RecordingClipboard records copied text and fails with Err when it is set.
type RecordingClipboard struct {
	Copied []string
	Err    error
}

// Copy records text.
func (c *RecordingClipboard) Copy(text string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Copied = append(c.Copied, text)
	return nil
}

// CreateTempFile creates a temporary file with given content and returns its path.
func CreateTempFile(t *testing.T, filename, content string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), filename)
	err := os.WriteFile(filePath, []byte(content), 0644)
	require.NoError(t, err, "Should create temp file successfully")
	return filePath
}
