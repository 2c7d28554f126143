// Package normalize provides output normalization functionality for transcript comparisons.
package normalize

import (
	"os"
	"os/user"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Pattern replaces machine-specific text with a <name> placeholder.
type Pattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// Engine handles normalization of session transcripts.
type Engine struct {
	patterns []Pattern
}

// NewEngine creates a new normalization engine with built-in patterns
func NewEngine() *Engine {
	engine := &Engine{}
	engine.initBuiltinPatterns()
	return engine
}

func (e *Engine) initBuiltinPatterns() {
	// Session IDs are deterministic in test mode; UUIDs only show up from other sources
	e.add("uuid", `\b[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\b`)

	// Runtime versions reported by compatibility errors and version output
	e.add("go_version", `\bgo\d+\.\d+(\.\d+)?(rc\d+|beta\d+)?\b`)

	// Temporary directories differ between runs and platforms
	if tmp := strings.TrimRight(os.TempDir(), string(os.PathSeparator)); len(tmp) > 1 {
		e.add("temp_path", regexp.QuoteMeta(tmp)+`[^\s:"']*`)
	}

	e.addUsernameMasking()
}

func (e *Engine) add(name, expr string) {
	e.patterns = append(e.patterns, Pattern{Name: name, Pattern: regexp.MustCompile(expr)})
}

// addUsernameMasking masks the current user's name, which shows up in file paths
func (e *Engine) addUsernameMasking() {
	username := ""
	if currentUser, err := user.Current(); err == nil {
		username = currentUser.Username
	} else {
		username = os.Getenv("USER")
	}

	if len(username) < 2 || len(username) > 50 || isCommonUsername(username) {
		return
	}
	e.add("username", `\b`+regexp.QuoteMeta(username)+`\b`)
}

// isCommonUsername checks if the username is a generic one that shouldn't be masked
func isCommonUsername(username string) bool {
	switch strings.ToLower(username) {
	case "runner", "ci", "github", "gitlab", "jenkins", "build",
		"root", "admin", "user", "test", "nobody", "ubuntu", "node", "app":
		return true
	default:
		return false
	}
}

// NormalizeOutput strips ANSI escapes and replaces dynamic content with placeholders
func (e *Engine) NormalizeOutput(output string) string {
	normalized := ansi.Strip(output)
	for _, pattern := range e.patterns {
		normalized = pattern.Pattern.ReplaceAllString(normalized, "<"+pattern.Name+">")
	}
	return normalized
}

// Compare compares two transcripts line by line after normalization
func (e *Engine) Compare(expected, actual string) bool {
	expectedLines := strings.Split(e.NormalizeOutput(expected), "\n")
	actualLines := strings.Split(e.NormalizeOutput(actual), "\n")

	if len(expectedLines) != len(actualLines) {
		return false
	}
	for i := range expectedLines {
		if expectedLines[i] != actualLines[i] {
			return false
		}
	}
	return true
}
