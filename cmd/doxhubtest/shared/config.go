// Package shared provides common configuration and utilities for doxhubtest.
package shared

import "io"

// Config holds the global configuration for doxhubtest
type Config struct {
	TestDir string
	Verbose bool
	Out     io.Writer
}

// Default configuration values
const (
	DefaultTestDir = "test/golden"

	// ScriptExtension marks session input files, one answer per line
	ScriptExtension = ".doxhub"
	// ExpectedExtension marks golden transcripts
	ExpectedExtension = ".expected"
	// CatalogExtension marks an optional catalog used instead of the built-in one
	CatalogExtension = ".catalog.yaml"
)

// NewConfig creates a new configuration with default values
func NewConfig(out io.Writer) *Config {
	return &Config{
		TestDir: DefaultTestDir,
		Out:     out,
	}
}
