package golden

import (
	"fmt"
	"os"

	"doxhub/cmd/doxhubtest/shared"
)

// Recorder handles recording golden file test cases
type Recorder struct {
	config *shared.Config
	runner *Runner
}

// NewRecorder creates a new golden file test recorder
func NewRecorder(config *shared.Config) *Recorder {
	return &Recorder{
		config: config,
		runner: NewRunner(config),
	}
}

// RecordTest runs the session of testName and saves the transcript as its golden file
func (r *Recorder) RecordTest(testName string) error {
	if r.config.Verbose {
		fmt.Fprintf(r.config.Out, "Recording test: %s\n", testName)
	}

	actual, err := r.runner.Actual(testName)
	if err != nil {
		return err
	}

	_, expectedPath, _ := shared.TestPaths(testName, r.config.TestDir)
	if err := os.WriteFile(expectedPath, []byte(actual+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write expected file: %w", err)
	}

	if r.config.Verbose {
		fmt.Fprintf(r.config.Out, "Recorded expected output for test: %s\n", testName)
	}
	return nil
}

// AcceptTest updates the golden file for a test case with current output
func (r *Recorder) AcceptTest(testName string) error {
	return r.RecordTest(testName)
}
