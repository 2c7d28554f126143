// Package golden provides golden file testing functionality.
package golden

import (
	"fmt"
	"os"
	"strings"

	"doxhub/cmd/doxhubtest/internal/normalize"
	"doxhub/cmd/doxhubtest/shared"
)

// Runner handles running golden file tests
type Runner struct {
	config     *shared.Config
	normalizer *normalize.Engine
}

// NewRunner creates a new golden file test runner
func NewRunner(config *shared.Config) *Runner {
	return &Runner{
		config:     config,
		normalizer: normalize.NewEngine(),
	}
}

// Actual runs the session of testName and returns its cleaned transcript.
func (r *Runner) Actual(testName string) (string, error) {
	output, err := shared.RunSession(testName, r.config.TestDir)
	if err != nil {
		return "", err
	}
	return shared.CleanOutput(output), nil
}

// Expected returns the golden transcript of testName.
func (r *Runner) Expected(testName string) (string, error) {
	_, expectedPath, _ := shared.TestPaths(testName, r.config.TestDir)
	content, err := os.ReadFile(expectedPath)
	if err != nil {
		return "", fmt.Errorf("failed to read expected file %s: %w", expectedPath, err)
	}
	return strings.TrimRight(string(content), "\n"), nil
}

// RunTest runs a specific test case and compares with expected output
func (r *Runner) RunTest(testName string) error {
	if r.config.Verbose {
		fmt.Fprintf(r.config.Out, "Running test: %s\n", testName)
	}

	actual, err := r.Actual(testName)
	if err != nil {
		return err
	}
	expected, err := r.Expected(testName)
	if err != nil {
		return err
	}

	if !r.normalizer.Compare(expected, actual) {
		return fmt.Errorf("test failed: output doesn't match expected")
	}

	if r.config.Verbose {
		fmt.Fprintf(r.config.Out, "Test passed: %s\n", testName)
	}
	return nil
}

// RunAllTests runs all tests in the test directory
func (r *Runner) RunAllTests() error {
	tests, err := shared.FindAllFiles(r.config.TestDir, shared.ScriptExtension)
	if err != nil {
		return fmt.Errorf("failed to find tests: %w", err)
	}

	var failedTests []string
	for _, test := range tests {
		if err := r.RunTest(test); err != nil {
			failedTests = append(failedTests, test)
			fmt.Fprintf(r.config.Out, "FAIL %s: %v\n", test, err)
		} else {
			fmt.Fprintf(r.config.Out, "PASS %s\n", test)
		}
	}

	fmt.Fprintf(r.config.Out, "\nResults: %d passed, %d failed\n", len(tests)-len(failedTests), len(failedTests))

	if len(failedTests) > 0 {
		return fmt.Errorf("tests failed: %v", failedTests)
	}
	return nil
}
