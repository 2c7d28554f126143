package golden

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"doxhub/cmd/doxhubtest/shared"
)

// Differ handles diff operations for golden file tests
type Differ struct {
	config *shared.Config
	runner *Runner
}

// NewDiffer creates a new golden file differ
func NewDiffer(config *shared.Config) *Differ {
	return &Differ{
		config: config,
		runner: NewRunner(config),
	}
}

// ShowDiff displays the differences between expected and actual output
func (d *Differ) ShowDiff(testName string) error {
	actual, err := d.runner.Actual(testName)
	if err != nil {
		return err
	}
	expected, err := d.runner.Expected(testName)
	if err != nil {
		return err
	}

	d.ShowDetailedDiff(expected, actual, testName)
	return nil
}

// ShowDetailedDiff displays a detailed comparison between expected and actual output
func (d *Differ) ShowDetailedDiff(expected, actual, testName string) {
	out := d.config.Out
	fmt.Fprintf(out, "=== Test: %s ===\n", testName)

	if d.runner.normalizer.Compare(expected, actual) {
		fmt.Fprintln(out, "No differences found - test passes!")
		return
	}

	fmt.Fprintln(out, "\n--- Expected ---")
	d.printNumberedLines(expected)

	fmt.Fprintln(out, "\n--- Actual ---")
	d.printNumberedLines(actual)

	fmt.Fprintln(out, "\n--- Diff ---")
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(out, "- %q\n", diff.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(out, "+ %q\n", diff.Text)
		case diffmatchpatch.DiffEqual:
			if len(diff.Text) > 50 {
				fmt.Fprintf(out, "  %q...\n", diff.Text[:47])
			} else {
				fmt.Fprintf(out, "  %q\n", diff.Text)
			}
		}
	}
}

func (d *Differ) printNumberedLines(content string) {
	for i, line := range strings.Split(content, "\n") {
		fmt.Fprintf(d.config.Out, "%4d| %s\n", i+1, line)
	}
}
