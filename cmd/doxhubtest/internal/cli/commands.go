package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"doxhub/cmd/doxhubtest/internal/golden"
	"doxhub/cmd/doxhubtest/shared"
)

// addGoldenFileCommands adds golden file testing commands
func (app *App) addGoldenFileCommands(rootCmd *cobra.Command) {
	recordCmd := &cobra.Command{
		Use:   "record <testname>",
		Short: "Record a new test case",
		Long: `Record a new test case by replaying a .doxhub script and capturing the session
transcript. The transcript is saved as a golden file for future comparisons.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return golden.NewRecorder(app.Config).RecordTest(args[0])
		},
	}

	runCmd := &cobra.Command{
		Use:   "run <testname>",
		Short: "Run a specific test case",
		Long: `Run a specific test case and compare its transcript with the expected golden file.
Returns exit code 0 if the test passes, non-zero if it fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return golden.NewRunner(app.Config).RunTest(args[0])
		},
	}

	runAllCmd := &cobra.Command{
		Use:   "run-all",
		Short: "Run all test cases",
		Long: `Run all test cases in the test directory and report the results.
Returns exit code 0 if all tests pass, non-zero if any fail.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return golden.NewRunner(app.Config).RunAllTests()
		},
	}

	acceptCmd := &cobra.Command{
		Use:   "accept <testname>",
		Short: "Accept current output as golden",
		Long: `Update the golden file for a test case with the current transcript.
Use this after verifying that the new behavior is correct.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return golden.NewRecorder(app.Config).AcceptTest(args[0])
		},
	}

	diffCmd := &cobra.Command{
		Use:   "diff <testname>",
		Short: "Show differences between expected and actual output",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return golden.NewDiffer(app.Config).ShowDiff(args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List test cases",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tests, err := shared.FindAllFiles(app.Config.TestDir, shared.ScriptExtension)
			if err != nil {
				return err
			}
			for _, test := range tests {
				_, expected, _ := shared.TestPaths(test, app.Config.TestDir)
				status := "recorded"
				if !shared.FileExists(expected) {
					status = "not recorded"
				}
				fmt.Fprintf(app.Config.Out, "%s (%s)\n", test, status)
			}
			return nil
		},
	}

	rootCmd.AddCommand(recordCmd, runCmd, runAllCmd, acceptCmd, diffCmd, listCmd)
}
