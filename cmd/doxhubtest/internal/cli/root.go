// Package cli provides command-line interface setup for doxhubtest.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"doxhub/cmd/doxhubtest/shared"
)

// App represents the doxhubtest CLI application
type App struct {
	Config *shared.Config
}

// NewApp creates a new doxhubtest CLI application writing to stdout
func NewApp() *App {
	return &App{
		Config: shared.NewConfig(os.Stdout),
	}
}

// CreateRootCommand creates and configures the root command
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "doxhubtest",
		Short: "End-to-end testing tool for DoxHub",
		Long: `doxhubtest replays scripted DoxHub sessions and compares their transcripts
with golden files. It can record, run, and verify test cases.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			app.Config.Out = cmd.OutOrStdout()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.Config.Verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&app.Config.TestDir, "test-dir", shared.DefaultTestDir, "Test directory")

	app.addGoldenFileCommands(rootCmd)
	app.addVersionCommand(rootCmd)

	return rootCmd
}
