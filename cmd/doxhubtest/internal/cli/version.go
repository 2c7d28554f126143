package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"doxhub/internal/version"
)

// addVersionCommand adds the version command
func (app *App) addVersionCommand(rootCmd *cobra.Command) {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			detailed, _ := cmd.Flags().GetBool("detailed")
			if detailed {
				fmt.Fprintf(app.Config.Out, "doxhubtest\n%s\n", version.GetDetailedVersion())
			} else {
				fmt.Fprintf(app.Config.Out, "doxhubtest %s\n", version.GetVersion())
			}
		},
	}

	versionCmd.Flags().Bool("detailed", false, "Show detailed version information")
	rootCmd.AddCommand(versionCmd)
}
