// Package main provides the doxhubtest CLI application for end-to-end testing of DoxHub.
// doxhubtest replays scripted sessions and compares their transcripts with golden files.
package main

import (
	"os"

	"doxhub/cmd/doxhubtest/internal/cli"
)

func main() {
	app := cli.NewApp()
	rootCmd := app.CreateRootCommand()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
