package shared

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"doxhub/internal/config"
	"doxhub/internal/shell"
)

// RunSession replays the script of testName through an in-process DoxHub session and
// returns the transcript. The session runs in test mode and prints addresses instead
// of opening them. Startup errors become part of the transcript.
func RunSession(testName, testDir string) (string, error) {
	scriptPath, _, catalogPath := TestPaths(testName, testDir)

	script, err := os.Open(scriptPath)
	if err != nil {
		return "", fmt.Errorf("test script not found: %w", err)
	}
	defer func() {
		_ = script.Close()
	}()

	cfg, err := config.Load(config.New())
	if err != nil {
		return "", err
	}
	cfg.TestMode = true
	cfg.CheckUpdates = false
	cfg.OpenMode = config.OpenModePrint
	cfg.ClipboardFallback = false
	if FileExists(catalogPath) {
		cfg.Catalog = catalogPath
	}

	var out bytes.Buffer
	app := shell.NewApp(cfg, shell.WithInput(script), shell.WithOutput(&out))
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(&out, "Error: %v\n", err)
	}
	return out.String(), nil
}
