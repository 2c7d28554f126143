package shared

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TestPaths returns the script, expected and catalog paths of a test case.
func TestPaths(testName, testDir string) (script, expected, catalog string) {
	base := filepath.Join(testDir, testName)
	return base + ScriptExtension, base + ExpectedExtension, base + CatalogExtension
}

// CleanOutput normalizes line endings and trailing newlines for consistent comparison.
// Trailing spaces within lines are kept.
func CleanOutput(output string) string {
	cleaned := strings.ReplaceAll(output, "\r\n", "\n")
	return strings.TrimRight(cleaned, "\n")
}

// FindAllFiles finds all files with the specified extension in a directory and
// returns their names without the extension, sorted.
func FindAllFiles(dir, extension string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+extension))
	if err != nil {
		return nil, err
	}

	var basenames []string
	for _, match := range matches {
		basenames = append(basenames, strings.TrimSuffix(filepath.Base(match), extension))
	}
	sort.Strings(basenames)
	return basenames, nil
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
