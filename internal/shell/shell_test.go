package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doxhub/internal/config"
	"doxhub/internal/output"
	"doxhub/internal/registry"
	"doxhub/internal/testutils"
	"doxhub/internal/version"
	"doxhub/pkg/doxtypes"
)

type fakeReader struct {
	prompts []string
	lines   []string
	err     error
}

func (f *fakeReader) SetPrompt(prompt string) {
	f.prompts = append(f.prompts, prompt)
}

func (f *fakeReader) ReadLineErr() (string, error) {
	if len(f.lines) == 0 {
		if f.err != nil {
			return "", f.err
		}
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func TestPrompter(t *testing.T) {
	reader := &fakeReader{lines: []string{"alice\r\n"}, err: errors.New("Interrupt")}
	p := newPrompterWithReader(reader)

	line, err := p.Prompt("Username")
	require.NoError(t, err)
	assert.Equal(t, "alice", line)

	_, err = p.Prompt("Choice")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"Username: ", "Choice: "}, reader.prompts)

	p.Close()
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load(config.New())
	require.NoError(t, err)
	cfg.TestMode = true
	return cfg
}

func TestApp_Run_SearchScenario(t *testing.T) {
	out := output.NewCaptureBuffer()
	prompter := testutils.NewScriptedPrompter("1", "Google", "open source", "q")
	op := &testutils.RecordingOpener{}

	app := NewApp(testConfig(t), WithPrompter(prompter), WithOpener(op), WithOutput(out),
		WithPlatform("linux", "go1.24.4"))
	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, []string{"https://www.google.com/search?q=open+source"}, op.Opened)
	assert.Equal(t, []string{"Choice", "Choice", "Search terms", "Choice"}, prompter.Labels)
	assert.Contains(t, out.String(), "Main Menu\nPick a research area\n")
	assert.Contains(t, out.String(), "Main Menu > Search Engines")
}

func TestApp_Run_Incompatible(t *testing.T) {
	app := NewApp(testConfig(t), WithPrompter(testutils.NewScriptedPrompter()), WithPlatform("plan9", "go1.24.4"))
	err := app.Run(context.Background())

	var osErr *doxtypes.UnsupportedOSError
	require.ErrorAs(t, err, &osErr)
	assert.Equal(t, "plan9", osErr.OS)

	app = NewApp(testConfig(t), WithPrompter(testutils.NewScriptedPrompter()), WithPlatform("linux", "go1.20.1"))
	var rtErr *doxtypes.UnsupportedRuntimeError
	require.ErrorAs(t, app.Run(context.Background()), &rtErr)
}

func TestApp_Run_BadCatalog(t *testing.T) {
	cfg := testConfig(t)
	cfg.Catalog = filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(cfg.Catalog, []byte("root: nowhere\ncategories: []\n"), 0o600))

	app := NewApp(cfg, WithPrompter(testutils.NewScriptedPrompter()), WithPlatform("linux", "go1.24.4"))
	var loadErr *doxtypes.CatalogLoadError
	require.ErrorAs(t, app.Run(context.Background()), &loadErr)
	assert.NotEmpty(t, loadErr.Problems)
}

func TestApp_Run_PrintModeAndNotice(t *testing.T) {
	cfg := testConfig(t)
	cfg.TestMode = false
	cfg.Theme = "plain"
	cfg.OpenMode = config.OpenModePrint
	cfg.UpdateTimeout = time.Second

	out := output.NewCaptureBuffer()
	prompter := testutils.NewScriptedPrompter("2", "GitHub", "octocat", "q")
	app := NewApp(cfg, WithPrompter(prompter), WithOutput(out), WithPlatform("linux", "go1.24.4"),
		WithLatestSource(version.StaticSource("99.0.0")))
	require.NoError(t, app.Run(context.Background()))

	lines := out.Lines()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "DoxHub 99.0.0 is available")
	assert.Contains(t, out.String(), "https://github.com/octocat\n")
}

func TestApp_ClipboardFallback(t *testing.T) {
	cfg := testConfig(t)
	clip := &testutils.RecordingClipboard{}
	op := &testutils.RecordingOpener{Err: &doxtypes.OpenError{Locator: "x", Reason: doxtypes.OpenNoHandler}}
	out := output.NewCaptureBuffer()

	app := NewApp(cfg, WithPrompter(testutils.NewScriptedPrompter("1", "1", "osint", "q")),
		WithOpener(op), WithClipboard(clip), WithOutput(out), WithPlatform("linux", "go1.24.4"))
	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, []string{"https://www.google.com/search?q=osint"}, clip.Copied)
	assert.Contains(t, out.String(), "Copied https://www.google.com/search?q=osint to the clipboard")

	cfg.ClipboardFallback = false
	clip.Copied = nil
	app = NewApp(cfg, WithPrompter(testutils.NewScriptedPrompter("1", "1", "osint", "q")),
		WithOpener(op), WithClipboard(clip), WithOutput(output.NewCaptureBuffer()), WithPlatform("linux", "go1.24.4"))
	require.NoError(t, app.Run(context.Background()))
	assert.Empty(t, clip.Copied)
}

func TestCatalogTree(t *testing.T) {
	reg, err := LoadRegistry(testConfig(t))
	require.NoError(t, err)

	rendered := CatalogTree(reg, output.NewPrinter(output.TestMode()))

	assert.Contains(t, rendered, "Main Menu")
	assert.Contains(t, rendered, "1) Search Engines -> Search Engines")
	assert.Contains(t, rendered, "1) Google https://www.google.com/search?q={query}")
	assert.Contains(t, rendered, "99) Quit (exit)")
	// Domains links to Email and Breaches, so the same category appears on several branches
	assert.Contains(t, rendered, "╰──")
}

func TestCatalogTree_ListsUnreachableCategories(t *testing.T) {
	b := registry.NewBuilder()
	require.NoError(t, b.RegisterAll(
		doxtypes.Category{ID: "main", Label: "Main Menu", Commands: []doxtypes.Command{
			{Label: "Sites", Action: doxtypes.EnterCategory("sites")},
		}},
		doxtypes.Category{ID: "sites", Label: "Sites", Commands: []doxtypes.Command{
			{Label: "Example", Action: doxtypes.OpenResource("https://example.com/{}")},
		}},
		doxtypes.Category{ID: "extra", Label: "Extra", Commands: []doxtypes.Command{
			{Label: "Home", Action: doxtypes.EnterCategory("main")},
		}},
	))
	reg, err := b.Build("main")
	require.NoError(t, err)

	rendered := CatalogTree(reg, output.NewPrinter(output.TestMode()))

	assert.True(t, strings.HasPrefix(rendered, "Main Menu\n"))
	assert.Contains(t, rendered, "1) Sites -> Sites")
	assert.Contains(t, rendered, "\n\nExtra (unreachable)\n")
	assert.Contains(t, rendered, "1) Home -> main")
	assert.Equal(t, 1, strings.Count(rendered, "1) Example https://example.com/{}"))
}

func TestLinePrompter(t *testing.T) {
	echo := output.NewCaptureBuffer()
	p := NewLinePrompter(strings.NewReader("1\r\nalice\n"), echo)

	line, err := p.Prompt("Choice")
	require.NoError(t, err)
	assert.Equal(t, "1", line)

	line, err = p.Prompt("Username")
	require.NoError(t, err)
	assert.Equal(t, "alice", line)

	_, err = p.Prompt("Choice")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "Choice: 1\nUsername: alice\n", echo.String())
}

func TestApp_Run_ScriptedInput(t *testing.T) {
	out := output.NewCaptureBuffer()
	op := &testutils.RecordingOpener{}

	app := NewApp(testConfig(t), WithInput(strings.NewReader("username\ngithub\noctocat\n")),
		WithOpener(op), WithOutput(out), WithPlatform("linux", "go1.24.4"))
	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, []string{"https://github.com/octocat"}, op.Opened)
	assert.Contains(t, out.String(), "Choice: username\n")
	assert.Contains(t, out.String(), "Username: octocat\n")
}
