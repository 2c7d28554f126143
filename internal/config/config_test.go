package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, OpenModeBrowser, cfg.OpenMode)
	assert.True(t, cfg.ClipboardFallback)
	assert.True(t, cfg.CheckUpdates)
	assert.Equal(t, 2*time.Second, cfg.UpdateTimeout)
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, []string{"linux", "darwin", "windows", "freebsd"}, cfg.Compat.SupportedOS)
	assert.Equal(t, "1.22.0", cfg.Compat.MinRuntime)
	assert.False(t, cfg.TestMode)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DOXHUB_OPEN_MODE", "PRINT")
	t.Setenv("DOXHUB_UPDATE_TIMEOUT", "500ms")
	t.Setenv("DOXHUB_COMPAT_SUPPORTED_OS", "linux,darwin")
	t.Setenv("DOXHUB_CLIPBOARD_FALLBACK", "false")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, OpenModePrint, cfg.OpenMode)
	assert.Equal(t, 500*time.Millisecond, cfg.UpdateTimeout)
	assert.Equal(t, []string{"linux", "darwin"}, cfg.Compat.SupportedOS)
	assert.False(t, cfg.ClipboardFallback)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key     string
		value   interface{}
		wantErr string
	}{
		{KeyOpenMode, "telnet", `invalid open_mode "telnet"`},
		{KeyTheme, "neon", `invalid theme "neon"`},
		{KeyUpdateTimeout, 0, "invalid update_timeout"},
		{KeyMinRuntime, "one.two", `invalid compat.min_runtime "one.two"`},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := New()
			v.Set(tt.key, tt.value)
			_, err := Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
open_mode: print
theme: dark
compat:
  min_runtime: "1.23.0"
`), 0o600))

	v := New()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, OpenModePrint, cfg.OpenMode)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "1.23.0", cfg.Compat.MinRuntime)
}

func TestReadFile_MissingExplicitPath(t *testing.T) {
	err := ReadFile(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestReadFile_DefaultLocationIsOptional(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	assert.NoError(t, ReadFile(New(), ""))
}

func TestUserConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := UserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "doxhub"), dir)
}

func TestLoadDotEnv_ExistingEnvironmentWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(first, ".env"), []byte("DOXHUB_TEST_A=from-first\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(second, ".env"),
		[]byte("DOXHUB_TEST_A=from-second\nDOXHUB_TEST_B=from-second\nDOXHUB_TEST_C=from-file\n"), 0o600))

	t.Setenv("DOXHUB_TEST_C", "from-env")
	// Registers cleanup for variables the loader sets
	t.Setenv("DOXHUB_TEST_A", "")
	t.Setenv("DOXHUB_TEST_B", "")
	require.NoError(t, os.Unsetenv("DOXHUB_TEST_A"))
	require.NoError(t, os.Unsetenv("DOXHUB_TEST_B"))

	require.NoError(t, LoadDotEnv(first, "", second, filepath.Join(second, "missing")))

	assert.Equal(t, "from-first", os.Getenv("DOXHUB_TEST_A"))
	assert.Equal(t, "from-second", os.Getenv("DOXHUB_TEST_B"))
	assert.Equal(t, "from-env", os.Getenv("DOXHUB_TEST_C"))
}

func TestLoadDotEnv_ParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DOXHUB_TEST_D=\"unterminated\n"), 0o600))
	err := LoadDotEnv(dir)
	assert.Error(t, err)
}
