package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{" error ", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestConfigure_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("DOXHUB_LOG_LEVEL", "error")

	require.NoError(t, Configure("debug", "", false))
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())

	require.NoError(t, Configure("", "", false))
	assert.Equal(t, log.ErrorLevel, Logger.GetLevel())
}

func TestConfigure_TestModeForcesInfo(t *testing.T) {
	require.NoError(t, Configure("debug", "", true))
	assert.Equal(t, log.InfoLevel, Logger.GetLevel())
}

func TestConfigure_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doxhub.log")

	require.NoError(t, Configure("info", path, false))
	Info("hello from test", "key", "value")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "key=value")

	SetOutput(os.Stderr)
}

func TestConfigure_BadLogFile(t *testing.T) {
	err := Configure("info", filepath.Join(t.TempDir(), "missing", "dir", "x.log"), false)
	assert.Error(t, err)
}

func TestNewStyledLogger_UsesConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Logger.SetLevel(log.DebugLevel)
	component := NewStyledLogger("Resolver")
	component.Debug("resolved", "input", "goo")

	assert.Contains(t, buf.String(), "Resolver")
	assert.Contains(t, buf.String(), "resolved")
	assert.Equal(t, log.DebugLevel, component.GetLevel())
}
