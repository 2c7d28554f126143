package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doxhub/internal/output"
)

func TestLoad_BuiltinThemes(t *testing.T) {
	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			theme := Load(name)
			require.NotNil(t, theme)
			assert.Equal(t, name, theme.Name)
		})
	}

	assert.Equal(t, "default", Load("").Name)
	assert.Equal(t, "dark", Load(" DARK ").Name)
	assert.Equal(t, "plain", Load("neon").Name)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("light"))
	assert.True(t, IsValid(""))
	assert.False(t, IsValid("neon"))
}

func TestParse_Styles(t *testing.T) {
	theme, err := Parse([]byte(`
name: test
styles:
  number:
    foreground: "#FF0000"
    bold: true
  title:
    foreground:
      light: "#000000"
      dark: "#FFFFFF"
    underline: true
  label:
    foreground:
      light: "#000000"
`))
	require.NoError(t, err)

	assert.Equal(t, lipgloss.Color("#FF0000"), theme.Number.GetForeground())
	assert.True(t, theme.Number.GetBold())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}, theme.Title.GetForeground())
	assert.True(t, theme.Title.GetUnderline())
	assert.Equal(t, lipgloss.NoColor{}, theme.Label.GetForeground())

	_, err = Parse([]byte("styles: [oops"))
	assert.Error(t, err)
}

func TestGetStyle(t *testing.T) {
	theme := Load("dark")
	assert.Equal(t, theme.Number, theme.GetStyle(string(output.SemanticNumber)))
	assert.Equal(t, theme.Error, theme.GetStyle(string(output.SemanticError)))
	assert.Equal(t, lipgloss.NewStyle(), theme.GetStyle("nonsense"))
}

func TestPlainIsNeverAvailable(t *testing.T) {
	assert.False(t, Plain().IsAvailable())
	assert.Equal(t, "notty", Plain().GlamourStyle())
	assert.Equal(t, "auto", Load("default").GlamourStyle())
}

func TestWidthHelpers(t *testing.T) {
	styled := "\x1b[1;31mhello\x1b[0m"
	assert.Equal(t, 5, Width(styled))
	assert.Equal(t, styled+"   ", PadRight(styled, 8))
	assert.Equal(t, "toolong", PadRight("toolong", 3))
}
