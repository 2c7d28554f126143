// Package theme loads the embedded colour themes and exposes them as lipgloss styles.
package theme

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"doxhub/internal/data/embedded"
	"doxhub/internal/logger"
	"doxhub/internal/output"
)

// Names lists the built-in themes.
var Names = []string{"default", "dark", "light", "plain"}

// Theme defines the styles used to draw menus and messages.
type Theme struct {
	Name        string
	Title       lipgloss.Style
	Breadcrumb  lipgloss.Style
	Number      lipgloss.Style
	Label       lipgloss.Style
	Description lipgloss.Style
	Prompt      lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Warning     lipgloss.Style
	Info        lipgloss.Style
	Highlight   lipgloss.Style
}

// IsValid reports whether name is a built-in theme (case-insensitive).
func IsValid(name string) bool {
	return slices.Contains(Names, normalize(name))
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "default"
	}
	return name
}

// Load returns the built-in theme called name. Unknown names and broken theme data
// fall back to the plain theme.
func Load(name string) *Theme {
	name = normalize(name)

	data, ok := map[string][]byte{
		"default": embedded.DefaultThemeData,
		"dark":    embedded.DarkThemeData,
		"light":   embedded.LightThemeData,
		"plain":   embedded.PlainThemeData,
	}[name]
	if !ok {
		logger.Debug("Invalid theme requested, using plain theme", "theme", name, "available", Names)
		return Plain()
	}

	theme, err := Parse(data)
	if err != nil {
		logger.Error("Failed to load theme", "theme", name, "error", err)
		return Plain()
	}
	return theme
}

// Parse builds a theme from YAML data.
func Parse(data []byte) (*Theme, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	s := file.Styles
	return &Theme{
		Name:        file.Name,
		Title:       createStyle(s.Title),
		Breadcrumb:  createStyle(s.Breadcrumb),
		Number:      createStyle(s.Number),
		Label:       createStyle(s.Label),
		Description: createStyle(s.Description),
		Prompt:      createStyle(s.Prompt),
		Success:     createStyle(s.Success),
		Error:       createStyle(s.Error),
		Warning:     createStyle(s.Warning),
		Info:        createStyle(s.Info),
		Highlight:   createStyle(s.Highlight),
	}, nil
}

// Plain returns a theme without any styling.
func Plain() *Theme {
	plain := lipgloss.NewStyle()
	return &Theme{
		Name:        "plain",
		Title:       plain,
		Breadcrumb:  plain,
		Number:      plain,
		Label:       plain,
		Description: plain,
		Prompt:      plain,
		Success:     plain,
		Error:       plain,
		Warning:     plain,
		Info:        plain,
		Highlight:   plain,
	}
}

func createStyle(config StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if color := parseColor(config.Foreground); color != nil {
		style = style.Foreground(color)
	}
	if color := parseColor(config.Background); color != nil {
		style = style.Background(color)
	}

	if config.Bold != nil && *config.Bold {
		style = style.Bold(true)
	}
	if config.Italic != nil && *config.Italic {
		style = style.Italic(true)
	}
	if config.Underline != nil && *config.Underline {
		style = style.Underline(true)
	}
	if config.Strikethrough != nil && *config.Strikethrough {
		style = style.Strikethrough(true)
	}

	return style
}

// parseColor parses a color value that can be a string or a light/dark map.
func parseColor(value interface{}) lipgloss.TerminalColor {
	switch v := value.(type) {
	case string:
		return lipgloss.Color(v)
	case map[string]interface{}:
		light, hasLight := v["light"].(string)
		dark, hasDark := v["dark"].(string)
		if hasLight && hasDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}
		}
		return nil
	default:
		return nil
	}
}

// GetStyle implements output.StyleProvider.
func (t *Theme) GetStyle(semantic string) output.TextStyle {
	switch output.SemanticType(semantic) {
	case output.SemanticTitle:
		return t.Title
	case output.SemanticBreadcrumb:
		return t.Breadcrumb
	case output.SemanticNumber:
		return t.Number
	case output.SemanticLabel:
		return t.Label
	case output.SemanticDescription:
		return t.Description
	case output.SemanticPrompt:
		return t.Prompt
	case output.SemanticSuccess:
		return t.Success
	case output.SemanticError:
		return t.Error
	case output.SemanticWarning:
		return t.Warning
	case output.SemanticInfo:
		return t.Info
	case output.SemanticHighlight:
		return t.Highlight
	default:
		return lipgloss.NewStyle()
	}
}

// IsAvailable implements output.StyleProvider. Styling is off for the plain theme and
// on terminals without colour support.
func (t *Theme) IsAvailable() bool {
	return t != nil && t.Name != "plain" && ColorEnabled()
}

// GlamourStyle maps the theme to a glamour standard style name.
func (t *Theme) GlamourStyle() string {
	switch t.Name {
	case "dark":
		return "dark"
	case "light":
		return "light"
	case "plain":
		return "notty"
	default:
		return "auto"
	}
}

// ColorEnabled reports whether the terminal renders colour.
func ColorEnabled() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}

// Width returns the display width of s, ignoring ANSI escape sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// PadRight pads s with spaces to width display cells.
func PadRight(s string, width int) string {
	if w := Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
