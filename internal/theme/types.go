package theme

// File is the YAML document of one theme.
type File struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Styles      Styles `yaml:"styles"`
}

// Styles holds one StyleConfig per semantic element.
type Styles struct {
	Title       StyleConfig `yaml:"title"`
	Breadcrumb  StyleConfig `yaml:"breadcrumb"`
	Number      StyleConfig `yaml:"number"`
	Label       StyleConfig `yaml:"label"`
	Description StyleConfig `yaml:"description"`
	Prompt      StyleConfig `yaml:"prompt"`
	Success     StyleConfig `yaml:"success"`
	Error       StyleConfig `yaml:"error"`
	Warning     StyleConfig `yaml:"warning"`
	Info        StyleConfig `yaml:"info"`
	Highlight   StyleConfig `yaml:"highlight"`
}

// StyleConfig describes one lipgloss style.
// Colours are either a string ("#FF0000", "33") or a {light, dark} adaptive pair.
type StyleConfig struct {
	Foreground    interface{} `yaml:"foreground,omitempty"`
	Background    interface{} `yaml:"background,omitempty"`
	Bold          *bool       `yaml:"bold,omitempty"`
	Italic        *bool       `yaml:"italic,omitempty"`
	Underline     *bool       `yaml:"underline,omitempty"`
	Strikethrough *bool       `yaml:"strikethrough,omitempty"`
}
