// Package catalog loads the category catalog from YAML and builds the command registry.
// The default catalog is embedded in the binary; a custom one can be given by path.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"doxhub/internal/data/embedded"
	"doxhub/internal/locator"
	"doxhub/internal/logger"
	"doxhub/internal/registry"
	"doxhub/pkg/doxtypes"
)

// EmbeddedSource names the built-in catalog in errors and logs.
const EmbeddedSource = "<embedded>"

// File is the on-disk catalog document.
type File struct {
	Root       string          `yaml:"root"`
	Categories []CategoryEntry `yaml:"categories"`
}

// CategoryEntry is one category of the catalog document.
type CategoryEntry struct {
	ID          string         `yaml:"id"`
	Label       string         `yaml:"label"`
	Description string         `yaml:"description,omitempty"`
	Commands    []CommandEntry `yaml:"commands"`
}

// CommandEntry is one command of a category. Exactly one of Open, Info, Enter, Back and
// Exit must be set.
type CommandEntry struct {
	Label       string `yaml:"label"`
	Index       int    `yaml:"index,omitempty"`
	Description string `yaml:"description,omitempty"`

	Open   string `yaml:"open,omitempty"`
	Prompt string `yaml:"prompt,omitempty"`

	Info     string `yaml:"info,omitempty"`
	Markdown bool   `yaml:"markdown,omitempty"`

	Enter string `yaml:"enter,omitempty"`
	Back  bool   `yaml:"back,omitempty"`
	Exit  bool   `yaml:"exit,omitempty"`
}

// Load loads the catalog at path, or the embedded catalog when path is empty.
func Load(path string) (*registry.Registry, error) {
	if path == "" {
		return LoadDefault()
	}
	return LoadFile(path)
}

// LoadDefault builds the registry from the embedded catalog.
func LoadDefault() (*registry.Registry, error) {
	return Parse(embedded.CatalogData, EmbeddedSource)
}

// LoadFile reads and builds the catalog stored at path.
func LoadFile(path string) (*registry.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &doxtypes.CatalogLoadError{Source: path, Err: err}
	}
	return Parse(data, path)
}

// Parse decodes, validates and builds a catalog. Every failure is reported as a
// *doxtypes.CatalogLoadError listing all problems found.
func Parse(data []byte, source string) (*registry.Registry, error) {
	log := logger.NewStyledLogger("Catalog")

	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, &doxtypes.CatalogLoadError{Source: source, Err: fmt.Errorf("failed to parse YAML: %w", err)}
	}

	categories, problems := file.convert()

	builder := registry.NewBuilder()
	for _, category := range categories {
		if err := builder.Register(category); err != nil {
			problems = append(problems, err.Error())
		}
	}

	reg, err := builder.Build(file.Root)
	if err != nil {
		var loadErr *doxtypes.CatalogLoadError
		if !errors.As(err, &loadErr) {
			return nil, &doxtypes.CatalogLoadError{Source: source, Err: err}
		}
		for _, p := range loadErr.Problems {
			// an unset root is already reported
			if file.Root == "" && strings.HasPrefix(p, "root category") {
				continue
			}
			problems = append(problems, p)
		}
	}

	if len(problems) > 0 {
		log.Debug("Catalog rejected", "source", source, "problems", len(problems))
		return nil, &doxtypes.CatalogLoadError{Source: source, Problems: problems}
	}

	log.Debug("Catalog loaded", "source", source, "categories", reg.Len(), "root", reg.Root())
	return reg, nil
}

// convert turns the document into categories, collecting per-command problems.
// Categories are returned even when they have problems so registration can report
// duplicates as well.
func (f *File) convert() ([]doxtypes.Category, []string) {
	var problems []string

	if strings.TrimSpace(f.Root) == "" {
		problems = append(problems, "root category is not set")
	}
	if len(f.Categories) == 0 {
		problems = append(problems, "catalog defines no categories")
	}

	categories := make([]doxtypes.Category, 0, len(f.Categories))
	for i, entry := range f.Categories {
		name := entry.ID
		if name == "" {
			name = "#" + strconv.Itoa(i+1)
			problems = append(problems, fmt.Sprintf("category %s: missing id", name))
			continue
		}

		category := doxtypes.Category{
			ID:          entry.ID,
			Label:       entry.Label,
			Description: entry.Description,
		}
		if len(entry.Commands) == 0 {
			problems = append(problems, fmt.Sprintf("category %q: has no commands", name))
		}

		labels := map[string]bool{}
		numbers := map[int]string{}
		for pos, cmdEntry := range entry.Commands {
			cmd, cmdProblems := cmdEntry.convert()
			for _, p := range cmdProblems {
				problems = append(problems, fmt.Sprintf("category %q: command %s: %s", name, describe(cmdEntry, pos), p))
			}

			key := strings.ToLower(strings.TrimSpace(cmd.Label))
			if key != "" {
				if labels[key] {
					problems = append(problems, fmt.Sprintf("category %q: duplicate label %q", name, cmd.Label))
				}
				labels[key] = true
			}

			number := cmd.Number(pos)
			if other, taken := numbers[number]; taken {
				problems = append(problems, fmt.Sprintf("category %q: commands %q and %q share number %d",
					name, other, cmd.Label, number))
			} else {
				numbers[number] = cmd.Label
			}

			category.Commands = append(category.Commands, cmd)
		}

		categories = append(categories, category)
	}

	return categories, problems
}

// convert builds the command and its action, returning any problems.
func (c CommandEntry) convert() (doxtypes.Command, []string) {
	var problems []string

	cmd := doxtypes.Command{
		Label:       strings.TrimSpace(c.Label),
		Index:       c.Index,
		Description: c.Description,
	}
	if cmd.Label == "" {
		problems = append(problems, "missing label")
	}
	if c.Index < 0 {
		problems = append(problems, fmt.Sprintf("index %d must be positive", c.Index))
	}

	var kinds []string
	if c.Open != "" {
		kinds = append(kinds, "open")
		tmpl, err := locator.Parse(c.Open)
		if err == nil {
			err = tmpl.Validate()
		}
		if err != nil {
			problems = append(problems, err.Error())
		}
		cmd.Action = doxtypes.OpenResource(c.Open).WithPrompt(c.Prompt)
	}
	if c.Info != "" {
		kinds = append(kinds, "info")
		cmd.Action = doxtypes.ShowInfo(c.Info)
		if c.Markdown {
			cmd.Action = cmd.Action.AsMarkdown()
		}
	}
	if c.Enter != "" {
		kinds = append(kinds, "enter")
		cmd.Action = doxtypes.EnterCategory(c.Enter)
	}
	if c.Back {
		kinds = append(kinds, "back")
		cmd.Action = doxtypes.GoBack()
	}
	if c.Exit {
		kinds = append(kinds, "exit")
		cmd.Action = doxtypes.Exit()
	}

	switch len(kinds) {
	case 0:
		problems = append(problems, "no action (expected one of open, info, enter, back, exit)")
	case 1:
	default:
		problems = append(problems, "multiple actions: "+strings.Join(kinds, ", "))
	}

	if c.Prompt != "" && c.Open == "" {
		problems = append(problems, "prompt is only valid with open")
	}
	if c.Markdown && c.Info == "" {
		problems = append(problems, "markdown is only valid with info")
	}

	return cmd, problems
}

func describe(c CommandEntry, pos int) string {
	if label := strings.TrimSpace(c.Label); label != "" {
		return strconv.Quote(label)
	}
	return "#" + strconv.Itoa(pos+1)
}
