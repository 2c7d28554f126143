// Package changelog provides the DoxHub release history.
// It parses the embedded change log data and offers filtering by type, version and text.
package changelog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"doxhub/internal/data/embedded"
)

// EntryType classifies a change log entry.
type EntryType string

const (
	// TypeFeature represents new functionality
	TypeFeature EntryType = "feature"

	// TypeFix represents bug fixes
	TypeFix EntryType = "fix"

	// TypeChange represents behaviour changes users should know about
	TypeChange EntryType = "change"

	// TypeDocs represents documentation changes
	TypeDocs EntryType = "docs"
)

// IsValid checks if a change log type is known.
func (t EntryType) IsValid() bool {
	switch t {
	case TypeFeature, TypeFix, TypeChange, TypeDocs:
		return true
	default:
		return false
	}
}

// Entry is a single change log entry.
type Entry struct {
	Version     string    `yaml:"version" json:"version"`
	Date        string    `yaml:"date" json:"date"` // YYYY-MM-DD
	Type        EntryType `yaml:"type" json:"type"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description" json:"description"`
}

// Stats summarizes a change log.
type Stats struct {
	TotalEntries  int               `json:"total_entries"`
	TypeCounts    map[EntryType]int `json:"type_counts"`
	VersionCounts map[string]int    `json:"version_counts"`
}

type changeLogData struct {
	Entries []Entry `yaml:"entries"`
}

// ChangeLog is a validated, read-only list of entries.
type ChangeLog struct {
	entries []Entry
}

// Load parses the embedded change log.
func Load() (*ChangeLog, error) {
	return Parse(embedded.ChangelogData)
}

// Parse parses and validates change log YAML.
func Parse(data []byte) (*ChangeLog, error) {
	var raw changeLogData
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse change log YAML: %w", err)
	}

	c := &ChangeLog{entries: raw.Entries}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("change log data validation failed: %w", err)
	}
	sortNewestFirst(c.entries)
	return c, nil
}

// Validate checks required fields, entry types and versions.
func (c *ChangeLog) Validate() error {
	for i, entry := range c.entries {
		if entry.Title == "" {
			return fmt.Errorf("entry %d: missing title", i)
		}
		if entry.Date == "" {
			return fmt.Errorf("entry %d (%s): missing date", i, entry.Title)
		}
		if !entry.Type.IsValid() {
			return fmt.Errorf("entry %d (%s): invalid type '%s'", i, entry.Title, entry.Type)
		}
		if _, err := semver.NewVersion(entry.Version); err != nil {
			return fmt.Errorf("entry %d (%s): invalid version '%s': %w", i, entry.Title, entry.Version, err)
		}
	}
	return nil
}

// Entries returns all entries, newest first.
func (c *ChangeLog) Entries() []Entry {
	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// ByType returns entries of the given type, newest first.
func (c *ChangeLog) ByType(entryType string) ([]Entry, error) {
	t := EntryType(strings.ToLower(strings.TrimSpace(entryType)))
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid change type '%s': must be one of feature, fix, change, docs", entryType)
	}

	var matches []Entry
	for _, entry := range c.entries {
		if entry.Type == t {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

// Since returns entries released after version, newest first.
func (c *ChangeLog) Since(version string) ([]Entry, error) {
	base, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid version '%s': %w", version, err)
	}

	var matches []Entry
	for _, entry := range c.entries {
		if semver.MustParse(entry.Version).GreaterThan(base) {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

// Search returns entries whose version, type, title or description contains query.
// The match is case-insensitive; an empty query returns every entry.
func (c *ChangeLog) Search(query string) []Entry {
	if query == "" {
		return c.Entries()
	}

	q := strings.ToLower(query)
	var matches []Entry
	for _, entry := range c.entries {
		if strings.Contains(strings.ToLower(entry.Version), q) ||
			strings.Contains(strings.ToLower(string(entry.Type)), q) ||
			strings.Contains(strings.ToLower(entry.Title), q) ||
			strings.Contains(strings.ToLower(entry.Description), q) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// Summarize counts entries by type and version.
func Summarize(entries []Entry) Stats {
	stats := Stats{
		TotalEntries:  len(entries),
		TypeCounts:    make(map[EntryType]int),
		VersionCounts: make(map[string]int),
	}
	for _, entry := range entries {
		stats.TypeCounts[entry.Type]++
		stats.VersionCounts[entry.Version]++
	}
	return stats
}

// String reports totals as "N changes in M releases".
func (s Stats) String() string {
	return fmt.Sprintf("%s in %s", plural(s.TotalEntries, "change"), plural(len(s.VersionCounts), "release"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// sortNewestFirst orders by version, then date. Entries of one release keep file order.
func sortNewestFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		vi := semver.MustParse(entries[i].Version)
		vj := semver.MustParse(entries[j].Version)
		if !vi.Equal(vj) {
			return vi.GreaterThan(vj)
		}
		return entries[i].Date > entries[j].Date
	})
}

// Markdown renders entries grouped by version, one heading per release.
func Markdown(entries []Entry) string {
	if len(entries) == 0 {
		return "No change log entries found.\n"
	}

	var b strings.Builder
	b.WriteString("# DoxHub Change Log\n")

	current := ""
	for _, entry := range entries {
		if entry.Version != current {
			current = entry.Version
			fmt.Fprintf(&b, "\n## %s (%s)\n\n", entry.Version, entry.Date)
		}
		fmt.Fprintf(&b, "- **%s** %s", entry.Type, entry.Title)
		if entry.Description != "" {
			fmt.Fprintf(&b, ": %s", entry.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}
