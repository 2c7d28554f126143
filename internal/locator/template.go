// Package locator parses and expands the URL templates of OpenResource commands.
//
// A template is a URL with placeholders: "{}" or "{name}". "{{" and "}}" stand for
// literal braces. Values are escaped with url.QueryEscape when the placeholder sits in
// the query string and with url.PathEscape everywhere else.
package locator

import (
	"fmt"
	"net/url"
	"strings"

	"doxhub/pkg/doxtypes"
)

type segment struct {
	literal     string
	placeholder bool
	name        string
	inQuery     bool
}

// Template is a parsed URL template. It is immutable.
type Template struct {
	raw      string
	segments []segment
	names    []string
}

// Parse parses raw into a Template.
func Parse(raw string) (*Template, error) {
	t := &Template{raw: raw}
	var (
		lit      strings.Builder
		inQuery  bool
		fragment bool
		seen     = map[string]bool{}
	)

	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch c {
		case '{':
			if i+1 < len(raw) && raw[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(raw[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unclosed placeholder at offset %d in %q", i, raw)
			}
			name := raw[i+1 : i+1+end]
			if !validName(name) {
				return nil, fmt.Errorf("invalid placeholder name %q in %q", name, raw)
			}
			flush()
			t.segments = append(t.segments, segment{placeholder: true, name: name, inQuery: inQuery})
			if !seen[name] {
				seen[name] = true
				t.names = append(t.names, name)
			}
			i += end + 1
		case '}':
			if i+1 < len(raw) && raw[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("unexpected '}' at offset %d in %q", i, raw)
		case '?':
			if !fragment {
				inQuery = true
			}
			lit.WriteByte(c)
		case '#':
			fragment = true
			inQuery = false
			lit.WriteByte(c)
		default:
			lit.WriteByte(c)
		}
	}
	flush()

	return t, nil
}

func validName(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

// String returns the raw template.
func (t *Template) String() string {
	return t.raw
}

// Placeholders returns the distinct placeholder names in order of first appearance.
// The anonymous placeholder "{}" is reported as "".
func (t *Template) Placeholders() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Expand substitutes values into the template. Every placeholder needs a non-empty value;
// the first missing one yields a *doxtypes.MissingValueError.
func (t *Template) Expand(values map[string]string) (string, error) {
	var b strings.Builder
	for _, seg := range t.segments {
		if !seg.placeholder {
			b.WriteString(seg.literal)
			continue
		}
		value := values[seg.name]
		if value == "" {
			return "", &doxtypes.MissingValueError{Placeholder: DisplayName(seg.name)}
		}
		if seg.inQuery {
			b.WriteString(url.QueryEscape(value))
		} else {
			b.WriteString(url.PathEscape(value))
		}
	}
	return b.String(), nil
}

// Validate checks that the template expands to an absolute http(s) URL.
func (t *Template) Validate() error {
	sample := make(map[string]string, len(t.names))
	for _, name := range t.names {
		sample[name] = "x"
	}
	expanded, err := t.Expand(sample)
	if err != nil {
		return err
	}
	u, err := url.Parse(expanded)
	if err != nil {
		return fmt.Errorf("invalid URL template %q: %w", t.raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL template %q must use http or https", t.raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL template %q has no host", t.raw)
	}
	return nil
}

// DisplayName returns the human name of a placeholder.
func DisplayName(name string) string {
	if name == "" {
		return "value"
	}
	return name
}
