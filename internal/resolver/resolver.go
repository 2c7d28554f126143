// Package resolver maps free-form user input to a command of the current category.
package resolver

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"doxhub/pkg/doxtypes"
)

// Reserved input tokens. They are checked before the category contents.
var (
	backTokens = map[string]bool{"": true, "back": true, "b": true, "0": true}
	exitTokens = map[string]bool{"exit": true, "quit": true, "q": true}
)

// maxSuggestionDistance bounds how far a label may be from the input to be suggested.
const maxSuggestionDistance = 3

// Resolve maps input to a command of category. Resolution order, first match wins:
// reserved tokens, exact case-insensitive label, on-screen number, unambiguous
// case-insensitive label prefix. canGoBack tells whether the back token can return
// to a previous category; without history it resolves to exit instead. The same holds
// for catalog commands whose action is GoBack, so a GoBack is never returned when
// there is nothing to go back to.
func Resolve(category doxtypes.Category, input string, canGoBack bool) (doxtypes.Command, error) {
	cmd, err := resolve(category, input, canGoBack)
	if err == nil && cmd.Action.Kind == doxtypes.ActionGoBack && !canGoBack {
		return doxtypes.ExitCommand, nil
	}
	return cmd, err
}

func resolve(category doxtypes.Category, input string, canGoBack bool) (doxtypes.Command, error) {
	trimmed := strings.TrimSpace(input)
	token := strings.ToLower(trimmed)

	if backTokens[token] {
		if canGoBack {
			return doxtypes.BackCommand, nil
		}
		return doxtypes.ExitCommand, nil
	}
	if exitTokens[token] {
		return doxtypes.ExitCommand, nil
	}

	for _, cmd := range category.Commands {
		if strings.ToLower(cmd.Label) == token {
			return cmd, nil
		}
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		for pos, cmd := range category.Commands {
			if cmd.Number(pos) == n {
				return cmd, nil
			}
		}
	}

	var matches []doxtypes.Command
	for _, cmd := range category.Commands {
		if strings.HasPrefix(strings.ToLower(cmd.Label), token) {
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return doxtypes.Command{}, &doxtypes.UnknownCommandError{
			Input:      trimmed,
			Category:   category.Title(),
			Suggestion: Suggest(category, trimmed),
		}
	default:
		labels := make([]string, len(matches))
		for i, cmd := range matches {
			labels[i] = cmd.Label
		}
		return doxtypes.Command{}, &doxtypes.AmbiguousInputError{Input: trimmed, Matches: labels}
	}
}

// Suggest returns the label closest to input by edit distance, or "" when nothing is
// close enough. It never changes what Resolve selects.
func Suggest(category doxtypes.Category, input string) string {
	token := strings.ToLower(strings.TrimSpace(input))
	if token == "" {
		return ""
	}

	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, cmd := range category.Commands {
		distance := levenshtein.ComputeDistance(token, strings.ToLower(cmd.Label))
		if distance < bestDistance {
			best = cmd.Label
			bestDistance = distance
		}
	}

	// Short inputs are too easy to "match"
	if bestDistance >= len([]rune(token)) {
		return ""
	}
	return best
}
