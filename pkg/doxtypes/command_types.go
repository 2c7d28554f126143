// Package doxtypes defines the command catalog types for DoxHub.
// This file contains categories, commands and the tagged action descriptor that the
// dispatcher switches over.
package doxtypes

import "fmt"

// ActionKind identifies which variant an Action holds.
type ActionKind int

const (
	// ActionOpenResource hands a resolved locator to the OS resource handler
	ActionOpenResource ActionKind = iota
	// ActionShowInfo prints guidance text
	ActionShowInfo
	// ActionEnterCategory descends into another category
	ActionEnterCategory
	// ActionGoBack returns to the previously visited category
	ActionGoBack
	// ActionExit ends the session
	ActionExit
)

// String returns the catalog spelling of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionOpenResource:
		return "open"
	case ActionShowInfo:
		return "info"
	case ActionEnterCategory:
		return "enter"
	case ActionGoBack:
		return "back"
	case ActionExit:
		return "exit"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is the action descriptor of a Command. Only the fields that belong to Kind
// are meaningful; use the constructors below instead of building values by hand.
type Action struct {
	Kind ActionKind

	// OpenResource
	URLTemplate string
	Prompt      string // label used when asking for placeholder values

	// ShowInfo
	Text     string
	Markdown bool

	// EnterCategory
	CategoryID string
}

// OpenResource returns an action that opens the locator built from urlTemplate.
func OpenResource(urlTemplate string) Action {
	return Action{Kind: ActionOpenResource, URLTemplate: urlTemplate}
}

// ShowInfo returns an action that prints text verbatim.
func ShowInfo(text string) Action {
	return Action{Kind: ActionShowInfo, Text: text}
}

// EnterCategory returns an action that navigates into categoryID.
func EnterCategory(categoryID string) Action {
	return Action{Kind: ActionEnterCategory, CategoryID: categoryID}
}

// GoBack returns the synthetic back action.
func GoBack() Action {
	return Action{Kind: ActionGoBack}
}

// Exit returns the exit action.
func Exit() Action {
	return Action{Kind: ActionExit}
}

// WithPrompt sets the prompt label of an OpenResource action.
func (a Action) WithPrompt(prompt string) Action {
	a.Prompt = prompt
	return a
}

// AsMarkdown marks a ShowInfo action for markdown rendering.
func (a Action) AsMarkdown() Action {
	a.Markdown = true
	return a
}

// Command is a single selectable entry within a Category.
type Command struct {
	Label       string `json:"label"`
	Index       int    `json:"index,omitempty"` // optional on-screen number, 0 means "use position"
	Description string `json:"description,omitempty"`
	Action      Action `json:"-"`
}

// Number returns the on-screen number of the command listed at zero-based position pos.
func (c Command) Number(pos int) int {
	if c.Index > 0 {
		return c.Index
	}
	return pos + 1
}

// Synthetic commands produced by the resolver for reserved input tokens.
var (
	BackCommand = Command{Label: "back", Action: GoBack()}
	ExitCommand = Command{Label: "exit", Action: Exit()}
)

// Category is a named group of commands shown as one menu.
type Category struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Description string    `json:"description,omitempty"`
	Commands    []Command `json:"commands"`
}

// Title returns the display label, falling back to the identifier.
func (c Category) Title() string {
	if c.Label != "" {
		return c.Label
	}
	return c.ID
}

// Clone returns a copy whose command slice does not alias the receiver's.
func (c Category) Clone() Category {
	out := c
	out.Commands = make([]Command, len(c.Commands))
	copy(out.Commands, c.Commands)
	return out
}
