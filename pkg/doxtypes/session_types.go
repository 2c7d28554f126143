// Package doxtypes defines session state types for DoxHub.
// This file contains the navigation state threaded through the session loop and the
// outcomes reported by the dispatcher.
package doxtypes

import "fmt"

// SessionState is the mutable navigation state of one interactive session.
// It is owned by the session loop and never persisted.
type SessionState struct {
	ID      string
	Current string
	History []string
	Exiting bool
}

// NewSessionState creates a session positioned at the root category.
func NewSessionState(id, root string) *SessionState {
	return &SessionState{ID: id, Current: root}
}

// CanGoBack reports whether the history stack is non-empty.
func (s *SessionState) CanGoBack() bool {
	return len(s.History) > 0
}

// Push records the current category in the history and moves to next.
func (s *SessionState) Push(next string) {
	s.History = append(s.History, s.Current)
	s.Current = next
}

// Pop moves back to the most recently visited category.
// It returns false and leaves the state untouched when the history is empty.
func (s *SessionState) Pop() (string, bool) {
	if len(s.History) == 0 {
		return "", false
	}
	last := len(s.History) - 1
	s.Current = s.History[last]
	s.History = s.History[:last]
	return s.Current, true
}

// Breadcrumbs returns the visited path ending with the current category.
func (s *SessionState) Breadcrumbs() []string {
	crumbs := make([]string, 0, len(s.History)+1)
	crumbs = append(crumbs, s.History...)
	return append(crumbs, s.Current)
}

// OutcomeKind identifies the result of dispatching one command.
type OutcomeKind int

const (
	// OutcomeOpened means a locator was handed to the resource handler
	OutcomeOpened OutcomeKind = iota
	// OutcomeShown means information text was printed
	OutcomeShown
	// OutcomeNavigated means the current category changed
	OutcomeNavigated
	// OutcomeExiting means the session is ending
	OutcomeExiting
)

// String returns a lowercase name for logging.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOpened:
		return "opened"
	case OutcomeShown:
		return "shown"
	case OutcomeNavigated:
		return "navigated"
	case OutcomeExiting:
		return "exiting"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// DispatchOutcome is what the dispatcher reports back to the session loop.
type DispatchOutcome struct {
	Kind       OutcomeKind
	Locator    string // set for OutcomeOpened
	CategoryID string // set for OutcomeNavigated
}

// Opened builds an OutcomeOpened result.
func Opened(locator string) DispatchOutcome {
	return DispatchOutcome{Kind: OutcomeOpened, Locator: locator}
}

// Shown builds an OutcomeShown result.
func Shown() DispatchOutcome {
	return DispatchOutcome{Kind: OutcomeShown}
}

// Navigated builds an OutcomeNavigated result.
func Navigated(categoryID string) DispatchOutcome {
	return DispatchOutcome{Kind: OutcomeNavigated, CategoryID: categoryID}
}

// Exiting builds an OutcomeExiting result.
func Exiting() DispatchOutcome {
	return DispatchOutcome{Kind: OutcomeExiting}
}
