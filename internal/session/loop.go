// Package session runs the interactive menu loop: show the current category, read a
// line, resolve it to a command, dispatch it and report the outcome.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"doxhub/internal/dispatch"
	"doxhub/internal/logger"
	"doxhub/internal/output"
	"doxhub/internal/registry"
	"doxhub/internal/resolver"
	"doxhub/pkg/doxtypes"
)

// ChoicePrompt is the label used when reading a menu choice.
const ChoicePrompt = "Choice"

// Loop is one interactive session. It owns its SessionState.
type Loop struct {
	registry   *registry.Registry
	dispatcher *dispatch.Dispatcher
	prompter   dispatch.Prompter
	printer    *output.Printer
	state      *doxtypes.SessionState
	notice     string
	log        *log.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithSessionID sets the session identifier used in logs.
func WithSessionID(id string) Option {
	return func(l *Loop) {
		l.state.ID = id
	}
}

// WithNotice sets a message shown once before the first menu, such as an update notice.
func WithNotice(notice string) Option {
	return func(l *Loop) {
		l.notice = notice
	}
}

// New creates a session positioned at the registry root.
func New(reg *registry.Registry, dispatcher *dispatch.Dispatcher, prompter dispatch.Prompter, printer *output.Printer, options ...Option) *Loop {
	l := &Loop{
		registry:   reg,
		dispatcher: dispatcher,
		prompter:   prompter,
		printer:    printer,
		state:      doxtypes.NewSessionState(NewID(false), reg.Root()),
		log:        logger.NewStyledLogger("Session"),
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// State returns the session state. Callers must not modify it.
func (l *Loop) State() *doxtypes.SessionState {
	return l.state
}

// Run shows menus and handles input until the user exits or input ends.
// Recoverable errors are reported and the loop stays in the same category;
// only internal errors end the session with an error.
func (l *Loop) Run() error {
	l.log.Info("Session started", "session", l.state.ID, "category", l.state.Current)

	if l.notice != "" {
		l.printer.Warning(l.notice)
	}

	for !l.state.Exiting {
		category, err := l.registry.Get(l.state.Current)
		if err != nil {
			return fmt.Errorf("session %s: %w", l.state.ID, err)
		}
		l.printer.Print(RenderMenu(l.registry, category, l.state, l.printer))

		line, err := l.prompter.Prompt(ChoicePrompt)
		if err != nil {
			l.log.Debug("Input ended", "session", l.state.ID, "error", err)
			l.state.Exiting = true
			break
		}

		outcome, err := l.Handle(line)
		if err != nil {
			if isEndOfInput(err) {
				l.state.Exiting = true
				break
			}
			if isInternal(err) {
				return fmt.Errorf("session %s: %w", l.state.ID, err)
			}
			l.report(err)
			continue
		}
		l.reportOutcome(outcome)
	}

	l.log.Info("Session ended", "session", l.state.ID)
	return nil
}

// Handle performs one iteration for line without drawing the menu: resolve against the
// current category, then dispatch.
func (l *Loop) Handle(line string) (doxtypes.DispatchOutcome, error) {
	category, err := l.registry.Get(l.state.Current)
	if err != nil {
		return doxtypes.DispatchOutcome{}, err
	}

	cmd, err := resolver.Resolve(category, line, l.state.CanGoBack())
	if err != nil {
		l.log.Debug("Input not resolved", "session", l.state.ID, "input", line, "error", err)
		return doxtypes.DispatchOutcome{}, err
	}

	return l.dispatcher.Dispatch(cmd, l.state)
}

func (l *Loop) report(err error) {
	var missing *doxtypes.MissingValueError
	if errors.As(err, &missing) {
		l.printer.Warning(err.Error())
		return
	}
	l.printer.Error(err.Error())
}

func (l *Loop) reportOutcome(outcome doxtypes.DispatchOutcome) {
	switch outcome.Kind {
	case doxtypes.OutcomeOpened:
		l.printer.Success("Opened " + outcome.Locator)
	case doxtypes.OutcomeExiting:
		l.printer.Println("Goodbye.")
	case doxtypes.OutcomeShown, doxtypes.OutcomeNavigated:
	}
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF)
}

// isInternal reports errors that are not part of the recoverable taxonomy.
func isInternal(err error) bool {
	if errors.Is(err, dispatch.ErrEmptyHistory) {
		return true
	}
	var unknown *doxtypes.UnknownCategoryError
	return errors.As(err, &unknown)
}
