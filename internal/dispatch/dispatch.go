// Package dispatch performs the effect of a resolved command: opening a resource,
// showing information or moving through the category history.
package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"doxhub/internal/locator"
	"doxhub/internal/logger"
	"doxhub/internal/opener"
	"doxhub/internal/output"
	"doxhub/pkg/doxtypes"
)

// ErrEmptyHistory is returned when GoBack is dispatched without history.
// The resolver never produces GoBack in that state, so this indicates a caller bug.
var ErrEmptyHistory = errors.New("internal error: go back with empty history")

// Prompter asks the user for one line of input.
type Prompter interface {
	Prompt(label string) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(label string) (string, error)

// Prompt calls f(label).
func (f PrompterFunc) Prompt(label string) (string, error) {
	return f(label)
}

// Dispatcher executes commands against a session state.
type Dispatcher struct {
	prompter  Prompter
	opener    opener.Opener
	clipboard opener.Clipboard
	printer   *output.Printer
	log       *log.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClipboard copies locators that could not be opened to clipboard.
func WithClipboard(clipboard opener.Clipboard) Option {
	return func(d *Dispatcher) {
		d.clipboard = clipboard
	}
}

// New creates a Dispatcher. printer receives ShowInfo text and fallback notices.
func New(prompter Prompter, op opener.Opener, printer *output.Printer, options ...Option) *Dispatcher {
	d := &Dispatcher{
		prompter: prompter,
		opener:   op,
		printer:  printer,
		log:      logger.NewStyledLogger("Dispatch"),
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// Dispatch performs cmd for state. Recoverable failures (missing value, open failure)
// are returned as typed errors and leave state unchanged.
func (d *Dispatcher) Dispatch(cmd doxtypes.Command, state *doxtypes.SessionState) (doxtypes.DispatchOutcome, error) {
	logger.CommandDispatch(state.Current, cmd.Label, cmd.Action.Kind.String())

	switch cmd.Action.Kind {
	case doxtypes.ActionOpenResource:
		return d.open(cmd)

	case doxtypes.ActionShowInfo:
		if cmd.Action.Markdown {
			d.printer.Markdown(cmd.Action.Text)
		} else {
			d.printer.Println(strings.TrimRight(cmd.Action.Text, "\n"))
		}
		return doxtypes.Shown(), nil

	case doxtypes.ActionEnterCategory:
		state.Push(cmd.Action.CategoryID)
		d.log.Debug("Entered category", "session", state.ID, "category", state.Current)
		return doxtypes.Navigated(state.Current), nil

	case doxtypes.ActionGoBack:
		previous, ok := state.Pop()
		if !ok {
			return doxtypes.DispatchOutcome{}, fmt.Errorf("%w (category %q)", ErrEmptyHistory, state.Current)
		}
		d.log.Debug("Went back", "session", state.ID, "category", previous)
		return doxtypes.Navigated(previous), nil

	case doxtypes.ActionExit:
		state.Exiting = true
		return doxtypes.Exiting(), nil

	default:
		return doxtypes.DispatchOutcome{}, fmt.Errorf("internal error: unknown action kind %d for %q", cmd.Action.Kind, cmd.Label)
	}
}

func (d *Dispatcher) open(cmd doxtypes.Command) (doxtypes.DispatchOutcome, error) {
	tmpl, err := locator.Parse(cmd.Action.URLTemplate)
	if err != nil {
		return doxtypes.DispatchOutcome{}, fmt.Errorf("command %q: %w", cmd.Label, err)
	}

	names := tmpl.Placeholders()
	values := make(map[string]string, len(names))
	for _, name := range names {
		answer, err := d.prompter.Prompt(promptLabel(cmd.Action.Prompt, name, len(names)))
		if err != nil {
			return doxtypes.DispatchOutcome{}, fmt.Errorf("failed to read %s: %w", locator.DisplayName(name), err)
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return doxtypes.DispatchOutcome{}, &doxtypes.MissingValueError{Placeholder: locator.DisplayName(name)}
		}
		values[name] = answer
	}

	target, err := tmpl.Expand(values)
	if err != nil {
		return doxtypes.DispatchOutcome{}, err
	}

	if err := d.opener.Open(target); err != nil {
		var openErr *doxtypes.OpenError
		if !errors.As(err, &openErr) {
			err = &doxtypes.OpenError{Locator: target, Reason: doxtypes.OpenHandlerFailed, Err: err}
		}
		d.copyFallback(target)
		return doxtypes.DispatchOutcome{}, err
	}

	return doxtypes.Opened(target), nil
}

func (d *Dispatcher) copyFallback(target string) {
	if d.clipboard == nil {
		return
	}
	if err := d.clipboard.Copy(target); err != nil {
		d.log.Debug("Clipboard fallback failed", "locator", target, "error", err)
		return
	}
	d.printer.Info("Copied " + target + " to the clipboard")
}

// promptLabel picks the text shown when asking for placeholder name.
func promptLabel(prompt, name string, count int) string {
	switch {
	case prompt != "" && count == 1:
		return prompt
	case prompt != "" && name != "":
		return fmt.Sprintf("%s (%s)", prompt, name)
	case prompt != "":
		return prompt
	default:
		display := locator.DisplayName(name)
		return strings.ToUpper(display[:1]) + display[1:]
	}
}
