// Package opener hands resource locators to the host: the default web browser, the
// terminal (print-only mode) or the system clipboard.
package opener

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/browser"

	"doxhub/internal/logger"
	"doxhub/pkg/doxtypes"
)

// Opener opens a resource locator.
type Opener interface {
	Open(locator string) error
}

// Func adapts an ordinary function to the Opener interface.
type Func func(locator string) error

// Open calls f(locator).
func (f Func) Open(locator string) error {
	return f(locator)
}

// BrowserOpener opens locators in the user's default browser.
type BrowserOpener struct {
	openURL func(string) error
}

// NewBrowserOpener creates a BrowserOpener. Output of the spawned browser process is
// discarded so it cannot garble the menu.
func NewBrowserOpener() *BrowserOpener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &BrowserOpener{openURL: browser.OpenURL}
}

// Open implements Opener. A missing browser launcher is reported as OpenNoHandler,
// any other failure as OpenHandlerFailed.
func (o *BrowserOpener) Open(locator string) error {
	if err := o.openURL(locator); err != nil {
		reason := doxtypes.OpenHandlerFailed
		if errors.Is(err, exec.ErrNotFound) {
			reason = doxtypes.OpenNoHandler
		}
		logger.Debug("Browser open failed", "locator", locator, "error", err)
		return &doxtypes.OpenError{Locator: locator, Reason: reason, Err: err}
	}
	logger.Debug("Opened in browser", "locator", locator)
	return nil
}

// PrintOpener writes each locator on its own line instead of opening it.
type PrintOpener struct {
	out io.Writer
}

// NewPrintOpener creates a PrintOpener writing to out, or stdout when out is nil.
func NewPrintOpener(out io.Writer) *PrintOpener {
	if out == nil {
		out = os.Stdout
	}
	return &PrintOpener{out: out}
}

// Open implements Opener.
func (o *PrintOpener) Open(locator string) error {
	if _, err := fmt.Fprintln(o.out, locator); err != nil {
		return &doxtypes.OpenError{Locator: locator, Reason: doxtypes.OpenHandlerFailed, Err: err}
	}
	return nil
}

// Mode selects how locators are opened.
type Mode string

const (
	// ModeBrowser opens locators in the default browser
	ModeBrowser Mode = "browser"
	// ModePrint prints locators
	ModePrint Mode = "print"
)

// New returns the Opener for mode.
func New(mode Mode, out io.Writer) (Opener, error) {
	switch mode {
	case ModeBrowser, "":
		return NewBrowserOpener(), nil
	case ModePrint:
		return NewPrintOpener(out), nil
	default:
		return nil, fmt.Errorf("unknown open mode %q (expected browser or print)", mode)
	}
}
