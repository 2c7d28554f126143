// Package doxtypes defines the error taxonomy shared by DoxHub components.
// Startup errors (compatibility, catalog) are fatal; per-iteration errors are reported
// by the session loop and never end the session.
package doxtypes

import (
	"errors"
	"fmt"
	"strings"
)

// UnsupportedOSError is returned when the host operating system is not supported.
type UnsupportedOSError struct {
	OS        string
	Supported []string
}

func (e *UnsupportedOSError) Error() string {
	return fmt.Sprintf("unsupported operating system %q (supported: %s)", e.OS, strings.Join(e.Supported, ", "))
}

// UnsupportedRuntimeError is returned when the Go runtime version is outside the supported range.
type UnsupportedRuntimeError struct {
	Version string
	Min     string
	Max     string
}

func (e *UnsupportedRuntimeError) Error() string {
	return fmt.Sprintf("unsupported Go runtime version %q (supported: %s)", e.Version, e.Range())
}

// Range renders the supported version range.
func (e *UnsupportedRuntimeError) Range() string {
	switch {
	case e.Min != "" && e.Max != "":
		return fmt.Sprintf(">= %s, <= %s", e.Min, e.Max)
	case e.Min != "":
		return ">= " + e.Min
	case e.Max != "":
		return "<= " + e.Max
	default:
		return "any"
	}
}

// DuplicateCategoryError is returned when a category identifier is registered twice.
type DuplicateCategoryError struct {
	ID string
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("category %s already registered", e.ID)
}

// UnknownCategoryError is returned when a category identifier is not registered.
type UnknownCategoryError struct {
	ID string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category: %s", e.ID)
}

// CatalogLoadError is returned when catalog data cannot be loaded or violates the
// catalog invariants. Problems lists every violation found, Err the underlying cause.
type CatalogLoadError struct {
	Source   string
	Problems []string
	Err      error
}

func (e *CatalogLoadError) Error() string {
	var b strings.Builder
	b.WriteString("invalid catalog")
	if e.Source != "" {
		b.WriteString(" ")
		b.WriteString(e.Source)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if len(e.Problems) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Problems, "; "))
	}
	return b.String()
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Err
}

// UnknownCommandError is returned when input matches no command of the current category.
type UnknownCommandError struct {
	Input      string
	Category   string
	Suggestion string
}

func (e *UnknownCommandError) Error() string {
	msg := fmt.Sprintf("unknown command %q in %s", e.Input, e.Category)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// AmbiguousInputError is returned when input is a prefix of more than one command label.
type AmbiguousInputError struct {
	Input   string
	Matches []string
}

func (e *AmbiguousInputError) Error() string {
	return fmt.Sprintf("ambiguous input %q matches: %s", e.Input, strings.Join(e.Matches, ", "))
}

// OpenErrorReason classifies resource handler failures.
type OpenErrorReason int

const (
	// OpenHandlerFailed means a handler was found but failed
	OpenHandlerFailed OpenErrorReason = iota
	// OpenNoHandler means no resource handler is available on this host
	OpenNoHandler
)

// OpenError is returned when a locator could not be handed to the resource handler.
type OpenError struct {
	Locator string
	Reason  OpenErrorReason
	Err     error
}

func (e *OpenError) Error() string {
	reason := "resource handler failed"
	if e.Reason == OpenNoHandler {
		reason = "no resource handler available"
	}
	if e.Err != nil {
		return fmt.Sprintf("cannot open %s: %s: %v", e.Locator, reason, e.Err)
	}
	return fmt.Sprintf("cannot open %s: %s", e.Locator, reason)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// MissingValueError is returned when the user leaves a required placeholder empty.
type MissingValueError struct {
	Placeholder string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("no value given for %s, nothing opened", e.Placeholder)
}

// IsStartupError reports whether err belongs to the fatal startup taxonomy.
func IsStartupError(err error) bool {
	var (
		osErr   *UnsupportedOSError
		rtErr   *UnsupportedRuntimeError
		dupErr  *DuplicateCategoryError
		unkErr  *UnknownCategoryError
		loadErr *CatalogLoadError
	)
	return errors.As(err, &osErr) || errors.As(err, &rtErr) || errors.As(err, &dupErr) ||
		errors.As(err, &unkErr) || errors.As(err, &loadErr)
}

// IsCompatibilityError reports whether err is an unsupported OS or runtime error.
func IsCompatibilityError(err error) bool {
	var (
		osErr *UnsupportedOSError
		rtErr *UnsupportedRuntimeError
	)
	return errors.As(err, &osErr) || errors.As(err, &rtErr)
}
