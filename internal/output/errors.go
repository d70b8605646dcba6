package output

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/biblio-project/bibctl/internal/library"
)

// Exit code constants
const (
	ExitSuccess    = 0
	ExitGeneral    = 1
	ExitUsageError = 2
	ExitAuthError  = 3
	ExitBackend    = 4
	ExitConfig     = 5
	ExitForbidden  = 6
)

// CLIError is a structured error with user-facing context
type CLIError struct {
	Summary    string
	Detail     string
	Suggestion string
	ExitCode   int
}

// Error implements the error interface, returning the summary
func (e *CLIError) Error() string {
	return e.Summary
}

// FromBackendError wraps a gateway failure in user-facing context.
func FromBackendError(err error) *CLIError {
	switch {
	case errors.Is(err, library.ErrBackendUnavailable):
		return &CLIError{
			Summary:    "the library backend could not be reached",
			Detail:     err.Error(),
			Suggestion: "check the backend endpoint in .bibctl.yaml or BIBCTL_BACKEND_ENDPOINT",
			ExitCode:   ExitBackend,
		}
	case errors.Is(err, library.ErrAuthRejected):
		return &CLIError{
			Summary:    "authentication failed",
			Detail:     err.Error(),
			Suggestion: "check your email and password, then run 'bibctl login' again",
			ExitCode:   ExitAuthError,
		}
	case errors.Is(err, library.ErrMalformedToken):
		return &CLIError{
			Summary:    "the server returned an unreadable authentication token",
			Detail:     err.Error(),
			Suggestion: "retry; if the problem persists the backend deployment is misconfigured",
			ExitCode:   ExitAuthError,
		}
	case errors.Is(err, library.ErrBackendRejected):
		return &CLIError{
			Summary:  "the backend rejected the request",
			Detail:   err.Error(),
			ExitCode: ExitBackend,
		}
	default:
		return &CLIError{
			Summary:  "request failed",
			Detail:   err.Error(),
			ExitCode: ExitGeneral,
		}
	}
}

// FormatError prints a structured error message to stderr
func (p *Printer) FormatError(e *CLIError) {
	if p.useColors {
		color.New(color.FgRed, color.Bold).Fprintf(p.err, "Error: %s\n", e.Summary)
		if e.Detail != "" {
			fmt.Fprintf(p.err, "  Cause: %s\n", e.Detail)
		}
		if e.Suggestion != "" {
			color.New(color.FgCyan).Fprintf(p.err, "  Suggestion: %s\n", e.Suggestion)
		}
	} else {
		fmt.Fprintf(p.err, "[ERROR] %s\n", e.Summary)
		if e.Detail != "" {
			fmt.Fprintf(p.err, "  Cause: %s\n", e.Detail)
		}
		if e.Suggestion != "" {
			fmt.Fprintf(p.err, "  Suggestion: %s\n", e.Suggestion)
		}
	}
}
