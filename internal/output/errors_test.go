package output

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/biblio-project/bibctl/internal/library"
)

func TestCLIError_Error(t *testing.T) {
	err := &CLIError{
		Summary:    "something failed",
		Detail:     "because of reasons",
		Suggestion: "try again",
		ExitCode:   ExitGeneral,
	}

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
}

func TestFormatError_AllFields(t *testing.T) {
	var stderr bytes.Buffer
	p := NewPrinterWithOptions(PrinterOptions{
		ColorMode:    ColorNever,
		ConfigColors: false,
	})
	p.err = &stderr

	cliErr := &CLIError{
		Summary:    "unknown material kind: cassette",
		Detail:     "kind 'cassette' is not part of the catalog",
		Suggestion: "Use libro, revista, or digital",
		ExitCode:   ExitUsageError,
	}

	p.FormatError(cliErr)

	out := stderr.String()
	if !strings.Contains(out, "unknown material kind: cassette") {
		t.Errorf("missing summary in output: %q", out)
	}
	if !strings.Contains(out, "kind 'cassette' is not part of the catalog") {
		t.Errorf("missing detail in output: %q", out)
	}
	if !strings.Contains(out, "Use libro, revista, or digital") {
		t.Errorf("missing suggestion in output: %q", out)
	}
}

func TestFormatError_NoDetail(t *testing.T) {
	var stderr bytes.Buffer
	p := NewPrinterWithOptions(PrinterOptions{
		ColorMode:    ColorNever,
		ConfigColors: false,
	})
	p.err = &stderr

	cliErr := &CLIError{
		Summary:    "config file not found",
		Suggestion: "Check .bibctl.yaml syntax or use --config flag",
		ExitCode:   ExitConfig,
	}

	p.FormatError(cliErr)

	out := stderr.String()
	if !strings.Contains(out, "config file not found") {
		t.Errorf("missing summary in output: %q", out)
	}
	if strings.Contains(out, "Cause:") {
		t.Errorf("should not contain Cause line when Detail is empty: %q", out)
	}
	if !strings.Contains(out, "Check .bibctl.yaml syntax or use --config flag") {
		t.Errorf("missing suggestion in output: %q", out)
	}
}

func TestFromBackendError_Unavailable(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", library.ErrBackendUnavailable)

	cliErr := FromBackendError(err)

	if cliErr.ExitCode != ExitBackend {
		t.Errorf("ExitCode = %d, want %d", cliErr.ExitCode, ExitBackend)
	}
	if !strings.Contains(cliErr.Suggestion, "endpoint") {
		t.Errorf("suggestion should mention the endpoint: %q", cliErr.Suggestion)
	}
}

func TestFromBackendError_AuthRejected(t *testing.T) {
	cliErr := FromBackendError(fmt.Errorf("%w: bad credentials", library.ErrAuthRejected))

	if cliErr.ExitCode != ExitAuthError {
		t.Errorf("ExitCode = %d, want %d", cliErr.ExitCode, ExitAuthError)
	}
}

func TestFromBackendError_MalformedToken(t *testing.T) {
	cliErr := FromBackendError(library.ErrMalformedToken)

	if cliErr.ExitCode != ExitAuthError {
		t.Errorf("ExitCode = %d, want %d", cliErr.ExitCode, ExitAuthError)
	}
}

func TestFromBackendError_Rejected(t *testing.T) {
	cliErr := FromBackendError(fmt.Errorf("%w: el material no está disponible", library.ErrBackendRejected))

	if cliErr.ExitCode != ExitBackend {
		t.Errorf("ExitCode = %d, want %d", cliErr.ExitCode, ExitBackend)
	}
	if !strings.Contains(cliErr.Detail, "el material no está disponible") {
		t.Errorf("detail should carry the backend's message: %q", cliErr.Detail)
	}
}

func TestFromBackendError_Unknown(t *testing.T) {
	cliErr := FromBackendError(fmt.Errorf("some other failure"))

	if cliErr.ExitCode != ExitGeneral {
		t.Errorf("ExitCode = %d, want %d", cliErr.ExitCode, ExitGeneral)
	}
}

func TestExitCodes(t *testing.T) {
	// Verify exit code constants have expected values
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsageError != 2 {
		t.Errorf("ExitUsageError = %d, want 2", ExitUsageError)
	}
}
