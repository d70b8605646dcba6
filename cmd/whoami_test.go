package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/biblio-project/bibctl/internal/library"
	"github.com/biblio-project/bibctl/internal/output"
)

func TestWhoamiCommand_JSON(t *testing.T) {
	cfgPath, storagePath := writeTestConfig(t, "http://localhost:4000/graphql")
	seedSession(t, storagePath, library.Identity{
		ID: "u1", Email: "ana@biblio.dev", Role: library.RoleReader,
		GivenName: "Ana", FamilyName: "García",
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"whoami", "--json", "--config", cfgPath, "--quiet"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("whoami failed: %v", err)
	}

	var identity library.Identity
	if err := json.Unmarshal(buf.Bytes(), &identity); err != nil {
		t.Fatalf("invalid JSON output: %v\nGot: %s", err, buf.String())
	}
	if identity.Email != "ana@biblio.dev" {
		t.Errorf("email = %q", identity.Email)
	}
	if identity.Role != library.RoleReader {
		t.Errorf("role = %q", identity.Role)
	}
}

func TestWhoamiCommand_Anonymous(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, "http://localhost:4000/graphql")

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"whoami", "--json", "--config", cfgPath, "--quiet"})

	err := rootCmd.Execute()
	var cliErr *output.CLIError
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected CLIError, got %v", err)
	}
	if cliErr.ExitCode != output.ExitAuthError {
		t.Errorf("exit code = %d, want %d", cliErr.ExitCode, output.ExitAuthError)
	}
}

func TestLogoutCommand_ForgetsSession(t *testing.T) {
	cfgPath, storagePath := writeTestConfig(t, "http://localhost:4000/graphql")
	seedSession(t, storagePath, library.Identity{
		ID: "u1", Email: "ana@biblio.dev", Role: library.RoleReader, GivenName: "Ana",
	})

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"logout", "--config", cfgPath, "--quiet"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	// The next whoami must see an anonymous session.
	rootCmd.SetArgs([]string{"whoami", "--json", "--config", cfgPath, "--quiet"})
	err := rootCmd.Execute()
	var cliErr *output.CLIError
	if !errors.As(err, &cliErr) || cliErr.ExitCode != output.ExitAuthError {
		t.Fatalf("expected auth error after logout, got %v", err)
	}
}
