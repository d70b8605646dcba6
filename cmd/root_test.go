package cmd

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/biblio-project/bibctl/internal/library"
	"github.com/biblio-project/bibctl/internal/output"
	"github.com/biblio-project/bibctl/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testToken builds an unsigned token with the given claims payload.
func testToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshaling claims: %v", err)
	}
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

// writeTestConfig writes a config file pointing at the given endpoint
// with session storage in a temp dir.
func writeTestConfig(t *testing.T, endpoint string) (cfgPath, storagePath string) {
	t.Helper()
	dir := t.TempDir()
	storagePath = filepath.Join(dir, "credentials.json")
	cfgPath = filepath.Join(dir, "bibctl.yaml")

	content := fmt.Sprintf("backend:\n  endpoint: %s\nsession:\n  storage_path: %s\n",
		endpoint, storagePath)
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return cfgPath, storagePath
}

// seedSession persists credentials so the next Rehydrate restores an
// authenticated session.
func seedSession(t *testing.T, storagePath string, identity library.Identity) {
	t.Helper()
	token := testToken(t, map[string]any{
		"id":         identity.ID,
		"email":      identity.Email,
		"role":       string(identity.Role),
		"givenName":  identity.GivenName,
		"familyName": identity.FamilyName,
	})
	identityJSON, err := json.Marshal(identity)
	if err != nil {
		t.Fatalf("marshaling identity: %v", err)
	}
	if err := session.NewStorage(storagePath).Save(token, string(identityJSON)); err != nil {
		t.Fatalf("seeding session: %v", err)
	}
}

func setupStore(t *testing.T, storagePath string) {
	t.Helper()
	store = session.NewStore(nil, session.NewStorage(storagePath), nil, testLogger())
	store.Rehydrate()
}

func TestEnsureAuthenticated_Anonymous(t *testing.T) {
	setupStore(t, filepath.Join(t.TempDir(), "credentials.json"))

	_, err := ensureAuthenticated()
	var cliErr *output.CLIError
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected CLIError, got %v", err)
	}
	if cliErr.ExitCode != output.ExitAuthError {
		t.Errorf("exit code = %d, want %d", cliErr.ExitCode, output.ExitAuthError)
	}
}

func TestEnsureAuthenticated_SignedIn(t *testing.T) {
	storagePath := filepath.Join(t.TempDir(), "credentials.json")
	seedSession(t, storagePath, library.Identity{
		ID: "u1", Email: "ana@biblio.dev", Role: library.RoleReader, GivenName: "Ana",
	})
	setupStore(t, storagePath)

	identity, err := ensureAuthenticated()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.Email != "ana@biblio.dev" {
		t.Errorf("email = %q", identity.Email)
	}
}

func TestEnsureAdmin_ReaderForbidden(t *testing.T) {
	storagePath := filepath.Join(t.TempDir(), "credentials.json")
	seedSession(t, storagePath, library.Identity{
		ID: "u1", Email: "ana@biblio.dev", Role: library.RoleReader, GivenName: "Ana",
	})
	setupStore(t, storagePath)

	_, err := ensureAdmin()
	var cliErr *output.CLIError
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected CLIError, got %v", err)
	}
	if cliErr.ExitCode != output.ExitForbidden {
		t.Errorf("exit code = %d, want %d", cliErr.ExitCode, output.ExitForbidden)
	}
}

func TestEnsureAdmin_AdminAllowed(t *testing.T) {
	storagePath := filepath.Join(t.TempDir(), "credentials.json")
	seedSession(t, storagePath, library.Identity{
		ID: "a1", Email: "root@biblio.dev", Role: library.RoleAdmin, GivenName: "Root",
	})
	setupStore(t, storagePath)

	identity, err := ensureAdmin()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.Role != library.RoleAdmin {
		t.Errorf("role = %q", identity.Role)
	}
}

func TestSkipsSession(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"version", true},
		{"completion", true},
		{"help", true},
		{"whoami", false},
		{"login", false},
	}
	for _, tt := range tests {
		got := skipsSession(&cobra.Command{Use: tt.name})
		if got != tt.want {
			t.Errorf("skipsSession(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
