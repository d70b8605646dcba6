package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// credentialsFile is the persisted session: two string-valued keys,
// the opaque token and the JSON-encoded identity.
type credentialsFile struct {
	Token    string `json:"token"`
	Identity string `json:"identity"`
}

// Storage persists the session across process restarts. Only the
// session store writes it.
type Storage struct {
	path string
}

// NewStorage creates credential storage at the given file path.
func NewStorage(path string) *Storage {
	return &Storage{path: path}
}

// DefaultStoragePath returns the per-user credentials location.
func DefaultStoragePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "bibctl", "credentials.json"), nil
}

// Load reads the persisted token and identity blob. A missing file is
// not an error; both values come back empty.
func (s *Storage) Load() (token, identity string, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("reading credentials: %w", err)
	}

	var f credentialsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return "", "", fmt.Errorf("parsing credentials: %w", err)
	}
	return f.Token, f.Identity, nil
}

// Save writes both keys atomically via a rename. The file is private
// to the user.
func (s *Storage) Save(token, identity string) error {
	data, err := json.MarshalIndent(credentialsFile{Token: token, Identity: identity}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating credentials dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}

// Clear deletes the persisted session. Idempotent.
func (s *Storage) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing credentials: %w", err)
	}
	return nil
}
