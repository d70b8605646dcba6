// Package session owns the authenticated identity derived from the
// backend's signed token. The Store is the single writer of both the
// in-memory session and its persisted form; all readers get value
// snapshots.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/biblio-project/bibctl/internal/library"
	"github.com/biblio-project/bibctl/internal/notify"
)

// Authenticator exchanges credentials for an opaque signed token.
// Implemented by the backend gateway.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Notifier surfaces user-facing messages. Implemented by
// notify.Center.
type Notifier interface {
	Show(message string, severity notify.Severity)
}

// Store holds the session state machine: anonymous or authenticated,
// with a loading phase before the first Rehydrate completes.
type Store struct {
	auth     Authenticator
	storage  *Storage
	notifier Notifier
	logger   *slog.Logger

	// loginMu queues Login calls: a second Login waits for the one
	// in flight instead of racing a second identity write. Each
	// caller's credentials still reach the backend; results are
	// never shared between callers.
	loginMu sync.Mutex

	mu            sync.Mutex
	loading       bool
	token         string
	identity      library.Identity
	authenticated bool
}

// NewStore creates a session store. The session is unknown until
// Rehydrate runs; IsLoading reports true until then.
func NewStore(auth Authenticator, storage *Storage, notifier Notifier, logger *slog.Logger) *Store {
	return &Store{
		auth:     auth,
		storage:  storage,
		notifier: notifier,
		logger:   logger,
		loading:  true,
	}
}

// Rehydrate restores the session from persisted storage. Corrupt or
// partial persisted state is cleared and the store stays anonymous;
// the failure is never surfaced to the user. Idempotent.
func (s *Store) Rehydrate() {
	token, identityJSON, err := s.storage.Load()

	var identity library.Identity
	valid := false
	if err == nil && token != "" && identityJSON != "" {
		if jerr := json.Unmarshal([]byte(identityJSON), &identity); jerr == nil && identity.ID != "" {
			valid = true
		} else {
			s.logger.Debug("persisted identity unreadable", "error", jerr)
		}
	}

	s.mu.Lock()
	if valid {
		s.token = token
		s.identity = identity
		s.authenticated = true
	} else {
		s.token = ""
		s.identity = library.Identity{}
		s.authenticated = false
	}
	s.loading = false
	s.mu.Unlock()

	if !valid && (err != nil || token != "" || identityJSON != "") {
		if cerr := s.storage.Clear(); cerr != nil {
			s.logger.Debug("clearing persisted session", "error", cerr)
		}
		s.logger.Debug("persisted session discarded, starting anonymous")
	}
}

// Login exchanges credentials for a token, decodes the identity from
// its payload, and establishes the session. On any failure the prior
// session state is left untouched. Concurrent calls run one at a
// time, in arrival order.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.loginMu.Lock()
	defer s.loginMu.Unlock()
	return s.doLogin(ctx, email, password)
}

func (s *Store) doLogin(ctx context.Context, email, password string) error {
	token, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.logger.Debug("login request failed", "error", err)
		s.notify(loginFailureMessage(err), notify.SeverityError)
		return err
	}

	identity, err := identityFromToken(token, email)
	if err != nil {
		s.logger.Debug("token decode failed", "error", err)
		s.notify("Login failed: the server returned an unreadable token", notify.SeverityError)
		return err
	}

	identityJSON, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.identity = identity
	s.authenticated = true
	s.mu.Unlock()

	if err := s.storage.Save(token, string(identityJSON)); err != nil {
		s.logger.Warn("session established but not persisted", "error", err)
		s.notify("Signed in, but the session will not survive this process", notify.SeverityWarning)
		return nil
	}

	s.notify("Signed in as "+identity.DisplayName(), notify.SeveritySuccess)
	return nil
}

// Logout clears the persisted and in-memory session. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.identity = library.Identity{}
	s.authenticated = false
	s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		s.logger.Warn("clearing persisted session", "error", err)
	}
}

// CurrentIdentity returns a snapshot of the authenticated identity.
func (s *Store) CurrentIdentity() (library.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, s.authenticated
}

// HasRole reports whether the session is populated with the given
// role.
func (s *Store) HasRole(role library.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated && s.identity.Role == role
}

// Token returns the opaque session token for request authorization.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.authenticated
}

// IsLoading reports whether Rehydrate has completed. Consumers must
// treat true as "authorization unknown" and defer redirect decisions.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) notify(message string, severity notify.Severity) {
	if s.notifier != nil {
		s.notifier.Show(message, severity)
	}
}

func loginFailureMessage(err error) string {
	return "Login failed: " + err.Error()
}
