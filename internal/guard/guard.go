// Package guard implements the authorization gate: pure predicates
// over a session snapshot that decide whether a protected view is
// reachable or must redirect. Keeping the decisions free of any UI
// concern lets the routing layer (here, command preambles) render
// them however it wants.
package guard

import "github.com/biblio-project/bibctl/internal/library"

// Session is the read-only view of the session store the gate needs.
type Session interface {
	IsLoading() bool
	CurrentIdentity() (library.Identity, bool)
	HasRole(library.Role) bool
}

// Target names a navigation destination.
type Target string

const (
	TargetLogin Target = "login"
	TargetHome  Target = "home"
)

// Verdict is the outcome kind of a guard evaluation.
type Verdict int

const (
	// VerdictWait means the session is still loading; render a
	// neutral state and do not redirect yet.
	VerdictWait Verdict = iota
	VerdictAllow
	VerdictRedirect
)

// Decision is the result of evaluating a guard.
type Decision struct {
	Verdict Verdict
	Target  Target
}

func wait() Decision  { return Decision{Verdict: VerdictWait} }
func allow() Decision { return Decision{Verdict: VerdictAllow} }
func redirect(t Target) Decision {
	return Decision{Verdict: VerdictRedirect, Target: t}
}

// RequireAuthenticated allows any populated session and redirects
// anonymous callers to the login view.
func RequireAuthenticated(s Session) Decision {
	if s.IsLoading() {
		return wait()
	}
	if _, ok := s.CurrentIdentity(); !ok {
		return redirect(TargetLogin)
	}
	return allow()
}

// RequireRole allows only sessions holding the given role; everyone
// else is sent to the home view.
func RequireRole(s Session, role library.Role) Decision {
	if s.IsLoading() {
		return wait()
	}
	if !s.HasRole(role) {
		return redirect(TargetHome)
	}
	return allow()
}
