package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biblio-project/bibctl/internal/library"
)

// stubSession implements Session for testing.
type stubSession struct {
	loading  bool
	identity *library.Identity
}

func (s *stubSession) IsLoading() bool { return s.loading }

func (s *stubSession) CurrentIdentity() (library.Identity, bool) {
	if s.identity == nil {
		return library.Identity{}, false
	}
	return *s.identity, true
}

func (s *stubSession) HasRole(role library.Role) bool {
	return s.identity != nil && s.identity.Role == role
}

func TestRequireAuthenticated_WaitsWhileLoading(t *testing.T) {
	d := RequireAuthenticated(&stubSession{loading: true})
	assert.Equal(t, VerdictWait, d.Verdict)
}

func TestRequireAuthenticated_RedirectsAnonymousToLogin(t *testing.T) {
	d := RequireAuthenticated(&stubSession{})
	assert.Equal(t, VerdictRedirect, d.Verdict)
	assert.Equal(t, TargetLogin, d.Target)
}

func TestRequireAuthenticated_AllowsAnyRole(t *testing.T) {
	for _, role := range []library.Role{library.RoleReader, library.RoleAdmin} {
		d := RequireAuthenticated(&stubSession{identity: &library.Identity{ID: "u1", Role: role}})
		assert.Equal(t, VerdictAllow, d.Verdict)
	}
}

func TestRequireRole_WaitsWhileLoading(t *testing.T) {
	d := RequireRole(&stubSession{loading: true}, library.RoleAdmin)
	assert.Equal(t, VerdictWait, d.Verdict)
}

func TestRequireRole_ReaderNeverReachesAdminView(t *testing.T) {
	reader := &stubSession{identity: &library.Identity{ID: "u1", Role: library.RoleReader}}

	d := RequireRole(reader, library.RoleAdmin)

	assert.Equal(t, VerdictRedirect, d.Verdict)
	assert.Equal(t, TargetHome, d.Target)
}

func TestRequireRole_AnonymousRedirectsHome(t *testing.T) {
	d := RequireRole(&stubSession{}, library.RoleAdmin)
	assert.Equal(t, VerdictRedirect, d.Verdict)
	assert.Equal(t, TargetHome, d.Target)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	admin := &stubSession{identity: &library.Identity{ID: "u2", Role: library.RoleAdmin}}
	d := RequireRole(admin, library.RoleAdmin)
	assert.Equal(t, VerdictAllow, d.Verdict)
}
