package library

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"READER", RoleReader},
		{"LECTOR", RoleReader},
		{"ADMIN", RoleAdmin},
		{"ADMINISTRADOR", RoleAdmin},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseRole("SUPERUSER")
	assert.Error(t, err)
}

func TestRoleWire(t *testing.T) {
	assert.Equal(t, "ADMINISTRADOR", RoleAdmin.Wire())
	assert.Equal(t, "LECTOR", RoleReader.Wire())
}

func TestResolveKind(t *testing.T) {
	book := Material{ISBN: "978-84-376-0494-7"}
	book.ResolveKind()
	assert.Equal(t, KindBook, book.Kind)

	magazine := Material{ISSN: "1130-4081"}
	magazine.ResolveKind()
	assert.Equal(t, KindMagazine, magazine.Kind)

	digital := Material{URL: "https://biblio.dev/docs/guia.pdf"}
	digital.ResolveKind()
	assert.Equal(t, KindDigital, digital.Kind)

	unknown := Material{Title: "sin discriminante"}
	unknown.ResolveKind()
	assert.Empty(t, unknown.Kind)
}

func TestUserUnmarshal_NormalizesRole(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"id":"u1","nombre":"Ana","apellido":"García","email":"ana@biblio.dev","rol":"ADMINISTRADOR"}`), &u)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.Equal(t, "Ana", u.GivenName)
}

func TestUserUnmarshal_UnknownRole(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"id":"u1","rol":"SUPERUSER"}`), &u)
	assert.Error(t, err)
}

func TestIdentityDisplayName(t *testing.T) {
	assert.Equal(t, "Ana García", Identity{GivenName: "Ana", FamilyName: "García"}.DisplayName())
	assert.Equal(t, "ana", Identity{GivenName: "ana"}.DisplayName())
}
