package session

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblio-project/bibctl/internal/library"
)

// makeToken builds a structurally valid token around the given
// payload. The signature segment is junk; it is never verified
// client-side.
func makeToken(t *testing.T, payload map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".c2lnbmF0dXJl"
}

func TestIdentityFromToken_FullClaims(t *testing.T) {
	token := makeToken(t, map[string]any{
		"id":         "u9",
		"email":      "maria@x.com",
		"role":       "ADMIN",
		"givenName":  "Maria",
		"familyName": "Lopez",
	})

	identity, err := identityFromToken(token, "maria@x.com")

	require.NoError(t, err)
	assert.Equal(t, "u9", identity.ID)
	assert.Equal(t, library.RoleAdmin, identity.Role)
	assert.Equal(t, "Maria", identity.GivenName)
	assert.Equal(t, "Lopez", identity.FamilyName)
}

func TestIdentityFromToken_NameFallback(t *testing.T) {
	// Payload omits display names: given name falls back to the
	// local-part of the submitted email, family name to empty.
	token := makeToken(t, map[string]any{
		"id":    "u1",
		"email": "ana@x.com",
		"role":  "READER",
	})

	identity, err := identityFromToken(token, "ana@x.com")

	require.NoError(t, err)
	assert.Equal(t, library.Identity{
		ID:        "u1",
		Email:     "ana@x.com",
		Role:      library.RoleReader,
		GivenName: "ana",
	}, identity)
}

func TestIdentityFromToken_LegacyClaimNames(t *testing.T) {
	token := makeToken(t, map[string]any{
		"id":       "u2",
		"email":    "pedro@x.com",
		"rol":      "ADMINISTRADOR",
		"nombre":   "Pedro",
		"apellido": "Ruiz",
	})

	identity, err := identityFromToken(token, "pedro@x.com")

	require.NoError(t, err)
	assert.Equal(t, library.RoleAdmin, identity.Role)
	assert.Equal(t, "Pedro", identity.GivenName)
	assert.Equal(t, "Ruiz", identity.FamilyName)
}

func TestIdentityFromToken_WrongSegmentCount(t *testing.T) {
	_, err := identityFromToken("only.two", "a@x.com")
	assert.ErrorIs(t, err, library.ErrMalformedToken)
}

func TestIdentityFromToken_PayloadNotJSON(t *testing.T) {
	notJSON := base64.RawURLEncoding.EncodeToString([]byte("this is not json"))
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256"}`))

	_, err := identityFromToken(header+"."+notJSON+".c2ln", "a@x.com")
	assert.ErrorIs(t, err, library.ErrMalformedToken)
}

func TestIdentityFromToken_MissingRequiredClaims(t *testing.T) {
	token := makeToken(t, map[string]any{"email": "a@x.com", "role": "READER"})

	_, err := identityFromToken(token, "a@x.com")
	assert.ErrorIs(t, err, library.ErrMalformedToken)
}

func TestIdentityFromToken_UnknownRole(t *testing.T) {
	token := makeToken(t, map[string]any{"id": "u3", "email": "a@x.com", "role": "SUPERUSER"})

	_, err := identityFromToken(token, "a@x.com")
	assert.ErrorIs(t, err, library.ErrMalformedToken)
}

func TestEmailLocalPart(t *testing.T) {
	assert.Equal(t, "ana", emailLocalPart("ana@x.com"))
	assert.Equal(t, "noatsign", emailLocalPart("noatsign"))
}
