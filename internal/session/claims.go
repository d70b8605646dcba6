package session

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/biblio-project/bibctl/internal/library"
)

// tokenClaims is the JSON payload embedded in the token's middle
// segment. Legacy deployments emit Spanish claim names; both are
// accepted.
type tokenClaims struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`

	LegacyRole       string `json:"rol"`
	LegacyGivenName  string `json:"nombre"`
	LegacyFamilyName string `json:"apellido"`

	jwt.RegisteredClaims
}

// identityFromToken decodes the token payload without verifying the
// signature (trust is delegated to transport and backend) and builds
// the Identity. loginEmail supplies the given-name fallback when the
// payload omits display names.
func identityFromToken(token, loginEmail string) (library.Identity, error) {
	var claims tokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return library.Identity{}, fmt.Errorf("%w: %w", library.ErrMalformedToken, err)
	}

	roleStr := claims.Role
	if roleStr == "" {
		roleStr = claims.LegacyRole
	}
	if claims.ID == "" || claims.Email == "" || roleStr == "" {
		return library.Identity{}, fmt.Errorf("%w: payload missing required claims", library.ErrMalformedToken)
	}

	role, err := library.ParseRole(roleStr)
	if err != nil {
		return library.Identity{}, fmt.Errorf("%w: %w", library.ErrMalformedToken, err)
	}

	givenName := claims.GivenName
	if givenName == "" {
		givenName = claims.LegacyGivenName
	}
	if givenName == "" {
		givenName = emailLocalPart(loginEmail)
	}

	familyName := claims.FamilyName
	if familyName == "" {
		familyName = claims.LegacyFamilyName
	}

	return library.Identity{
		ID:         claims.ID,
		Email:      claims.Email,
		Role:       role,
		GivenName:  givenName,
		FamilyName: familyName,
	}, nil
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
