package library

import "fmt"

// Role is the authorization role carried in user records and token claims.
type Role string

const (
	RoleReader Role = "READER"
	RoleAdmin  Role = "ADMIN"
)

// ParseRole normalizes a wire-level role string. Both the current enum
// values and the legacy Spanish spellings used by older backend
// deployments are accepted.
func ParseRole(s string) (Role, error) {
	switch s {
	case "READER", "LECTOR":
		return RoleReader, nil
	case "ADMIN", "ADMINISTRADOR":
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Wire returns the spelling the backend expects in mutation inputs.
func (r Role) Wire() string {
	switch r {
	case RoleAdmin:
		return "ADMINISTRADOR"
	default:
		return "LECTOR"
	}
}
