package library

// Identity is the client-side cache of the claims extracted from a
// signed token. It is derived, never authoritative; the backend owns
// the user record.
type Identity struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
}

// DisplayName returns the name shown in greetings and listings.
func (i Identity) DisplayName() string {
	if i.FamilyName == "" {
		return i.GivenName
	}
	return i.GivenName + " " + i.FamilyName
}
