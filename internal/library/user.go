package library

import "encoding/json"

// User is a library member as the backend reports it.
type User struct {
	ID           string `json:"id"`
	GivenName    string `json:"nombre"`
	FamilyName   string `json:"apellido"`
	Email        string `json:"email"`
	Role         Role   `json:"-"`
	RegisteredAt string `json:"fechaRegistro"`

	Loans   []Loan   `json:"prestamos,omitempty"`
	Reviews []Review `json:"resenas,omitempty"`
}

// UnmarshalJSON normalizes the wire role spelling.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		Role string `json:"rol"`
		*alias
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Role != "" {
		role, err := ParseRole(aux.Role)
		if err != nil {
			return err
		}
		u.Role = role
	}
	return nil
}

// RegistrationInput is the payload for self-registration. New accounts
// are always created as readers.
type RegistrationInput struct {
	GivenName  string `json:"nombre" validate:"required"`
	FamilyName string `json:"apellido" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"rol"`
}
