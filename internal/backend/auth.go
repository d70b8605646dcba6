package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/machinebox/graphql"

	"github.com/biblio-project/bibctl/internal/library"
)

// Login exchanges credentials for an opaque signed token. A GraphQL
// error here means the backend rejected the credentials.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	req := graphql.NewRequest(loginMutation)
	req.Var("email", email)
	req.Var("password", password)

	var resp struct {
		Login string `json:"login"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			return "", fmt.Errorf("%w: %s", library.ErrAuthRejected, rejected.Reason)
		}
		return "", err
	}
	if resp.Login == "" {
		return "", fmt.Errorf("%w: empty token", library.ErrAuthRejected)
	}
	return resp.Login, nil
}

// RegisterUser creates a reader account.
func (c *Client) RegisterUser(ctx context.Context, input library.RegistrationInput) (library.User, error) {
	req := graphql.NewRequest(registerUserMutation)
	req.Var("usuario", input)

	var resp struct {
		User library.User `json:"registrarUsuario"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return library.User{}, err
	}
	return resp.User, nil
}
