package backend

import (
	"context"

	"github.com/machinebox/graphql"

	"github.com/biblio-project/bibctl/internal/library"
)

// Users lists all registered members. Admin only, enforced by the
// backend.
func (c *Client) Users(ctx context.Context) ([]library.User, error) {
	req := graphql.NewRequest(usersQuery)
	var resp struct {
		Users []library.User `json:"usuarios"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// User fetches one member with their loans and reviews.
func (c *Client) User(ctx context.Context, id string) (library.User, error) {
	req := graphql.NewRequest(userQuery)
	req.Var("id", id)
	var resp struct {
		User library.User `json:"usuario"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return library.User{}, err
	}
	return resp.User, nil
}
