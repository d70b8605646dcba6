package backend

import (
	"context"

	"github.com/machinebox/graphql"

	"github.com/biblio-project/bibctl/internal/library"
)

// Reviews lists every review in the system.
func (c *Client) Reviews(ctx context.Context) ([]library.Review, error) {
	req := graphql.NewRequest(reviewsQuery)
	var resp struct {
		Reviews []library.Review `json:"resenas"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.Reviews, nil
}

// ReviewsByMaterial lists reviews for one catalog entry.
func (c *Client) ReviewsByMaterial(ctx context.Context, materialID string) ([]library.Review, error) {
	req := graphql.NewRequest(reviewsByMaterialQuery)
	req.Var("materialId", materialID)
	var resp struct {
		Reviews []library.Review `json:"resenasPorMaterial"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.Reviews, nil
}

// CreateReview publishes a review.
func (c *Client) CreateReview(ctx context.Context, input library.ReviewInput) (library.Review, error) {
	req := graphql.NewRequest(createReviewMutation)
	req.Var("resena", input)
	var resp struct {
		Review library.Review `json:"crearResena"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return library.Review{}, err
	}
	return resp.Review, nil
}

// UpdateReview edits an existing review.
func (c *Client) UpdateReview(ctx context.Context, id string, input library.ReviewInput) (library.Review, error) {
	req := graphql.NewRequest(updateReviewMutation)
	req.Var("id", id)
	req.Var("resena", input)
	var resp struct {
		Review library.Review `json:"actualizarResena"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return library.Review{}, err
	}
	return resp.Review, nil
}

// DeleteReview removes a review.
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	req := graphql.NewRequest(deleteReviewMutation)
	req.Var("id", id)
	var resp struct {
		Deleted bool `json:"eliminarResena"`
	}
	return c.run(ctx, req, &resp)
}
