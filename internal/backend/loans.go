package backend

import (
	"context"

	"github.com/machinebox/graphql"

	"github.com/biblio-project/bibctl/internal/library"
)

// Loans lists every loan in the system. Admin only, enforced by the
// backend.
func (c *Client) Loans(ctx context.Context) ([]library.Loan, error) {
	req := graphql.NewRequest(loansQuery)
	var resp struct {
		Loans []library.Loan `json:"prestamos"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.Loans, nil
}

// LoansByUser lists one user's loans.
func (c *Client) LoansByUser(ctx context.Context, userID string) ([]library.Loan, error) {
	req := graphql.NewRequest(loansByUserQuery)
	req.Var("usuarioId", userID)
	var resp struct {
		Loans []library.Loan `json:"prestamosPorUsuario"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.Loans, nil
}

// CreateLoan requests a loan. Availability and state transitions are
// backend business rules.
func (c *Client) CreateLoan(ctx context.Context, input library.LoanInput) (library.Loan, error) {
	req := graphql.NewRequest(createLoanMutation)
	req.Var("prestamo", input)
	var resp struct {
		Loan library.Loan `json:"crearPrestamo"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return library.Loan{}, err
	}
	return resp.Loan, nil
}

// RegisterReturn marks a loan returned; the backend computes any
// fine.
func (c *Client) RegisterReturn(ctx context.Context, loanID string) (library.Loan, error) {
	req := graphql.NewRequest(registerReturnMutation)
	req.Var("prestamoId", loanID)
	var resp struct {
		Loan library.Loan `json:"registrarDevolucion"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return library.Loan{}, err
	}
	return resp.Loan, nil
}
