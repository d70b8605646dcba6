package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/biblio-project/bibctl/internal/library"
	"github.com/biblio-project/bibctl/internal/output"
	"github.com/biblio-project/bibctl/internal/validate"
)

var loansCmd = &cobra.Command{
	Use:   "loans",
	Short: "Manage loans",
}

var loansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your loans",
	Long: `List the loans of the signed-in user.

Administrators can pass --all to list every loan in the system.

Examples:
  bibctl loans list
  bibctl loans list --all      # Administrators only
  bibctl loans list --json`,
	Args: cobra.NoArgs,
	RunE: runLoansList,
}

var loansBorrowCmd = &cobra.Command{
	Use:   "borrow <material-id>",
	Short: "Borrow a material",
	Long: `Request a loan for a material. The due date defaults to 14 days
from now.

Examples:
  bibctl loans borrow 42
  bibctl loans borrow 42 --due 2026-09-30`,
	Args: cobra.ExactArgs(1),
	RunE: runLoansBorrow,
}

var loansReturnCmd = &cobra.Command{
	Use:   "return <loan-id>",
	Short: "Return a borrowed material",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoansReturn,
}

func init() {
	rootCmd.AddCommand(loansCmd)
	loansCmd.AddCommand(loansListCmd)
	loansCmd.AddCommand(loansBorrowCmd)
	loansCmd.AddCommand(loansReturnCmd)

	loansListCmd.Flags().Bool("all", false, "list every loan (administrators only)")
	loansListCmd.Flags().Bool("json", false, "output as JSON")

	loansBorrowCmd.Flags().String("due", "", "expected return date (YYYY-MM-DD, default 14 days from now)")
}

func runLoansList(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	var loans []library.Loan
	if all {
		if _, err := ensureAdmin(); err != nil {
			return err
		}
		var err error
		loans, err = client.Loans(cmd.Context())
		if err != nil {
			return output.FromBackendError(err)
		}
	} else {
		identity, err := ensureAuthenticated()
		if err != nil {
			return err
		}
		loans, err = client.LoansByUser(cmd.Context(), identity.ID)
		if err != nil {
			return output.FromBackendError(err)
		}
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd, loans)
	}

	printer := newPrinter()
	if len(loans) == 0 {
		printer.Info("No loans")
		return nil
	}

	headers := []string{"ID", "MATERIAL", "BORROWED", "DUE", "STATUS", "FINE"}
	if all {
		headers = []string{"ID", "USER", "MATERIAL", "BORROWED", "DUE", "STATUS", "FINE"}
	}
	table := output.NewTableWithWriter(cmd.OutOrStdout(), headers)
	for _, l := range loans {
		fine := ""
		if l.Fine > 0 {
			fine = fmt.Sprintf("%.2f", l.Fine)
		}
		row := []string{l.ID, l.Material.Title, l.LoanDate, l.DueDate, printer.LoanBadge(l.Status), fine}
		if all {
			user := ""
			if l.User != nil {
				user = l.User.Email
			}
			row = []string{l.ID, user, l.Material.Title, l.LoanDate, l.DueDate, printer.LoanBadge(l.Status), fine}
		}
		table.AddRow(row)
	}
	table.Render()
	return nil
}

func runLoansBorrow(cmd *cobra.Command, args []string) error {
	identity, err := ensureAuthenticated()
	if err != nil {
		return err
	}

	due, _ := cmd.Flags().GetString("due")
	dueDate := time.Now().AddDate(0, 0, 14)
	if due != "" {
		dueDate, err = time.Parse("2006-01-02", due)
		if err != nil {
			return &output.CLIError{
				Summary:    fmt.Sprintf("invalid due date: %s", due),
				Suggestion: "use the YYYY-MM-DD format, e.g. --due 2026-09-30",
				ExitCode:   output.ExitUsageError,
			}
		}
		if dueDate.Before(time.Now()) {
			return &output.CLIError{
				Summary:  "the due date is in the past",
				ExitCode: output.ExitUsageError,
			}
		}
	}

	input := library.LoanInput{
		UserID:     identity.ID,
		MaterialID: args[0],
		DueDate:    dueDate.UnixMilli(),
	}
	if err := validate.New().Struct(input); err != nil {
		return &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	loan, err := client.CreateLoan(cmd.Context(), input)
	if err != nil {
		return output.FromBackendError(err)
	}

	printer := newPrinter()
	printer.Success("Borrowed %q, due %s", loan.Material.Title, loan.DueDate)
	printer.PrintHints("loans borrow")
	return nil
}

func runLoansReturn(cmd *cobra.Command, args []string) error {
	if _, err := ensureAuthenticated(); err != nil {
		return err
	}

	loan, err := client.RegisterReturn(cmd.Context(), args[0])
	if err != nil {
		return output.FromBackendError(err)
	}

	printer := newPrinter()
	printer.Success("Returned %q", loan.Material.Title)
	if loan.Fine > 0 {
		printer.Warning("A fine of %.2f was applied for the late return", loan.Fine)
	}
	printer.PrintHints("loans return")
	return nil
}
