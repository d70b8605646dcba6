package cmd

import (
	"github.com/spf13/cobra"

	"github.com/biblio-project/bibctl/internal/library"
	"github.com/biblio-project/bibctl/internal/output"
	"github.com/biblio-project/bibctl/internal/validate"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new reader account",
	Long: `Register a new account with the library backend.

New accounts are created with the reader role. Sign in afterwards with
'bibctl login'.

Example:
  bibctl register --given-name Ana --family-name García \
    --email ana@biblio.dev --password <password>`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().String("given-name", "", "given name")
	registerCmd.Flags().String("family-name", "", "family name")
	registerCmd.Flags().StringP("email", "e", "", "account email")
	registerCmd.Flags().StringP("password", "p", "", "account password (prefer BIBCTL_PASSWORD or the prompt)")

	_ = registerCmd.MarkFlagRequired("given-name")
	_ = registerCmd.MarkFlagRequired("family-name")
	_ = registerCmd.MarkFlagRequired("email")
}

func runRegister(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	givenName, _ := cmd.Flags().GetString("given-name")
	familyName, _ := cmd.Flags().GetString("family-name")
	email, _ := cmd.Flags().GetString("email")

	password, err := resolvePassword(cmd)
	if err != nil {
		return err
	}

	input := library.RegistrationInput{
		GivenName:  givenName,
		FamilyName: familyName,
		Email:      email,
		Password:   password,
		Role:       library.RoleReader.Wire(),
	}
	if err := validate.New().Struct(input); err != nil {
		return &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	user, err := client.RegisterUser(cmd.Context(), input)
	if err != nil {
		return output.FromBackendError(err)
	}

	printer.Success("Account created for %s (%s)", user.GivenName+" "+user.FamilyName, user.Email)
	printer.PrintHints("register")
	return nil
}
