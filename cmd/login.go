package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/biblio-project/bibctl/internal/output"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in to the library backend",
	Long: `Authenticate against the library backend and persist the session.

The password is read from the --password flag, the BIBCTL_PASSWORD
environment variable, or an interactive prompt, in that order.

Examples:
  bibctl login ana@biblio.dev            # Prompt for the password
  bibctl login --email ana@biblio.dev    # Same, via flag
  BIBCTL_PASSWORD=... bibctl login ana@biblio.dev`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("email", "e", "", "account email")
	loginCmd.Flags().StringP("password", "p", "", "account password (prefer the prompt or BIBCTL_PASSWORD)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	email, _ := cmd.Flags().GetString("email")
	if len(args) > 0 {
		email = args[0]
	}
	if email == "" {
		return &output.CLIError{
			Summary:    "no email given",
			Suggestion: "run 'bibctl login <email>' or pass --email",
			ExitCode:   output.ExitUsageError,
		}
	}

	password, err := resolvePassword(cmd)
	if err != nil {
		return err
	}

	if identity, ok := store.CurrentIdentity(); ok && identity.Email == email {
		printer.Info("Already signed in as %s", identity.DisplayName())
		return nil
	}

	if err := store.Login(cmd.Context(), email, password); err != nil {
		return output.FromBackendError(err)
	}

	printer.PrintHints("login")
	return nil
}

// resolvePassword reads the password from the flag, the environment,
// or a hidden terminal prompt.
func resolvePassword(cmd *cobra.Command) (string, error) {
	if password, _ := cmd.Flags().GetString("password"); password != "" {
		return password, nil
	}
	if password := os.Getenv("BIBCTL_PASSWORD"); password != "" {
		return password, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	// Not a terminal: read one line from stdin (piped input).
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
