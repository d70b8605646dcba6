package cmd

import (
	"github.com/spf13/cobra"

	"github.com/biblio-project/bibctl/internal/output"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session",
	Long: `Display the identity of the signed-in user.

Examples:
  bibctl whoami                # Show identity
  bibctl whoami --json         # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().Bool("json", false, "output as JSON")
}

func runWhoami(cmd *cobra.Command, args []string) error {
	identity, err := ensureAuthenticated()
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd, identity)
	}

	printer := newPrinter()
	printer.Header("Session")

	table := output.NewTableWithWriter(cmd.OutOrStdout(), []string{"KEY", "VALUE"})
	table.AddRow([]string{"name", printer.Bold(identity.DisplayName())})
	table.AddRow([]string{"email", identity.Email})
	table.AddRow([]string{"role", string(identity.Role)})
	table.AddRow([]string{"id", identity.ID})
	table.Render()

	printer.PrintHints("whoami")
	return nil
}
