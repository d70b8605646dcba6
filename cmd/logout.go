package cmd

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the persisted session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := newPrinter()

		_, wasSignedIn := store.CurrentIdentity()
		store.Logout()

		if wasSignedIn {
			printer.Success("Signed out")
		} else {
			printer.Info("No active session")
		}
		printer.PrintHints("logout")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
