package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biblio-project/bibctl/internal/output"
	"github.com/biblio-project/bibctl/internal/session"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Display the configuration bibctl resolved from its config file,
environment variables, and defaults.

Examples:
  bibctl config                # Show all config
  bibctl config --json         # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().Bool("json", false, "output as JSON")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd, cfg)
	}

	printer := newPrinter()
	printer.Header("Current Configuration")

	storagePath := cfg.Session.StoragePath
	if storagePath == "" {
		if p, err := session.DefaultStoragePath(); err == nil {
			storagePath = p
		}
	}

	table := output.NewTableWithWriter(cmd.OutOrStdout(), []string{"KEY", "VALUE"})
	table.AddRow([]string{"backend.endpoint", cfg.Backend.Endpoint})
	table.AddRow([]string{"backend.timeout", cfg.Backend.Timeout.String()})
	table.AddRow([]string{"backend.requests_per_second", fmt.Sprintf("%v", cfg.Backend.RequestsPerSecond)})
	table.AddRow([]string{"backend.burst", fmt.Sprintf("%d", cfg.Backend.Burst)})
	table.AddRow([]string{"session.storage_path", storagePath})
	table.AddRow([]string{"logging.level", cfg.Logging.Level})
	table.AddRow([]string{"output.colors", fmt.Sprintf("%v", cfg.Output.Colors)})
	table.Render()

	return nil
}
