// Package main is the entry point for the bibctl CLI
package main

import (
	"errors"
	"os"

	"github.com/biblio-project/bibctl/cmd"
	"github.com/biblio-project/bibctl/internal/output"
)

// Set at build time via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cmd.SetVersion(version)
	cmd.SetBuildInfo(commit, buildTime)

	if err := cmd.Execute(); err != nil {
		printer := output.NewPrinter(output.ResolveColors(output.ColorAuto, true))

		var cliErr *output.CLIError
		if errors.As(err, &cliErr) {
			printer.FormatError(cliErr)
			os.Exit(cliErr.ExitCode)
		}

		printer.FormatError(&output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitGeneral,
		})
		os.Exit(output.ExitGeneral)
	}
}
