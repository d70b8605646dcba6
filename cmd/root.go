// Package cmd contains all CLI commands for bibctl
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/biblio-project/bibctl/internal/backend"
	"github.com/biblio-project/bibctl/internal/config"
	"github.com/biblio-project/bibctl/internal/guard"
	"github.com/biblio-project/bibctl/internal/library"
	"github.com/biblio-project/bibctl/internal/notify"
	"github.com/biblio-project/bibctl/internal/output"
	"github.com/biblio-project/bibctl/internal/session"
)

var (
	cfgFile   string
	verbose   bool
	quiet     bool
	colorFlag string

	cfg    *config.Config
	logger *slog.Logger

	notifier *notify.Center
	store    *session.Store
	client   *backend.Client

	version = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bibctl",
	Short: "Library catalog CLI",
	Long: `bibctl is a command line client for a library management backend.

It signs in against the backend's GraphQL API, keeps the session on
disk between invocations, and exposes the catalog, loan, and review
workflows from the terminal.

Example usage:
  bibctl login ana@biblio.dev       # Sign in and persist the session
  bibctl catalog list               # Browse the catalog
  bibctl loans borrow <material-id> # Borrow a material
  bibctl whoami                     # Show the active session`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipsSession(cmd) {
			return initConfig()
		}
		if err := initConfig(); err != nil {
			return err
		}
		return initApp()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .bibctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "colorize output (auto, always, never)")
}

// skipsSession reports whether a command runs without the backend
// gateway and session store. Keeps version and completion usable when
// no backend is configured.
func skipsSession(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "completion", "help", "__complete", "__completeNoDesc":
		return true
	}
	return false
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err = config.Load(cfgFile)
	if err != nil {
		return &output.CLIError{
			Summary:  "configuration is invalid",
			Detail:   err.Error(),
			ExitCode: output.ExitConfig,
		}
	}

	if cfg.Logging.Level == "debug" || verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	logger.Debug("configuration loaded",
		"endpoint", cfg.Backend.Endpoint,
		"timeout", cfg.Backend.Timeout,
	)

	return nil
}

// storeTokens adapts the session store to the gateway's token source.
// It reads the package-level store so the gateway can be constructed
// before the store exists.
type storeTokens struct{}

func (storeTokens) Token() (string, bool) {
	if store == nil {
		return "", false
	}
	return store.Token()
}

// initApp wires the gateway, notification center, and session store,
// then restores any persisted session.
func initApp() error {
	storagePath := cfg.Session.StoragePath
	if storagePath == "" {
		p, err := session.DefaultStoragePath()
		if err != nil {
			return &output.CLIError{
				Summary:  "cannot locate the session storage directory",
				Detail:   err.Error(),
				ExitCode: output.ExitConfig,
			}
		}
		storagePath = p
	}

	client = backend.NewClient(backend.Config{
		Endpoint:          cfg.Backend.Endpoint,
		Timeout:           cfg.Backend.Timeout,
		RequestsPerSecond: cfg.Backend.RequestsPerSecond,
		Burst:             cfg.Backend.Burst,
	}, storeTokens{}, logger)

	notifier = notify.NewCenter(func(n notify.Notification) {
		newPrinter().Notify(n)
	})

	store = session.NewStore(client, session.NewStorage(storagePath), notifier, logger)
	store.Rehydrate()

	return nil
}

// newPrinter builds a printer from the global output flags and config.
func newPrinter() *output.Printer {
	mode, err := output.ParseColorMode(colorFlag)
	if err != nil {
		mode = output.ColorAuto
	}
	configColors := true
	if cfg != nil {
		configColors = cfg.Output.Colors
	}
	return output.NewPrinterWithOptions(output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: configColors,
		Quiet:        quiet,
	})
}

// ensureAuthenticated gates a command on a signed-in session and
// returns the identity snapshot.
func ensureAuthenticated() (library.Identity, error) {
	switch d := guard.RequireAuthenticated(store); d.Verdict {
	case guard.VerdictAllow:
		identity, _ := store.CurrentIdentity()
		return identity, nil
	case guard.VerdictWait:
		return library.Identity{}, &output.CLIError{
			Summary:  "session state is not available yet",
			ExitCode: output.ExitAuthError,
		}
	default:
		return library.Identity{}, &output.CLIError{
			Summary:    "you are not signed in",
			Suggestion: "run 'bibctl login' first",
			ExitCode:   output.ExitAuthError,
		}
	}
}

// ensureAdmin gates a command on the administrator role.
func ensureAdmin() (library.Identity, error) {
	identity, err := ensureAuthenticated()
	if err != nil {
		return library.Identity{}, err
	}
	if d := guard.RequireRole(store, library.RoleAdmin); d.Verdict != guard.VerdictAllow {
		return library.Identity{}, &output.CLIError{
			Summary:    "this command requires the administrator role",
			Suggestion: "ask a library administrator to run it, or sign in with an administrator account",
			ExitCode:   output.ExitForbidden,
		}
	}
	return identity, nil
}
