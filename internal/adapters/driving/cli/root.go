// Package cli provides the cobra command surface over the session and
// repository services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/markpad-labs/markpad-cli/internal/core/ports/driving"
	"github.com/markpad-labs/markpad-cli/internal/logger"
)

// version is set by the composition root at startup.
var version = "dev"

// verbose enables debug logging.
var verbose bool

// Services injected by the composition root before Execute.
var (
	sessionService    driving.SessionService
	repositoryService driving.RepositoryService
	paletteService    driving.PaletteService
	actionService     driving.ActionService
)

var rootCmd = &cobra.Command{
	Use:   "markpad",
	Short: "A markdown document editor for the terminal",
	Long: `Markpad is a local-first markdown document editor.

Documents live in a local store with automatic fallback between storage
tiers, autosave with title derivation, and a command palette for quick
navigation. Run without a subcommand to launch the interactive editor.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

// Services bundles everything the commands need.
type Services struct {
	Session    driving.SessionService
	Repository driving.RepositoryService
	Palette    driving.PaletteService
	Actions    driving.ActionService
}

// SetServices injects the service implementations.
func SetServices(s Services) {
	sessionService = s.Session
	repositoryService = s.Repository
	paletteService = s.Palette
	actionService = s.Actions
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
