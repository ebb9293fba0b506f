package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui"
)

// tuiCmd launches the interactive editor. The root command aliases it,
// so `markpad` and `markpad tui` behave identically.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive editor",
	Long: `Launch the interactive terminal editor for Markpad.

Controls:
  Ctrl+K - Command palette
  Ctrl+S - Save now
  Ctrl+N - New document
  Ctrl+E - Export current document
  Tab    - Toggle sidebar focus
  Ctrl+C - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Recover to get stack traces out of the alt screen
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(sessionService, paletteService, actionService)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
