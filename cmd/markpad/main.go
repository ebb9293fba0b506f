// Command markpad is the entry point for the Markpad CLI and TUI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/markpad-labs/markpad-cli/internal/adapters/driven/config/file"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driven/export"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driven/storage/diskv"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driven/storage/fallback"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driven/storage/sqlite"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driven/watch"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/cli"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driven"
	"github.com/markpad-labs/markpad-cli/internal/core/services"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dataDir := os.Getenv("MARKPAD_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".markpad", "data")
	}

	store, err := fallback.Open(dataDir,
		func(dir string) (driven.DocumentStore, error) { return sqlite.NewStore(dir) },
		func(dir string) (driven.DocumentStore, error) { return diskv.NewStore(dir) },
	)
	if err != nil {
		return fmt.Errorf("opening document store: %w", err)
	}

	settings, err := file.NewSettingsStore(os.Getenv("MARKPAD_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("opening settings store: %w", err)
	}

	repo := services.NewDocumentRepository(store)
	session := services.NewSession(
		repo,
		settings,
		watch.NewWatcher(dataDir),
		services.DefaultAutosaveDelay,
	)

	actions := services.NewActions(
		session,
		export.NewMarkdownRenderer(),
		export.NewFileExporter(""),
	)

	cli.SetServices(cli.Services{
		Session:    session,
		Repository: repo,
		Palette:    services.NewPalette(session, actions, 0),
		Actions:    actions,
	})
	cli.SetVersion(version)

	return cli.Execute()
}
