// Package tui provides the interactive terminal editor for markpad.
// It implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"errors"

	"github.com/markpad-labs/markpad-cli/internal/core/ports/driving"
)

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("tui: session service is required")

// ErrMissingPaletteService is returned when the palette service is not provided.
var ErrMissingPaletteService = errors.New("tui: palette service is required")

// ErrMissingActionService is returned when the action service is not provided.
var ErrMissingActionService = errors.New("tui: action service is required")

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session owns the current document and autosave lifecycle.
	Session driving.SessionService

	// Palette maintains the merged command/document index.
	Palette driving.PaletteService

	// Actions provides export and clipboard commands.
	Actions driving.ActionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	session driving.SessionService,
	palette driving.PaletteService,
	actions driving.ActionService,
) *Ports {
	return &Ports{
		Session: session,
		Palette: palette,
		Actions: actions,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Palette == nil {
		return ErrMissingPaletteService
	}
	if p.Actions == nil {
		return ErrMissingActionService
	}
	return nil
}
