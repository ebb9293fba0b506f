package services

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/markpad-labs/markpad-cli/internal/core/domain"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driven"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driving"
)

// Ensure Actions implements the interface.
var _ driving.ActionService = (*Actions)(nil)

// clipboardWriteAll is swapped out in tests; CI runners have no
// display server.
var clipboardWriteAll = clipboard.WriteAll

// Actions provides the side-effecting commands bound to the static
// palette entries and keyboard shortcuts.
type Actions struct {
	session  driving.SessionService
	renderer driven.Renderer
	exporter driven.Exporter
}

// NewActions creates a new action service.
func NewActions(
	session driving.SessionService,
	renderer driven.Renderer,
	exporter driven.Exporter,
) *Actions {
	return &Actions{
		session:  session,
		renderer: renderer,
		exporter: exporter,
	}
}

// ExportCurrent renders the current document and writes it to an
// artifact named from its title.
func (a *Actions) ExportCurrent(ctx context.Context) (string, error) {
	doc, ok := a.session.Current()
	if !ok {
		return "", domain.ErrNoCurrentDocument
	}

	rendered, err := a.renderer.Render(doc.Content)
	if err != nil {
		return "", fmt.Errorf("rendering document %s: %w", doc.ID, err)
	}

	path, err := a.exporter.Export(doc.Title, rendered)
	if err != nil {
		return "", fmt.Errorf("exporting document %s: %w", doc.ID, err)
	}

	return path, nil
}

// CopyTitle copies the current document's title to the system
// clipboard.
func (a *Actions) CopyTitle(_ context.Context) error {
	doc, ok := a.session.Current()
	if !ok {
		return domain.ErrNoCurrentDocument
	}

	if err := clipboardWriteAll(doc.Title); err != nil {
		return fmt.Errorf("copying title to clipboard: %w", err)
	}

	return nil
}
