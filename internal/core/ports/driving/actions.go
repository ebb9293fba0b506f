package driving

import "context"

// ActionService provides side-effecting actions bound to static
// palette commands and keyboard shortcuts.
type ActionService interface {
	// ExportCurrent renders the current document and writes it to an
	// artifact named from its title. Returns the artifact path.
	ExportCurrent(ctx context.Context) (string, error)

	// CopyTitle copies the current document's title to the system
	// clipboard.
	CopyTitle(ctx context.Context) error
}
