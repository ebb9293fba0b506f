package driving

import (
	"context"

	"github.com/markpad-labs/markpad-cli/internal/core/domain"
)

// RepositoryService is the typed CRUD facade over document storage.
// It mirrors the storage contract one-to-one so callers never depend
// on which storage tier is active.
type RepositoryService interface {
	// Save stores or updates a document.
	Save(ctx context.Context, doc *domain.Document) error

	// List returns all documents ordered by UpdatedAt descending.
	List(ctx context.Context) ([]domain.Document, error)

	// GetOne retrieves a document by ID.
	// Returns domain.ErrNotFound if absent.
	GetOne(ctx context.Context, id string) (*domain.Document, error)

	// Remove deletes a document. Removing a missing ID is a no-op.
	Remove(ctx context.Context, id string) error
}
