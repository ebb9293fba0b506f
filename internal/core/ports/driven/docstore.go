package driven

import (
	"context"

	"github.com/markpad-labs/markpad-cli/internal/core/domain"
)

// DocumentStore persists markdown documents.
// Implementations must provide upsert semantics keyed by document ID,
// and GetAll must return documents ordered by UpdatedAt descending.
type DocumentStore interface {
	// Save stores or updates a document. Saving the same document
	// twice is idempotent.
	Save(ctx context.Context, doc *domain.Document) error

	// GetAll returns every stored document, most recently updated first.
	GetAll(ctx context.Context) ([]domain.Document, error)

	// GetByID retrieves a document by ID.
	// Returns domain.ErrNotFound for a missing key, never a raw error.
	GetByID(ctx context.Context, id string) (*domain.Document, error)

	// Delete removes the document. Deleting a missing ID is a no-op.
	Delete(ctx context.Context, id string) error

	// Close releases any underlying resources.
	Close() error
}
