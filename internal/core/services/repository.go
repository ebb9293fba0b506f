package services

import (
	"context"
	"fmt"

	"github.com/markpad-labs/markpad-cli/internal/core/domain"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driven"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driving"
)

// Ensure DocumentRepository implements the interface.
var _ driving.RepositoryService = (*DocumentRepository)(nil)

// DocumentRepository is the typed CRUD facade over document storage.
// It adds shape validation and nothing else; which tier serves a call
// is invisible here.
type DocumentRepository struct {
	store driven.DocumentStore
}

// NewDocumentRepository creates a new document repository.
func NewDocumentRepository(store driven.DocumentStore) *DocumentRepository {
	return &DocumentRepository{store: store}
}

// Save stores or updates a document.
func (r *DocumentRepository) Save(ctx context.Context, doc *domain.Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	return r.store.Save(ctx, doc)
}

// List returns all documents ordered by UpdatedAt descending.
func (r *DocumentRepository) List(ctx context.Context) ([]domain.Document, error) {
	return r.store.GetAll(ctx)
}

// GetOne retrieves a document by ID.
func (r *DocumentRepository) GetOne(ctx context.Context, id string) (*domain.Document, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty document id", domain.ErrInvalidInput)
	}
	return r.store.GetByID(ctx, id)
}

// Remove deletes a document. Removing a missing ID is a no-op.
func (r *DocumentRepository) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty document id", domain.ErrInvalidInput)
	}
	return r.store.Delete(ctx, id)
}
