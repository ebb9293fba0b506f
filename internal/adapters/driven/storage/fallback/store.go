// Package fallback combines the two storage tiers behind one
// DocumentStore. The primary tier is probed once at construction; each
// operation that fails on the primary is retried wholly on the
// secondary. A call never mixes tiers, so there is no partial-write
// hazard across them. Callers cannot observe which tier served a call.
package fallback

import (
	"context"
	"errors"
	"fmt"

	"github.com/markpad-labs/markpad-cli/internal/core/domain"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driven"
	"github.com/markpad-labs/markpad-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.DocumentStore = (*Store)(nil)

// Store routes document operations to the primary tier with a silent
// per-operation fallback to the secondary tier.
type Store struct {
	primary   driven.DocumentStore // nil when the construction probe failed
	secondary driven.DocumentStore
}

// NewStore builds a two-tier store from explicit tiers.
// primary may be nil, in which case every call goes to the secondary.
func NewStore(primary, secondary driven.DocumentStore) *Store {
	return &Store{
		primary:   primary,
		secondary: secondary,
	}
}

// Open probes the tiers at the given data directory using the provided
// constructors. A primary construction failure is recovered by running
// entirely on the secondary; a secondary construction failure is fatal.
func Open(
	dataDir string,
	openPrimary func(string) (driven.DocumentStore, error),
	openSecondary func(string) (driven.DocumentStore, error),
) (*Store, error) {
	secondary, err := openSecondary(dataDir)
	if err != nil {
		return nil, err
	}

	primary, err := openPrimary(dataDir)
	if err != nil {
		logger.Warn("primary storage unavailable, using fallback: %v", err)
		primary = nil
	}

	return NewStore(primary, secondary), nil
}

// exhausted marks a failure of the last remaining tier so callers can
// distinguish total storage loss from ordinary domain outcomes.
func exhausted(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}

// Save stores or updates a document.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	if s.primary != nil {
		err := s.primary.Save(ctx, doc)
		if err == nil {
			return nil
		}
		logger.Debug("primary save failed, falling back: %v", err)
	}
	if err := s.secondary.Save(ctx, doc); err != nil {
		return exhausted(err)
	}
	return nil
}

// GetAll returns every stored document, most recently updated first.
func (s *Store) GetAll(ctx context.Context) ([]domain.Document, error) {
	if s.primary != nil {
		docs, err := s.primary.GetAll(ctx)
		if err == nil {
			return docs, nil
		}
		logger.Debug("primary list failed, falling back: %v", err)
	}
	docs, err := s.secondary.GetAll(ctx)
	if err != nil {
		return nil, exhausted(err)
	}
	return docs, nil
}

// GetByID retrieves a document by ID. A not-found outcome is a valid
// primary answer, not a tier failure.
func (s *Store) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	if s.primary != nil {
		doc, err := s.primary.GetByID(ctx, id)
		if err == nil || errors.Is(err, domain.ErrNotFound) {
			return doc, err
		}
		logger.Debug("primary get failed, falling back: %v", err)
	}
	doc, err := s.secondary.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, exhausted(err)
	}
	return doc, err
}

// Delete removes a document. Deleting a missing ID is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s.primary != nil {
		err := s.primary.Delete(ctx, id)
		if err == nil {
			return nil
		}
		logger.Debug("primary delete failed, falling back: %v", err)
	}
	if err := s.secondary.Delete(ctx, id); err != nil {
		return exhausted(err)
	}
	return nil
}

// Close closes both tiers, reporting the first error.
func (s *Store) Close() error {
	var firstErr error
	if s.primary != nil {
		firstErr = s.primary.Close()
	}
	if err := s.secondary.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
