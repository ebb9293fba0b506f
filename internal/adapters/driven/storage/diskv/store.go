// Package diskv implements the fallback document storage tier.
//
// All documents are serialized as one JSON blob under a single
// well-known key. Every write rewrites the whole blob; reads scan the
// decoded array. Less capable than the SQLite tier, but it needs
// nothing beyond a writable directory.
package diskv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	dv "github.com/peterbourgon/diskv/v3"

	"github.com/markpad-labs/markpad-cli/internal/core/domain"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driven"
)

// documentsKey is the single well-known key holding the serialized
// document array.
const documentsKey = "documents"

// Ensure Store implements the interface.
var _ driven.DocumentStore = (*Store)(nil)

// Store is the diskv-backed fallback document store.
type Store struct {
	mu       sync.Mutex
	d        *dv.Diskv
	basePath string
}

// NewStore creates a fallback store rooted at the given directory.
// If dataDir is empty, defaults to ~/.markpad/fallback.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".markpad", "fallback")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating fallback directory: %w", err)
	}

	return &Store{
		d: dv.New(dv.Options{
			BasePath:     dataDir,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: dataDir,
	}, nil
}

// Close releases resources. The diskv handle holds no open files.
func (s *Store) Close() error {
	return nil
}

// Path returns the directory holding the blob.
func (s *Store) Path() string {
	return s.basePath
}

// BlobPath returns the path of the serialized blob file.
func (s *Store) BlobPath() string {
	return filepath.Join(s.basePath, documentsKey)
}

// readAll decodes the blob. A missing key yields an empty slice.
// Caller must hold the lock.
func (s *Store) readAll() ([]domain.Document, error) {
	if !s.d.Has(documentsKey) {
		return nil, nil
	}

	raw, err := s.d.Read(documentsKey)
	if err != nil {
		return nil, fmt.Errorf("reading documents blob: %w", err)
	}

	var docs []domain.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decoding documents blob: %w", err)
	}
	return docs, nil
}

// writeAll re-serializes the whole blob. Caller must hold the lock.
func (s *Store) writeAll(docs []domain.Document) error {
	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("encoding documents blob: %w", err)
	}
	if err := s.d.Write(documentsKey, raw); err != nil {
		return fmt.Errorf("writing documents blob: %w", err)
	}
	return nil
}

// Save stores or updates a document.
func (s *Store) Save(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.readAll()
	if err != nil {
		return err
	}

	replaced := false
	for i := range docs {
		if docs[i].ID == doc.ID {
			docs[i] = *doc
			replaced = true
			break
		}
	}
	if !replaced {
		docs = append(docs, *doc)
	}

	return s.writeAll(docs)
}

// GetAll returns every stored document, most recently updated first.
func (s *Store) GetAll(_ context.Context) ([]domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.readAll()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].UpdatedAt.Equal(docs[j].UpdatedAt) {
			return docs[i].ID < docs[j].ID
		}
		return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
	})

	return docs, nil
}

// GetByID retrieves a document by ID.
func (s *Store) GetByID(_ context.Context, id string) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.readAll()
	if err != nil {
		return nil, err
	}

	for i := range docs {
		if docs[i].ID == id {
			doc := docs[i]
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes a document. Deleting a missing ID is a no-op.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.readAll()
	if err != nil {
		return err
	}

	filtered := docs[:0]
	for i := range docs {
		if docs[i].ID != id {
			filtered = append(filtered, docs[i])
		}
	}

	return s.writeAll(filtered)
}
