package driving

import (
	"context"

	"github.com/markpad-labs/markpad-cli/internal/core/domain"
)

// SessionEventKind distinguishes session notifications.
type SessionEventKind int

const (
	// EventDocumentsChanged signals the document list was refreshed
	// after a successful persistence or an external store change.
	EventDocumentsChanged SessionEventKind = iota

	// EventDocumentSaved signals a document was persisted.
	EventDocumentSaved

	// EventSaveFailed signals persistence failed on both tiers.
	// In-memory state is unchanged; the edit is only unsaved.
	EventSaveFailed
)

// SessionEvent is emitted by the session controller after mutations.
// Views subscribe to it instead of re-fetching at every call site.
type SessionEvent struct {
	Kind       SessionEventKind
	DocumentID string
	Err        error
}

// SessionService owns the current document, the mirrored document list,
// and the autosave lifecycle.
type SessionService interface {
	// Start loads the document list and resolves the initial current
	// document. It runs the resolution exactly once per process.
	Start(ctx context.Context) error

	// IsLoading reports whether initial resolution has completed.
	IsLoading() bool

	// Current returns the document bound to the editor, if any.
	Current() (domain.Document, bool)

	// Documents returns the mirrored, ordered document list.
	Documents() []domain.Document

	// ConsumeFocusRequest reports whether the editor should take input
	// focus, clearing the request.
	ConsumeFocusRequest() bool

	// SetContent applies a content edit to the current document
	// immediately in memory and schedules a debounced autosave.
	SetContent(content string)

	// SaveNow persists the current document immediately, bypassing the
	// debounce. Reports success or failure synchronously.
	SaveNow(ctx context.Context) error

	// SelectDocument switches the current document to the given ID.
	// A pending autosave for the previous document is flushed first.
	// Returns domain.ErrNotFound if the ID does not exist; the current
	// document is unchanged in that case.
	SelectDocument(ctx context.Context, id string) error

	// CreateDocument creates a fresh document, makes it current, and
	// persists it immediately.
	CreateDocument(ctx context.Context) (domain.Document, error)

	// RenameDocument assigns an explicit title and persists immediately.
	RenameDocument(ctx context.Context, id, newTitle string) error

	// DeleteDocument removes a document permanently. Deleting the
	// welcome document records that it must not be resynthesised.
	// The caller is responsible for selecting or creating a
	// replacement if the deleted document was current.
	DeleteDocument(ctx context.Context, id string) error

	// Events returns the channel of session notifications.
	Events() <-chan SessionEvent

	// Close flushes any pending autosave and stops the controller.
	Close(ctx context.Context) error
}
