package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/markpad-labs/markpad-cli/internal/core/domain"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driven"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driving"
	"github.com/markpad-labs/markpad-cli/internal/logger"
)

// DefaultAutosaveDelay is the quiet interval after the last edit before
// the current document is persisted.
const DefaultAutosaveDelay = 500 * time.Millisecond

// Ensure Session implements the interface.
var _ driving.SessionService = (*Session)(nil)

// Session owns the current document, the mirrored document list, and
// the autosave lifecycle. Every persisted write carries the latest
// in-memory snapshot of the document at fire time, keyed by the
// document's own id, so a debounced save racing a selection or an
// explicit save never writes stale content.
type Session struct {
	repo     driving.RepositoryService
	settings driven.SettingsStore
	watcher  driven.StoreWatcher // optional
	autosave *Debouncer

	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.Mutex
	started       bool
	loading       bool
	current       *domain.Document
	documents     []domain.Document
	focusRequest  bool

	events chan driving.SessionEvent
	closed bool
}

// NewSession creates a session controller. watcher may be nil when no
// external-change notification is wanted (one-shot CLI commands).
func NewSession(
	repo driving.RepositoryService,
	settings driven.SettingsStore,
	watcher driven.StoreWatcher,
	autosaveDelay time.Duration,
) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		repo:     repo,
		settings: settings,
		watcher:  watcher,
		autosave: NewDebouncer(autosaveDelay),
		ctx:      ctx,
		cancel:   cancel,
		loading:  true,
		events:   make(chan driving.SessionEvent, 16),
	}
}

// Start loads the document list and resolves the initial current
// document. It runs the resolution exactly once per process.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.mu.Unlock()

	docs, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("loading document list: %w", err)
	}

	now := time.Now()

	s.mu.Lock()
	s.documents = docs

	switch {
	case len(docs) == 0 && !s.settings.GetBool(domain.SettingWelcomeDeleted):
		// Synthesize the welcome document in memory only; it reaches
		// storage through the normal autosave path on first edit.
		doc := domain.NewWelcomeDocument(now)
		s.current = &doc
		s.focusRequest = true
		logger.Debug("session: synthesized welcome document")

	case len(docs) == 0:
		doc := domain.NewDocument(s.newDocumentID(now), now)
		s.current = &doc
		s.focusRequest = true
		if err := s.settings.Set(domain.SettingLastOpened, doc.ID); err != nil {
			logger.Warn("session: recording last-opened marker: %v", err)
		}
		logger.Debug("session: synthesized default document %s", doc.ID)

	default:
		id := s.settings.GetString(domain.SettingLastOpened)
		doc := findDocument(docs, id)
		if doc == nil {
			// List order is UpdatedAt descending, so the head is the
			// most recently updated document.
			doc = &docs[0]
		}
		copied := *doc
		s.current = &copied
		logger.Debug("session: resolved current document %s", copied.ID)
	}

	s.loading = false
	s.mu.Unlock()

	s.emit(driving.SessionEvent{Kind: driving.EventDocumentsChanged})

	if s.watcher != nil {
		if err := s.watchStore(); err != nil {
			logger.Warn("session: store watcher unavailable: %v", err)
		}
	}

	return nil
}

// IsLoading reports whether initial resolution has completed.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Current returns the document bound to the editor, if any.
func (s *Session) Current() (domain.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.Document{}, false
	}
	return *s.current, true
}

// Documents returns the mirrored, ordered document list.
func (s *Session) Documents() []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := make([]domain.Document, len(s.documents))
	copy(docs, s.documents)
	return docs
}

// ConsumeFocusRequest reports whether the editor should take input
// focus, clearing the request.
func (s *Session) ConsumeFocusRequest() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	req := s.focusRequest
	s.focusRequest = false
	return req
}

// SetContent applies a content edit to the current document immediately
// in memory and schedules a debounced autosave.
func (s *Session) SetContent(content string) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.current.Content = content
	s.current.UpdatedAt = time.Now()
	s.mu.Unlock()

	// The closure reads the snapshot at fire time, not at edit time.
	s.autosave.Schedule(func() {
		if err := s.persistCurrent(s.ctx); err != nil {
			logger.Debug("session: autosave failed: %v", err)
		}
	})
}

// SaveNow persists the current document immediately, bypassing the
// debounce.
func (s *Session) SaveNow(ctx context.Context) error {
	s.autosave.Cancel()
	return s.persistCurrent(ctx)
}

// SelectDocument switches the current document to the given ID, after
// flushing any pending autosave for the previous document.
func (s *Session) SelectDocument(ctx context.Context, id string) error {
	s.autosave.Flush()

	doc, err := s.repo.GetOne(ctx, id)
	if err != nil {
		// Includes domain.ErrNotFound; current document is unchanged.
		return fmt.Errorf("selecting document %s: %w", id, err)
	}

	s.mu.Lock()
	copied := *doc
	s.current = &copied
	s.focusRequest = true
	s.mu.Unlock()

	if err := s.settings.Set(domain.SettingLastOpened, doc.ID); err != nil {
		logger.Warn("session: recording last-opened marker: %v", err)
	}

	return nil
}

// CreateDocument creates a fresh document, makes it current, and
// persists it immediately.
func (s *Session) CreateDocument(ctx context.Context) (domain.Document, error) {
	s.autosave.Flush()

	now := time.Now()
	doc := domain.NewDocument(s.newDocumentID(now), now)

	if err := s.repo.Save(ctx, &doc); err != nil {
		return domain.Document{}, fmt.Errorf("creating document: %w", err)
	}

	s.mu.Lock()
	copied := doc
	s.current = &copied
	s.focusRequest = true
	s.mu.Unlock()

	if err := s.settings.Set(domain.SettingLastOpened, doc.ID); err != nil {
		logger.Warn("session: recording last-opened marker: %v", err)
	}

	s.refreshDocuments(ctx)
	s.emit(driving.SessionEvent{Kind: driving.EventDocumentSaved, DocumentID: doc.ID})

	return doc, nil
}

// RenameDocument assigns an explicit title and persists immediately.
// The title holds until the next autosave derives a new one from the
// content.
func (s *Session) RenameDocument(ctx context.Context, id, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return fmt.Errorf("%w: empty title", domain.ErrInvalidInput)
	}

	doc, err := s.repo.GetOne(ctx, id)
	if err != nil {
		return fmt.Errorf("renaming document %s: %w", id, err)
	}

	doc.Title = newTitle
	doc.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, doc); err != nil {
		return fmt.Errorf("renaming document %s: %w", id, err)
	}

	s.mu.Lock()
	if s.current != nil && s.current.ID == id {
		s.current.Title = doc.Title
		s.current.UpdatedAt = doc.UpdatedAt
	}
	s.mu.Unlock()

	s.refreshDocuments(ctx)
	s.emit(driving.SessionEvent{Kind: driving.EventDocumentSaved, DocumentID: id})

	return nil
}

// DeleteDocument removes a document permanently. Deleting the welcome
// document records that it must not be resynthesised. If the deleted
// document was current, the session is left without a current document;
// the caller selects or creates a replacement.
func (s *Session) DeleteDocument(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("deleting document %s: %w", id, err)
	}

	if id == domain.WelcomeDocumentID {
		if err := s.settings.Set(domain.SettingWelcomeDeleted, true); err != nil {
			logger.Warn("session: recording welcome-deleted marker: %v", err)
		}
	}

	s.mu.Lock()
	if s.current != nil && s.current.ID == id {
		// A pending autosave would resurrect the deleted document.
		s.autosave.Cancel()
		s.current = nil
	}
	s.mu.Unlock()

	s.refreshDocuments(ctx)

	return nil
}

// Events returns the channel of session notifications.
func (s *Session) Events() <-chan driving.SessionEvent {
	return s.events
}

// Close flushes any pending autosave and stops the controller.
func (s *Session) Close(ctx context.Context) error {
	s.autosave.Flush()
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.events)
	}
	return nil
}

// persistCurrent derives the title from content, writes the latest
// snapshot of the current document, records it as last opened, and
// refreshes the document list.
func (s *Session) persistCurrent(ctx context.Context) error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return domain.ErrNoCurrentDocument
	}
	s.current.Title = domain.DeriveTitle(s.current.Content)
	snapshot := *s.current
	s.mu.Unlock()

	if err := s.repo.Save(ctx, &snapshot); err != nil {
		s.emit(driving.SessionEvent{
			Kind:       driving.EventSaveFailed,
			DocumentID: snapshot.ID,
			Err:        err,
		})
		return fmt.Errorf("saving document %s: %w", snapshot.ID, err)
	}

	if err := s.settings.Set(domain.SettingLastOpened, snapshot.ID); err != nil {
		logger.Warn("session: recording last-opened marker: %v", err)
	}

	s.refreshDocuments(ctx)
	s.emit(driving.SessionEvent{Kind: driving.EventDocumentSaved, DocumentID: snapshot.ID})

	return nil
}

// refreshDocuments reloads the mirrored list from the repository and
// notifies subscribers.
func (s *Session) refreshDocuments(ctx context.Context) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		logger.Debug("session: refreshing document list: %v", err)
		return
	}

	s.mu.Lock()
	s.documents = docs
	s.mu.Unlock()

	s.emit(driving.SessionEvent{Kind: driving.EventDocumentsChanged})
}

// watchStore wires external storage changes to list refreshes.
func (s *Session) watchStore() error {
	signals, err := s.watcher.Watch(s.ctx)
	if err != nil {
		return err
	}

	go func() {
		for range signals {
			s.refreshDocuments(s.ctx)
		}
	}()

	return nil
}

// emit delivers an event without blocking; a full channel drops the
// event, and a subsequent refresh reconverges the consumer.
func (s *Session) emit(ev driving.SessionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.events <- ev:
	default:
	}
}

// newDocumentID builds a time-derived unique document id.
func (s *Session) newDocumentID(now time.Time) string {
	return fmt.Sprintf("doc-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// findDocument returns the document with the given id, or nil.
func findDocument(docs []domain.Document, id string) *domain.Document {
	if id == "" {
		return nil
	}
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i]
		}
	}
	return nil
}
