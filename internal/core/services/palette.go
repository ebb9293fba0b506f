package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/markpad-labs/markpad-cli/internal/core/domain"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driving"
)

// Ensure Palette implements the interface.
var _ driving.PaletteService = (*Palette)(nil)

// staticCommand is one fixed palette command.
type staticCommand struct {
	title       string
	description string
	run         func(ctx context.Context) error
}

// Palette maintains the merged command/document list with a wrapping
// cursor. Entries are recomputed from the live document mirror on every
// read, so the list never goes stale between keystrokes.
type Palette struct {
	session  driving.SessionService
	actions  driving.ActionService
	commands []staticCommand
	debounce *Debouncer

	mu     sync.Mutex
	raw    string // what the user typed
	query  string // what filtering currently uses
	cursor int
}

// NewPalette creates a palette over the session's document mirror.
// A non-zero queryDelay debounces query evaluation for constrained
// surfaces; zero keeps filtering synchronous.
func NewPalette(
	session driving.SessionService,
	actions driving.ActionService,
	queryDelay time.Duration,
) *Palette {
	p := &Palette{
		session:  session,
		actions:  actions,
		debounce: NewDebouncer(queryDelay),
	}
	p.commands = []staticCommand{
		{
			title:       "Export Document",
			description: "Write the current document to a file",
			run: func(ctx context.Context) error {
				_, err := actions.ExportCurrent(ctx)
				return err
			},
		},
		{
			title:       "Copy Title",
			description: "Copy the current document title to the clipboard",
			run:         actions.CopyTitle,
		},
		{
			title:       "New Document",
			description: "Create a blank document",
			run: func(ctx context.Context) error {
				_, err := session.CreateDocument(ctx)
				return err
			},
		},
	}
	return p
}

// Open resets the query and cursor for a fresh palette session.
func (p *Palette) Open() {
	p.debounce.Cancel()
	p.mu.Lock()
	p.raw = ""
	p.query = ""
	p.cursor = 0
	p.mu.Unlock()
}

// SetQuery updates the filter query and resets the cursor.
func (p *Palette) SetQuery(q string) {
	p.mu.Lock()
	p.raw = q
	p.mu.Unlock()

	p.debounce.Schedule(func() {
		p.mu.Lock()
		p.query = p.raw
		p.cursor = 0
		p.mu.Unlock()
	})
}

// Query returns the query as typed.
func (p *Palette) Query() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.raw
}

// Entries returns the merged list: static commands first, then the
// synthetic create entry, then matching documents in repository order.
func (p *Palette) Entries() []driving.PaletteEntry {
	p.mu.Lock()
	query := p.query
	p.mu.Unlock()
	return p.entriesFor(query)
}

// Cursor returns the current cursor index.
func (p *Palette) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// MoveCursor moves the cursor by delta, wrapping modulo the list length
// in both directions.
func (p *Palette) MoveCursor(delta int) {
	entries := p.Entries()

	p.mu.Lock()
	defer p.mu.Unlock()

	n := len(entries)
	if n == 0 {
		p.cursor = 0
		return
	}
	p.cursor = ((p.cursor+delta)%n + n) % n
}

// Activate dispatches exactly one action for the entry under the cursor
// and returns it.
func (p *Palette) Activate(ctx context.Context) (*driving.PaletteEntry, error) {
	p.mu.Lock()
	query := p.query
	cursor := p.cursor
	p.mu.Unlock()

	entries := p.entriesFor(query)
	if len(entries) == 0 {
		return nil, domain.ErrEmptyPalette
	}
	if cursor >= len(entries) {
		cursor = 0
	}
	entry := entries[cursor]

	var err error
	switch entry.Kind {
	case driving.EntryCommand:
		err = p.runCommand(ctx, entry.Title)
	case driving.EntryCreate:
		err = p.createFromQuery(ctx, query)
	case driving.EntryDocument:
		err = p.session.SelectDocument(ctx, entry.DocumentID)
	}
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// entriesFor builds the merged list for a query.
func (p *Palette) entriesFor(query string) []driving.PaletteEntry {
	q := strings.ToLower(query)
	var entries []driving.PaletteEntry

	for _, cmd := range p.commands {
		if q == "" ||
			strings.Contains(strings.ToLower(cmd.title), q) ||
			strings.Contains(strings.ToLower(cmd.description), q) {
			entries = append(entries, driving.PaletteEntry{
				Kind:        driving.EntryCommand,
				Title:       cmd.title,
				Description: cmd.description,
			})
		}
	}

	if query != "" {
		entries = append(entries, driving.PaletteEntry{
			Kind:        driving.EntryCreate,
			Title:       fmt.Sprintf("Create %q", query),
			Description: "Create a new document",
		})
	}

	for _, doc := range p.session.Documents() {
		if q == "" ||
			strings.Contains(strings.ToLower(doc.Title), q) ||
			strings.Contains(strings.ToLower(doc.Content), q) {
			entries = append(entries, driving.PaletteEntry{
				Kind:        driving.EntryDocument,
				Title:       doc.Title,
				Description: "Open document",
				DocumentID:  doc.ID,
			})
		}
	}

	return entries
}

// runCommand dispatches the static command with the given title.
func (p *Palette) runCommand(ctx context.Context, title string) error {
	for _, cmd := range p.commands {
		if cmd.title == title {
			return cmd.run(ctx)
		}
	}
	return fmt.Errorf("%w: unknown command %q", domain.ErrInvalidInput, title)
}

// createFromQuery creates a document titled after the query.
func (p *Palette) createFromQuery(ctx context.Context, query string) error {
	doc, err := p.session.CreateDocument(ctx)
	if err != nil {
		return err
	}
	return p.session.RenameDocument(ctx, doc.ID, query)
}
