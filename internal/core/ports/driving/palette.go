package driving

import "context"

// PaletteEntryKind distinguishes the merged palette entries.
type PaletteEntryKind int

const (
	// EntryCommand is a fixed static command.
	EntryCommand PaletteEntryKind = iota

	// EntryCreate is the synthetic "create document from query" entry,
	// present only while the query is non-empty.
	EntryCreate

	// EntryDocument is a document matching the query.
	EntryDocument
)

// PaletteEntry is one row of the merged, filterable palette list.
type PaletteEntry struct {
	Kind        PaletteEntryKind
	Title       string
	Description string

	// DocumentID is set for EntryDocument rows.
	DocumentID string
}

// PaletteService maintains the merged command/document list with a
// keyboard-navigable cursor.
type PaletteService interface {
	// Open resets the query and cursor for a fresh palette session.
	Open()

	// SetQuery updates the filter query and resets the cursor.
	SetQuery(q string)

	// Query returns the current query.
	Query() string

	// Entries returns the merged list: static commands first, then the
	// synthetic create entry, then matching documents in repository
	// order.
	Entries() []PaletteEntry

	// Cursor returns the current cursor index.
	Cursor() int

	// MoveCursor moves the cursor by delta, wrapping modulo the list
	// length in both directions.
	MoveCursor(delta int)

	// Activate dispatches exactly one action for the entry under the
	// cursor and returns it. Returns domain.ErrEmptyPalette when the
	// list is empty.
	Activate(ctx context.Context) (*PaletteEntry, error)
}
