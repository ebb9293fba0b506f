package domain

import "time"

// WelcomeDocumentID is the reserved identifier of the bootstrap document
// shown on a first-ever visit. Once persisted it is a regular document;
// its special status lives only in the session settings.
const WelcomeDocumentID = "welcome"

// WelcomeContent is the fixed starter content of the bootstrap document.
const WelcomeContent = `# Welcome to Markpad

Start editing this document or create a new one.

## Features

- **Live Preview**: See your changes as you type
- **Export**: Save a rendered copy of any document
- **Local Storage**: All your documents are stored locally
- **Markdown Support**: Full markdown support including tables and code blocks
- **Search**: Press Ctrl+K to search across all documents

## Example Table

| Feature | Description |
| ------- | ----------- |
| Markdown | Full markdown support |
| Export | Export with one keystroke |
| Local Storage | All documents stored locally |
| Search | Quick search with Ctrl+K |

## Example Code Block

` + "```go\nfunc hello() {\n\tfmt.Println(\"Hello, world!\")\n}\n```" + `
`

// StarterContent is the initial content of an explicitly created document.
const StarterContent = "# Untitled Document\n\nStart writing your content here..."

// Document represents a markdown document with metadata.
// It is the sole persisted entity.
type Document struct {
	// ID is the unique, immutable identifier for the document.
	ID string

	// Title is the human-readable title, derived from content or
	// assigned by an explicit rename.
	Title string

	// Content is the raw markdown body.
	Content string

	// CreatedAt is when the document was created. Never mutated.
	CreatedAt time.Time

	// UpdatedAt is when the document was last modified. It is the
	// sole ordering key for listings (descending).
	UpdatedAt time.Time
}

// NewWelcomeDocument builds the in-memory bootstrap document.
// It is not persisted until the first mutation flows through autosave.
func NewWelcomeDocument(now time.Time) Document {
	return Document{
		ID:        WelcomeDocumentID,
		Title:     "Welcome",
		Content:   WelcomeContent,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewDocument builds a fresh document with starter content.
func NewDocument(id string, now time.Time) Document {
	return Document{
		ID:        id,
		Title:     UntitledTitle,
		Content:   StarterContent,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsWelcome reports whether the document is the bootstrap document.
func (d Document) IsWelcome() bool {
	return d.ID == WelcomeDocumentID
}

// Validate checks the document satisfies the minimal shape contract.
func (d Document) Validate() error {
	if d.ID == "" {
		return ErrInvalidInput
	}
	return nil
}
