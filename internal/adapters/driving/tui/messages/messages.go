// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driving"
)

// SessionStarted signals that initial document resolution finished.
type SessionStarted struct {
	Err error
}

// SessionNotification wraps a session event for the update loop.
type SessionNotification struct {
	Event driving.SessionEvent
}

// DocumentSelected signals the current document changed and the editor
// must rebind its buffer.
type DocumentSelected struct {
	Err error
}

// DocumentCreated signals a document was created.
type DocumentCreated struct {
	ID  string
	Err error
}

// DocumentRenamed signals a rename completed.
type DocumentRenamed struct {
	ID  string
	Err error
}

// DocumentDeleted signals a delete completed.
type DocumentDeleted struct {
	ID  string
	Err error
}

// SaveCompleted signals an explicit save finished.
type SaveCompleted struct {
	Err error
}

// ExportCompleted carries the export artifact path.
type ExportCompleted struct {
	Path string
	Err  error
}

// TitleCopied signals a clipboard copy finished.
type TitleCopied struct {
	Err error
}

// PaletteClosed signals the palette dismissed itself after an
// activation or cancel.
type PaletteClosed struct{}

// ErrorOccurred signals that an action failed.
type ErrorOccurred struct {
	Err error
}

// StatusExpired clears a transient status bar message.
type StatusExpired struct{}

// Quit signals the application should exit.
type Quit struct{}
