// Package sidebar renders the document list pane and its rename and
// delete flows.
package sidebar

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/keymap"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/messages"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/styles"
	"github.com/markpad-labs/markpad-cli/internal/core/domain"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driving"
)

// mode is the sidebar input mode.
type mode int

const (
	modeList mode = iota
	modeRename
	modeConfirmDelete
)

// View is the document list pane.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	session driving.SessionService

	documents []domain.Document
	cursor    int
	mode      mode
	rename    textinput.Model

	width  int
	height int
}

// NewView creates the sidebar over the session's document mirror.
func NewView(s *styles.Styles, session driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "New title"
	ti.CharLimit = 100

	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		session: session,
		rename:  ti,
	}
}

// Refresh reloads the document list from the session, keeping the
// cursor on the same document where possible.
func (v *View) Refresh() {
	var selectedID string
	if v.cursor < len(v.documents) {
		selectedID = v.documents[v.cursor].ID
	}

	v.documents = v.session.Documents()

	v.cursor = 0
	for i, doc := range v.documents {
		if doc.ID == selectedID {
			v.cursor = i
			break
		}
	}
}

// Documents returns the listed documents.
func (v *View) Documents() []domain.Document {
	return v.documents
}

// Cursor returns the highlighted row index.
func (v *View) Cursor() int {
	return v.cursor
}

// SetDimensions sets the pane size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.rename.Width = width - 4
}

// Update handles key messages while the sidebar has focus.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch v.mode {
	case modeRename:
		return v.updateRename(keyMsg)
	case modeConfirmDelete:
		return v.updateConfirmDelete(keyMsg)
	default:
		return v.updateList(keyMsg)
	}
}

// updateList handles navigation and flow entry points.
func (v *View) updateList(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.cursor > 0 {
			v.cursor--
		}

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.cursor < len(v.documents)-1 {
			v.cursor++
		}

	case keymap.Matches(keyStr, v.keymap.Select):
		if doc, ok := v.highlighted(); ok {
			id := doc.ID
			return v, func() tea.Msg {
				err := v.session.SelectDocument(context.Background(), id)
				return messages.DocumentSelected{Err: err}
			}
		}

	case keymap.Matches(keyStr, v.keymap.Rename):
		if doc, ok := v.highlighted(); ok {
			v.mode = modeRename
			v.rename.SetValue(doc.Title)
			return v, v.rename.Focus()
		}

	case keymap.Matches(keyStr, v.keymap.Delete):
		if _, ok := v.highlighted(); ok {
			v.mode = modeConfirmDelete
		}
	}

	return v, nil
}

// updateRename handles the inline rename prompt.
func (v *View) updateRename(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Cancel):
		v.mode = modeList
		v.rename.Blur()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Select):
		doc, ok := v.highlighted()
		if !ok {
			v.mode = modeList
			return v, nil
		}
		title := v.rename.Value()
		v.mode = modeList
		v.rename.Blur()
		id := doc.ID
		return v, func() tea.Msg {
			err := v.session.RenameDocument(context.Background(), id, title)
			return messages.DocumentRenamed{ID: id, Err: err}
		}
	}

	var cmd tea.Cmd
	v.rename, cmd = v.rename.Update(msg)
	return v, cmd
}

// updateConfirmDelete handles the y/n delete confirmation.
func (v *View) updateConfirmDelete(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		doc, ok := v.highlighted()
		v.mode = modeList
		if !ok {
			return v, nil
		}
		id := doc.ID
		return v, func() tea.Msg {
			err := v.session.DeleteDocument(context.Background(), id)
			return messages.DocumentDeleted{ID: id, Err: err}
		}
	default:
		v.mode = modeList
	}
	return v, nil
}

// View renders the sidebar content.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Documents"))
	b.WriteString("\n\n")

	if len(v.documents) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents"))
	}

	current, hasCurrent := v.session.Current()

	for i, doc := range v.documents {
		title := doc.Title
		if title == "" {
			title = domain.UntitledTitle
		}
		if hasCurrent && doc.ID == current.ID {
			title = "* " + title
		} else {
			title = "  " + title
		}

		if i == v.cursor {
			switch v.mode {
			case modeRename:
				b.WriteString(v.styles.InputField.Render("> " + v.rename.View()))
			case modeConfirmDelete:
				b.WriteString(v.styles.Error.Render(fmt.Sprintf("Delete %q? y/n", doc.Title)))
			default:
				b.WriteString(v.styles.Selected.Render(title))
			}
		} else {
			b.WriteString(v.styles.Normal.Render(title))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Renaming reports whether the rename prompt is active.
func (v *View) Renaming() bool {
	return v.mode == modeRename
}

// ConfirmingDelete reports whether the delete confirmation is active.
func (v *View) ConfirmingDelete() bool {
	return v.mode == modeConfirmDelete
}

// highlighted returns the document under the cursor.
func (v *View) highlighted() (domain.Document, bool) {
	if v.cursor < 0 || v.cursor >= len(v.documents) {
		return domain.Document{}, false
	}
	return v.documents[v.cursor], true
}
