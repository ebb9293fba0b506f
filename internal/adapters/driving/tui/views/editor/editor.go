// Package editor renders the markdown editing pane. Every keystroke
// flows into the session as a content edit, which schedules the
// debounced autosave.
package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/styles"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driving"
)

// View is the content editing pane.
type View struct {
	styles   *styles.Styles
	session  driving.SessionService
	textarea textarea.Model

	boundID string // id of the document the buffer holds

	width  int
	height int
}

// NewView creates the editor bound to the session's current document.
func NewView(s *styles.Styles, session driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = "Start writing..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	return &View{
		styles:   s,
		session:  session,
		textarea: ta,
	}
}

// Init initialises the editor.
func (v *View) Init() tea.Cmd {
	return textarea.Blink
}

// Rebind loads the session's current document into the buffer. It is a
// no-op when the buffer already holds that document, so in-flight edits
// are not clobbered by list refreshes.
func (v *View) Rebind() {
	current, ok := v.session.Current()
	if !ok {
		v.boundID = ""
		v.textarea.SetValue("")
		return
	}
	if current.ID == v.boundID {
		return
	}
	v.boundID = current.ID
	v.textarea.SetValue(current.Content)
	v.textarea.CursorEnd()
}

// BoundID returns the id of the document in the buffer.
func (v *View) BoundID() string {
	return v.boundID
}

// Update handles key messages while the editor has focus.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	before := v.textarea.Value()

	var cmd tea.Cmd
	v.textarea, cmd = v.textarea.Update(msg)

	if after := v.textarea.Value(); after != before {
		v.session.SetContent(after)
	}

	return v, cmd
}

// View renders the editor pane.
func (v *View) View() string {
	return v.textarea.View()
}

// SetDimensions sets the pane size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.textarea.SetWidth(width)
	v.textarea.SetHeight(height)
}

// Focus gives the buffer input focus.
func (v *View) Focus() tea.Cmd {
	return v.textarea.Focus()
}

// Blur removes input focus.
func (v *View) Blur() {
	v.textarea.Blur()
}

// Focused reports whether the buffer has input focus.
func (v *View) Focused() bool {
	return v.textarea.Focused()
}

// Value returns the buffer content.
func (v *View) Value() string {
	return v.textarea.Value()
}
