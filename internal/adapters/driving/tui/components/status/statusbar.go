// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/keymap"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateEditing State = "editing"
	StateSaved   State = "saved"
	StateError   State = "error"
)

// Bar displays the current document, save state, and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	title   string
	message string
	sidebar bool // sidebar has focus
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the document title and save state.
func (s *Bar) renderLeft() string {
	title := s.title
	if title == "" {
		title = "No document"
	}

	switch s.state {
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateSaved:
		msg := s.message
		if msg == "" {
			msg = "Saved"
		}
		return s.styles.Normal.Render(title) + "  " + s.styles.Success.Render(msg)
	case StateEditing:
		return s.styles.Normal.Render(title) + "  " + s.styles.Muted.Render("●")
	case StateReady:
		return s.styles.Normal.Render(title)
	}
	return s.styles.Normal.Render(title)
}

// renderRight renders keybinding hints for the focused pane.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.sidebar {
		bindings = s.keymap.SidebarHelp()
	} else {
		bindings = s.keymap.EditorHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetTitle sets the displayed document title.
func (s *Bar) SetTitle(title string) {
	s.title = title
}

// SetMessage sets a transient message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetSidebarFocus records which pane the hints describe.
func (s *Bar) SetSidebarFocus(focused bool) {
	s.sidebar = focused
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Clear resets the status bar to the ready state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
