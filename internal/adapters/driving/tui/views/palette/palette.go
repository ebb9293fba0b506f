// Package palette renders the command palette overlay over the merged
// command/document index.
package palette

import (
	"context"
	"errors"
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

// maxVisibleEntries caps the rendered rows; the cursor row is always
// kept in view.
const maxVisibleEntries = 10

// View is the command palette overlay.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	palette driving.PaletteService
	input   textinput.Model

	width int
}

// NewView creates the palette overlay.
func NewView(s *styles.Styles, palette driving.PaletteService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Search documents and commands..."
	ti.CharLimit = 256

	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		palette: palette,
		input:   ti,
	}
}

// Open resets the palette state for a fresh overlay.
func (v *View) Open() tea.Cmd {
	v.palette.Open()
	v.input.Reset()
	return v.input.Focus()
}

// Update handles key messages while the palette is open.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	keyStr := keyMsg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Cancel):
		v.input.Blur()
		return v, func() tea.Msg { return messages.PaletteClosed{} }

	// Plain j/k must reach the input, so only the arrow keys navigate.
	case keyStr == "up":
		v.palette.MoveCursor(-1)
		return v, nil

	case keyStr == "down":
		v.palette.MoveCursor(1)
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Select):
		v.input.Blur()
		return v, func() tea.Msg {
			entry, err := v.palette.Activate(context.Background())
			if err != nil {
				if errors.Is(err, domain.ErrEmptyPalette) {
					return messages.PaletteClosed{}
				}
				return messages.ErrorOccurred{Err: err}
			}
			if entry.Kind == driving.EntryDocument {
				return messages.DocumentSelected{}
			}
			return messages.PaletteClosed{}
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.palette.SetQuery(v.input.Value())
	return v, cmd
}

// View renders the overlay.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Command Palette"))
	b.WriteString("\n")
	b.WriteString(v.styles.InputField.Render(v.input.View()))
	b.WriteString("\n\n")

	entries := v.palette.Entries()
	cursor := v.palette.Cursor()

	if len(entries) == 0 {
		b.WriteString(v.styles.Muted.Render("No matches"))
		return v.styles.Overlay.Width(v.width).Render(b.String())
	}

	start := 0
	if cursor >= maxVisibleEntries {
		start = cursor - maxVisibleEntries + 1
	}
	end := start + maxVisibleEntries
	if end > len(entries) {
		end = len(entries)
	}

	for i := start; i < end; i++ {
		entry := entries[i]
		row := entry.Title
		if entry.Description != "" {
			row = fmt.Sprintf("%s  (%s)", entry.Title, entry.Description)
		}
		if i == cursor {
			b.WriteString(v.styles.Selected.Render("> " + row))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + row))
		}
		b.WriteString("\n")
	}

	return v.styles.Overlay.Width(v.width).Render(b.String())
}

// SetDimensions sets the overlay size.
func (v *View) SetDimensions(width, _ int) {
	v.width = width
	v.input.Width = width - 8
}
