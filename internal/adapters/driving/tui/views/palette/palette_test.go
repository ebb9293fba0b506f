package palette

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markpad-labs/markpad-cli/internal/adapters/driven/storage/memory"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/messages"
	"github.com/markpad-labs/markpad-cli/internal/core/domain"
	"github.com/markpad-labs/markpad-cli/internal/core/services"
)

type nopActions struct{}

func (nopActions) ExportCurrent(context.Context) (string, error) { return "", nil }
func (nopActions) CopyTitle(context.Context) error               { return nil }

func newTestPaletteView(t *testing.T) *View {
	t.Helper()

	store := memory.NewDocumentStore()
	doc := domain.Document{
		ID: "doc-a", Title: "Meeting Notes", Content: "agenda items", UpdatedAt: time.Now(),
	}
	require.NoError(t, store.Save(context.Background(), &doc))

	session := services.NewSession(
		services.NewDocumentRepository(store), memory.NewSettingsStore(), nil, time.Hour,
	)
	t.Cleanup(func() { _ = session.Close(context.Background()) })
	require.NoError(t, session.Start(context.Background()))

	v := NewView(nil, services.NewPalette(session, nopActions{}, 0))
	v.SetDimensions(60, 20)
	return v
}

func TestPaletteView_OpenResetsInputAndLists(t *testing.T) {
	v := newTestPaletteView(t)

	cmd := v.Open()
	require.NotNil(t, cmd)

	out := v.View()
	assert.Contains(t, out, "Command Palette")
	assert.Contains(t, out, "Meeting Notes")
	assert.Contains(t, out, "New Document")
}

func TestPaletteView_TypingFiltersEntries(t *testing.T) {
	v := newTestPaletteView(t)
	v.Open()

	for _, r := range "meeting" {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "meeting", v.input.Value())
	out := v.View()
	assert.Contains(t, out, "Meeting Notes")
	assert.Contains(t, out, `Create "meeting"`)
	assert.NotContains(t, out, "Copy Title")
}

func TestPaletteView_ArrowKeysMoveCursorButLettersReachInput(t *testing.T) {
	v := newTestPaletteView(t)
	v.Open()

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.palette.Cursor())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.palette.Cursor())

	// j and k are typed characters inside the palette, not navigation.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, "j", v.input.Value())
	assert.Equal(t, 0, v.palette.Cursor())
}

func TestPaletteView_EscapeCloses(t *testing.T) {
	v := newTestPaletteView(t)
	v.Open()

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, messages.PaletteClosed{}, cmd())
}

func TestPaletteView_EnterActivatesEntry(t *testing.T) {
	v := newTestPaletteView(t)
	v.Open()

	// Cursor 0 is the export command, so activation closes the palette.
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, messages.PaletteClosed{}, cmd())
}

func TestPaletteView_EnterOnDocumentSelectsIt(t *testing.T) {
	v := newTestPaletteView(t)
	v.Open()

	for _, r := range "agenda" {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	// Entries are now the create entry then the matching document.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, messages.DocumentSelected{}, cmd())
}

func TestPaletteView_UnmatchedQueryStillOffersCreate(t *testing.T) {
	v := newTestPaletteView(t)
	v.Open()

	for _, r := range "zzz" {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	out := v.View()
	assert.Contains(t, out, `Create "zzz"`)
	assert.NotContains(t, out, "Meeting Notes")
}
