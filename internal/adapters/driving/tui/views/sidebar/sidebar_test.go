package sidebar

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

func newTestSidebar(t *testing.T, docs ...domain.Document) (*View, *services.Session) {
	t.Helper()

	store := memory.NewDocumentStore()
	for i := range docs {
		require.NoError(t, store.Save(context.Background(), &docs[i]))
	}

	session := services.NewSession(
		services.NewDocumentRepository(store), memory.NewSettingsStore(), nil, time.Hour,
	)
	t.Cleanup(func() { _ = session.Close(context.Background()) })
	require.NoError(t, session.Start(context.Background()))

	v := NewView(nil, session)
	v.Refresh()
	return v, session
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testDocs() []domain.Document {
	base := time.Now()
	return []domain.Document{
		{ID: "doc-a", Title: "Alpha", UpdatedAt: base},
		{ID: "doc-b", Title: "Beta", UpdatedAt: base.Add(-time.Hour)},
	}
}

func TestSidebar_ListsDocumentsInOrder(t *testing.T) {
	v, _ := newTestSidebar(t, testDocs()...)

	docs := v.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, "doc-a", docs[0].ID)

	view := v.View()
	assert.Contains(t, view, "Alpha")
	assert.Contains(t, view, "Beta")
}

func TestSidebar_CursorNavigationClamps(t *testing.T) {
	v, _ := newTestSidebar(t, testDocs()...)

	v, _ = v.Update(keyMsg("k"))
	assert.Equal(t, 0, v.Cursor())

	v, _ = v.Update(keyMsg("j"))
	assert.Equal(t, 1, v.Cursor())

	v, _ = v.Update(keyMsg("j"))
	assert.Equal(t, 1, v.Cursor())
}

func TestSidebar_SelectEmitsDocumentSelected(t *testing.T) {
	v, session := newTestSidebar(t, testDocs()...)

	v, _ = v.Update(keyMsg("j"))
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	selected, ok := msg.(messages.DocumentSelected)
	require.True(t, ok)
	require.NoError(t, selected.Err)

	current, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, "doc-b", current.ID)
}

func TestSidebar_RenameFlow(t *testing.T) {
	v, session := newTestSidebar(t, testDocs()...)

	v, _ = v.Update(keyMsg("r"))
	assert.True(t, v.Renaming())

	// Type over the prefilled title.
	v.rename.SetValue("Renamed")
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, v.Renaming())

	msg := cmd()
	renamed, ok := msg.(messages.DocumentRenamed)
	require.True(t, ok)
	require.NoError(t, renamed.Err)
	assert.Equal(t, "doc-a", renamed.ID)

	docs := session.Documents()
	require.NotEmpty(t, docs)
	assert.Equal(t, "Renamed", docs[0].Title)
}

func TestSidebar_RenameCancel(t *testing.T) {
	v, _ := newTestSidebar(t, testDocs()...)

	v, _ = v.Update(keyMsg("r"))
	require.True(t, v.Renaming())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, v.Renaming())
}

func TestSidebar_DeleteNeedsConfirmation(t *testing.T) {
	v, session := newTestSidebar(t, testDocs()...)

	v, _ = v.Update(keyMsg("d"))
	assert.True(t, v.ConfirmingDelete())

	// Anything but y aborts.
	v, _ = v.Update(keyMsg("n"))
	assert.False(t, v.ConfirmingDelete())
	assert.Len(t, session.Documents(), 2)

	v, _ = v.Update(keyMsg("d"))
	v, cmd := v.Update(keyMsg("y"))
	require.NotNil(t, cmd)

	msg := cmd()
	deleted, ok := msg.(messages.DocumentDeleted)
	require.True(t, ok)
	require.NoError(t, deleted.Err)

	v.Refresh()
	assert.Len(t, v.Documents(), 1)
}

func TestSidebar_RefreshKeepsCursorOnDocument(t *testing.T) {
	v, _ := newTestSidebar(t, testDocs()...)

	v, _ = v.Update(keyMsg("j"))
	require.Equal(t, 1, v.Cursor())

	v.Refresh()
	assert.Equal(t, 1, v.Cursor())
	assert.Equal(t, "doc-b", v.Documents()[v.Cursor()].ID)
}
