package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestBar() *Bar {
	b := NewBar(nil, nil)
	b.SetWidth(100)
	return b
}

func TestBar_ReadyShowsTitle(t *testing.T) {
	b := newTestBar()
	b.SetTitle("Meeting Notes")

	out := b.View()
	assert.Contains(t, out, "Meeting Notes")
	assert.NotContains(t, out, "Saved")
}

func TestBar_NoDocumentPlaceholder(t *testing.T) {
	b := newTestBar()
	assert.Contains(t, b.View(), "No document")
}

func TestBar_EditingShowsDirtyMarker(t *testing.T) {
	b := newTestBar()
	b.SetTitle("Notes")
	b.SetState(StateEditing)

	assert.Contains(t, b.View(), "●")
}

func TestBar_SavedShowsMessage(t *testing.T) {
	b := newTestBar()
	b.SetTitle("Notes")
	b.SetState(StateSaved)
	b.SetMessage("Exported to notes.md")

	assert.Contains(t, b.View(), "Exported to notes.md")
}

func TestBar_ErrorTakesOverLeftSide(t *testing.T) {
	b := newTestBar()
	b.SetTitle("Notes")
	b.SetState(StateError)
	b.SetMessage("disk full")

	out := b.View()
	assert.Contains(t, out, "Error: disk full")
}

func TestBar_ClearResetsToReady(t *testing.T) {
	b := newTestBar()
	b.SetState(StateError)
	b.SetMessage("boom")

	b.Clear()
	assert.Equal(t, StateReady, b.State())
	assert.Empty(t, b.Message())
}

func TestBar_HintsFollowFocus(t *testing.T) {
	b := newTestBar()

	editorHints := b.View()
	assert.Contains(t, editorHints, "ctrl+s")

	b.SetSidebarFocus(true)
	sidebarHints := b.View()
	assert.Contains(t, sidebarHints, "rename")
}