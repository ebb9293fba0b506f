package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markpad-labs/markpad-cli/internal/core/domain"
)

// stubRenderer passes content through, optionally failing.
type stubRenderer struct {
	err error
}

func (r *stubRenderer) Render(content string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return content, nil
}

// stubExporter records the last export.
type stubExporter struct {
	title    string
	rendered string
	err      error
}

func (e *stubExporter) Export(title, rendered string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	e.title = title
	e.rendered = rendered
	return "/exports/" + title + ".md", nil
}

func currentDocSession() *stubSession {
	s := newStubSession()
	doc := domain.NewDocument("doc-1", time.Now())
	doc.Title = "My Notes"
	doc.Content = "# My Notes\n\nbody"
	s.current = &doc
	return s
}

func TestActions_ExportCurrent(t *testing.T) {
	exporter := &stubExporter{}
	a := NewActions(currentDocSession(), &stubRenderer{}, exporter)

	path, err := a.ExportCurrent(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/exports/My Notes.md", path)
	assert.Equal(t, "My Notes", exporter.title)
	assert.Equal(t, "# My Notes\n\nbody", exporter.rendered)
}

func TestActions_ExportCurrent_NoCurrentDocument(t *testing.T) {
	a := NewActions(newStubSession(), &stubRenderer{}, &stubExporter{})

	_, err := a.ExportCurrent(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoCurrentDocument)
}

func TestActions_ExportCurrent_RenderError(t *testing.T) {
	renderErr := errors.New("render boom")
	a := NewActions(currentDocSession(), &stubRenderer{err: renderErr}, &stubExporter{})

	_, err := a.ExportCurrent(context.Background())

	assert.ErrorIs(t, err, renderErr)
}

func TestActions_CopyTitle(t *testing.T) {
	orig := clipboardWriteAll
	t.Cleanup(func() { clipboardWriteAll = orig })

	var copied string
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}

	a := NewActions(currentDocSession(), &stubRenderer{}, &stubExporter{})

	require.NoError(t, a.CopyTitle(context.Background()))
	assert.Equal(t, "My Notes", copied)
}

func TestActions_CopyTitle_NoCurrentDocument(t *testing.T) {
	a := NewActions(newStubSession(), &stubRenderer{}, &stubExporter{})

	err := a.CopyTitle(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoCurrentDocument)
}
