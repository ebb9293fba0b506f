package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/markpad-labs/markpad-cli/internal/adapters/driven/export"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driven/storage/memory"
	"github.com/markpad-labs/markpad-cli/internal/core/domain"
	"github.com/markpad-labs/markpad-cli/internal/core/services"
)

// setupTestServices wires the commands to in-memory services seeded with
// two documents, and restores the previous wiring on cleanup.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	store := memory.NewDocumentStore()
	base := time.Now()
	seed := []domain.Document{
		{ID: "doc-1", Title: "Test Document 1", Content: "# Test Document 1\n\nfirst body", UpdatedAt: base},
		{ID: "doc-2", Title: "Test Document 2", Content: "# Test Document 2\n\nsecond body", UpdatedAt: base.Add(-time.Hour)},
	}
	for i := range seed {
		require.NoError(t, store.Save(context.Background(), &seed[i]))
	}

	repo := services.NewDocumentRepository(store)
	session := services.NewSession(repo, memory.NewSettingsStore(), nil, time.Hour)
	actions := services.NewActions(session, export.NewMarkdownRenderer(), export.NewFileExporter(t.TempDir()))
	palette := services.NewPalette(session, actions, 0)

	prevSession := sessionService
	prevRepo := repositoryService
	prevPalette := paletteService
	prevActions := actionService

	SetServices(Services{
		Session:    session,
		Repository: repo,
		Palette:    palette,
		Actions:    actions,
	})

	return func() {
		_ = session.Close(context.Background())
		sessionService = prevSession
		repositoryService = prevRepo
		paletteService = prevPalette
		actionService = prevActions
	}
}
