package diskv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markpad-labs/markpad-cli/internal/core/domain"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	return store
}

func testDocument(id string, updated time.Time) *domain.Document {
	return &domain.Document{
		ID:        id,
		Title:     "Test Document " + id,
		Content:   "# Test Document " + id,
		CreatedAt: updated.Add(-time.Hour),
		UpdatedAt: updated,
	}
}

func TestStore_SaveAndGetByID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	doc := testDocument("doc-1", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, store.Save(ctx, doc))

	got, err := store.GetByID(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, *doc, *got)
}

func TestStore_Save_ReplacesExisting(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	doc := testDocument("doc-1", time.Now().UTC())
	require.NoError(t, store.Save(ctx, doc))

	doc.Content = "changed"
	require.NoError(t, store.Save(ctx, doc))

	docs, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "changed", docs[0].Content)
}

func TestStore_GetAll_OrderedByUpdatedAt(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.Save(ctx, testDocument("doc-old", base.Add(-2*time.Hour))))
	require.NoError(t, store.Save(ctx, testDocument("doc-new", base)))
	require.NoError(t, store.Save(ctx, testDocument("doc-mid", base.Add(-time.Hour))))

	docs, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "doc-new", docs[0].ID)
	assert.Equal(t, "doc-mid", docs[1].ID)
	assert.Equal(t, "doc-old", docs[2].ID)
}

func TestStore_GetByID_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testDocument("doc-1", time.Now().UTC())))
	require.NoError(t, store.Save(ctx, testDocument("doc-2", time.Now().UTC())))

	require.NoError(t, store.Delete(ctx, "doc-1"))

	docs, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "doc-2", docs[0].ID)

	// Deleting a nonexistent id is a no-op.
	assert.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, testDocument("doc-1", time.Now().UTC())))
	require.NoError(t, store.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)

	docs, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}
