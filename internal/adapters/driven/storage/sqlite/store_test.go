package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markpad-labs/markpad-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

// testDocument builds a document with the given id and updated time.
func testDocument(id string, updated time.Time) *domain.Document {
	return &domain.Document{
		ID:        id,
		Title:     "Test Document " + id,
		Content:   "# Test Document " + id + "\n\nbody",
		CreatedAt: updated.Add(-time.Hour),
		UpdatedAt: updated,
	}
}

func TestNewStore_ErrorHandling(t *testing.T) {
	// Invalid path should fail to create the data directory.
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	dbPath := filepath.Join(tempDir, "markpad.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)

	err = store.db.Ping()
	assert.NoError(t, err)
}

func TestStore_SaveAndGetByID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	doc := testDocument("doc-1", now)
	require.NoError(t, store.Save(ctx, doc))

	got, err := store.GetByID(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.Title, got.Title)
	assert.Equal(t, doc.Content, got.Content)
	assert.True(t, doc.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, doc.UpdatedAt.Equal(got.UpdatedAt))
}

func TestStore_Save_Upsert(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	doc := testDocument("doc-1", now)
	require.NoError(t, store.Save(ctx, doc))

	// Saving the same document twice is idempotent.
	require.NoError(t, store.Save(ctx, doc))

	docs, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	// Updating replaces the record, created_at is untouched.
	doc.Content = "changed"
	doc.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, store.Save(ctx, doc))

	got, err := store.GetByID(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Content)
	assert.True(t, doc.CreatedAt.Equal(got.CreatedAt))
}

func TestStore_GetByID_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
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

	for i := 1; i < len(docs); i++ {
		assert.False(t, docs[i].UpdatedAt.After(docs[i-1].UpdatedAt))
	}
}

func TestStore_Delete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testDocument("doc-1", time.Now().UTC())))
	require.NoError(t, store.Delete(ctx, "doc-1"))

	_, err := store.GetByID(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting a nonexistent id is a no-op.
	assert.NoError(t, store.Delete(ctx, "doc-1"))
	assert.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestStore_MigrationsAreVersioned(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening the same directory must not re-run applied migrations.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	var version int
	row := store.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	require.NoError(t, row.Scan(&version))
	assert.Equal(t, 1, version)

	// Persisted data survives reopening.
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testDocument("doc-1", time.Now().UTC())))
	require.NoError(t, store.Close())

	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	docs, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}
