package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

func TestGetBookmarkFolders_CreatesDefault(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	folders, err := store.GetBookmarkFolders(context.Background())
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, domain.DefaultFolderID, folders[0].ID)
	assert.Equal(t, "Favorites", folders[0].Name)
	assert.Equal(t, "#3b82f6", folders[0].Color)
}

func TestCreateBookmarkFolder(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	folder, err := store.CreateBookmarkFolder(ctx, "Date Night", "#ef4444")
	require.NoError(t, err)
	assert.NotEqual(t, domain.DefaultFolderID, folder.ID)
	assert.Equal(t, "Date Night", folder.Name)

	folders, err := store.GetBookmarkFolders(ctx)
	require.NoError(t, err)
	assert.Len(t, folders, 2)
}

func TestCreateBookmarkFolder_DerivesColorWhenEmpty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	folder, err := store.CreateBookmarkFolder(ctx, "Brunch Spots", "")
	require.NoError(t, err)
	assert.Regexp(t, `^#[0-9A-F]{6}$`, folder.Color)
}

func TestCreateBookmarkFolder_DuplicateName(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	_, err := store.CreateBookmarkFolder(ctx, "Date Night", "#ef4444")
	require.NoError(t, err)

	_, err = store.CreateBookmarkFolder(ctx, "Date Night", "#22c55e")
	assert.ErrorIs(t, err, ErrDuplicateFolder)
}

func TestDeleteBookmarkFolder(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	folder, err := store.CreateBookmarkFolder(ctx, "Weekend", "#f59e0b")
	require.NoError(t, err)

	require.NoError(t, store.DeleteBookmarkFolder(ctx, folder.ID))

	folders, err := store.GetBookmarkFolders(ctx)
	require.NoError(t, err)
	assert.Len(t, folders, 1)
}

func TestDeleteBookmarkFolder_DefaultIsNoop(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	// Deleting the default folder silently does nothing.
	require.NoError(t, store.DeleteBookmarkFolder(ctx, domain.DefaultFolderID))

	folders, err := store.GetBookmarkFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, domain.DefaultFolderID, folders[0].ID)
}

func TestDeleteBookmarkFolder_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.DeleteBookmarkFolder(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrFolderNotFound)
}

func TestAddBookmark_SetSemantics(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.AddBookmark(ctx, domain.DefaultFolderID, "biz-001"))
	// Adding again is a no-op, not an error.
	require.NoError(t, store.AddBookmark(ctx, domain.DefaultFolderID, "biz-001"))

	folders, err := store.GetBookmarkFolders(ctx)
	require.NoError(t, err)
	assert.Len(t, folders[0].BusinessIDs, 1)
}

func TestRemoveBookmark_DropsNote(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.AddBookmark(ctx, domain.DefaultFolderID, "biz-001"))
	require.NoError(t, store.SetBookmarkNote(ctx, domain.DefaultFolderID, "biz-001", "try the pho"))
	require.NoError(t, store.RemoveBookmark(ctx, domain.DefaultFolderID, "biz-001"))

	folders, err := store.GetBookmarkFolders(ctx)
	require.NoError(t, err)
	assert.Empty(t, folders[0].BusinessIDs)
	assert.Empty(t, folders[0].Notes)
}

func TestSetBookmarkNote_NotBookmarked(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.SetBookmarkNote(context.Background(), domain.DefaultFolderID, "biz-001", "note")
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestIsBookmarked_AcrossFolders(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	folder, err := store.CreateBookmarkFolder(ctx, "Coffee Spots", "#8b5cf6")
	require.NoError(t, err)
	require.NoError(t, store.AddBookmark(ctx, folder.ID, "biz-002"))

	bookmarked, err := store.IsBookmarked(ctx, "biz-002")
	require.NoError(t, err)
	assert.True(t, bookmarked)

	bookmarked, err = store.IsBookmarked(ctx, "biz-999")
	require.NoError(t, err)
	assert.False(t, bookmarked)
}
