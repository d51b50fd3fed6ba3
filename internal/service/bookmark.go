package service

import (
	"context"
	"log/slog"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/store"
)

// BookmarkService orchestrates bookmark folders and entries.
type BookmarkService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewBookmarkService creates a new bookmark service.
func NewBookmarkService(st *store.Store, logger *slog.Logger) *BookmarkService {
	return &BookmarkService{
		store:  st,
		logger: logger,
	}
}

// ListFolders returns all bookmark folders, default folder first.
func (s *BookmarkService) ListFolders(ctx context.Context) ([]domain.BookmarkFolder, error) {
	return s.store.GetBookmarkFolders(ctx)
}

// CreateFolder creates a new bookmark folder.
func (s *BookmarkService) CreateFolder(ctx context.Context, name, color string) (*domain.BookmarkFolder, error) {
	folder, err := s.store.CreateBookmarkFolder(ctx, name, color)
	if err != nil {
		return nil, err
	}
	s.logger.Info("bookmark folder created", "folder_id", folder.ID, "name", name)
	return folder, nil
}

// DeleteFolder removes a folder. Deleting the default folder is a no-op.
func (s *BookmarkService) DeleteFolder(ctx context.Context, folderID string) error {
	return s.store.DeleteBookmarkFolder(ctx, folderID)
}

// Add bookmarks a business in the given folder.
func (s *BookmarkService) Add(ctx context.Context, folderID, businessID string) error {
	// The business must exist before it can be bookmarked.
	if _, err := s.store.GetBusinessByID(ctx, businessID); err != nil {
		return err
	}
	return s.store.AddBookmark(ctx, folderID, businessID)
}

// Remove deletes a bookmark from the given folder.
func (s *BookmarkService) Remove(ctx context.Context, folderID, businessID string) error {
	return s.store.RemoveBookmark(ctx, folderID, businessID)
}

// SetNote attaches a note to an existing bookmark.
func (s *BookmarkService) SetNote(ctx context.Context, folderID, businessID, note string) error {
	return s.store.SetBookmarkNote(ctx, folderID, businessID, note)
}

// IsBookmarked reports whether the business is bookmarked in any folder.
func (s *BookmarkService) IsBookmarked(ctx context.Context, businessID string) (bool, error) {
	return s.store.IsBookmarked(ctx, businessID)
}
