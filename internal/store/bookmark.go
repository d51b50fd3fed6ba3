package store

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/brightsideapp/brightside-server/internal/color"
	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/id"
)

// GetBookmarkFolders returns all folders. The default folder is created
// lazily if the collection is empty or missing it.
func (s *Store) GetBookmarkFolders(_ context.Context) ([]domain.BookmarkFolder, error) {
	var folders []domain.BookmarkFolder
	err := s.db.Update(func(txn *badger.Txn) error {
		loaded, err := foldersInTxn(txn, s)
		if err != nil {
			return err
		}
		folders = loaded
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get bookmark folders: %w", err)
	}
	return folders, nil
}

// CreateBookmarkFolder adds a new folder. Names must be unique
// case-sensitively across folders. An empty color gets a stable color
// derived from the name.
func (s *Store) CreateBookmarkFolder(_ context.Context, name, folderColor string) (*domain.BookmarkFolder, error) {
	if folderColor == "" {
		folderColor = color.ForName(name)
	}
	var created domain.BookmarkFolder
	err := s.db.Update(func(txn *badger.Txn) error {
		folders, err := foldersInTxn(txn, s)
		if err != nil {
			return err
		}
		for i := range folders {
			if folders[i].Name == name {
				return ErrDuplicateFolder
			}
		}
		created = domain.BookmarkFolder{
			ID:          id.MustGenerate(id.Folder),
			Name:        name,
			Color:       folderColor,
			BusinessIDs: []string{},
			Notes:       map[string]string{},
			CreatedAt:   s.now(),
		}
		folders = append(folders, created)
		return setInTxn(txn, KeyBookmarks, folders)
	})
	if err != nil {
		return nil, err
	}

	s.emit("bookmark", "added", created.ID)
	if s.logger != nil {
		s.logger.Info("bookmark folder created", "folder_id", created.ID, "name", name)
	}
	return &created, nil
}

// DeleteBookmarkFolder removes a folder and its bookmarks. Deleting the
// default folder is a silent no-op.
func (s *Store) DeleteBookmarkFolder(_ context.Context, folderID string) error {
	if folderID == domain.DefaultFolderID {
		return nil
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		folders, err := foldersInTxn(txn, s)
		if err != nil {
			return err
		}
		for i := range folders {
			if folders[i].ID == folderID {
				folders = append(folders[:i], folders[i+1:]...)
				return setInTxn(txn, KeyBookmarks, folders)
			}
		}
		return ErrFolderNotFound
	})
	if err != nil {
		return err
	}

	s.emit("bookmark", "updated", folderID)
	return nil
}

// AddBookmark saves a business into a folder. Adding an already bookmarked
// business is a no-op, preserving set semantics.
func (s *Store) AddBookmark(_ context.Context, folderID, businessID string) error {
	err := s.updateFolder(folderID, func(f *domain.BookmarkFolder) error {
		f.AddBusiness(businessID)
		return nil
	})
	if err != nil {
		return err
	}
	s.emit("bookmark", "added", businessID)
	return nil
}

// RemoveBookmark removes a business and its note from a folder.
func (s *Store) RemoveBookmark(_ context.Context, folderID, businessID string) error {
	err := s.updateFolder(folderID, func(f *domain.BookmarkFolder) error {
		f.RemoveBusiness(businessID)
		return nil
	})
	if err != nil {
		return err
	}
	s.emit("bookmark", "updated", businessID)
	return nil
}

// SetBookmarkNote attaches a note to a bookmarked business.
// Fails with ErrBusinessNotFound if the business is not in the folder.
func (s *Store) SetBookmarkNote(_ context.Context, folderID, businessID, note string) error {
	err := s.updateFolder(folderID, func(f *domain.BookmarkFolder) error {
		if !f.SetNote(businessID, note) {
			return ErrBusinessNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.emit("bookmark", "updated", businessID)
	return nil
}

// IsBookmarked reports whether the business is saved in any folder.
func (s *Store) IsBookmarked(ctx context.Context, businessID string) (bool, error) {
	folders, err := s.GetBookmarkFolders(ctx)
	if err != nil {
		return false, err
	}
	for i := range folders {
		if folders[i].Contains(businessID) {
			return true, nil
		}
	}
	return false, nil
}

// updateFolder applies fn to one folder and persists the collection.
func (s *Store) updateFolder(folderID string, fn func(*domain.BookmarkFolder) error) error {
	return s.db.Update(func(txn *badger.Txn) error {
		folders, err := foldersInTxn(txn, s)
		if err != nil {
			return err
		}
		for i := range folders {
			if folders[i].ID == folderID {
				if err := fn(&folders[i]); err != nil {
					return err
				}
				return setInTxn(txn, KeyBookmarks, folders)
			}
		}
		return ErrFolderNotFound
	})
}

// foldersInTxn loads the folder collection, inserting the default folder if it
// is missing. The default folder always exists for callers.
func foldersInTxn(txn *badger.Txn, s *Store) ([]domain.BookmarkFolder, error) {
	folders, err := listInTxn[domain.BookmarkFolder](txn, KeyBookmarks)
	if err != nil {
		return nil, err
	}
	for i := range folders {
		if folders[i].ID == domain.DefaultFolderID {
			return folders, nil
		}
	}
	folders = append([]domain.BookmarkFolder{domain.NewDefaultFolder(s.now())}, folders...)
	if err := setInTxn(txn, KeyBookmarks, folders); err != nil {
		return nil, err
	}
	return folders, nil
}
