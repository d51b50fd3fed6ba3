package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

func (s *Server) registerBookmarkRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBookmarkFolders",
		Method:      http.MethodGet,
		Path:        "/api/v1/bookmarks/folders",
		Summary:     "List bookmark folders",
		Description: "Returns all bookmark folders, default folder first",
		Tags:        []string{"Bookmarks"},
	}, s.handleListBookmarkFolders)

	huma.Register(s.api, huma.Operation{
		OperationID: "createBookmarkFolder",
		Method:      http.MethodPost,
		Path:        "/api/v1/bookmarks/folders",
		Summary:     "Create bookmark folder",
		Tags:        []string{"Bookmarks"},
	}, s.handleCreateBookmarkFolder)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteBookmarkFolder",
		Method:      http.MethodDelete,
		Path:        "/api/v1/bookmarks/folders/{id}",
		Summary:     "Delete bookmark folder",
		Description: "Removes a folder; deleting the default folder is a silent no-op",
		Tags:        []string{"Bookmarks"},
	}, s.handleDeleteBookmarkFolder)

	huma.Register(s.api, huma.Operation{
		OperationID: "addBookmark",
		Method:      http.MethodPost,
		Path:        "/api/v1/bookmarks/folders/{id}/businesses",
		Summary:     "Add bookmark",
		Tags:        []string{"Bookmarks"},
	}, s.handleAddBookmark)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeBookmark",
		Method:      http.MethodDelete,
		Path:        "/api/v1/bookmarks/folders/{id}/businesses/{businessID}",
		Summary:     "Remove bookmark",
		Tags:        []string{"Bookmarks"},
	}, s.handleRemoveBookmark)

	huma.Register(s.api, huma.Operation{
		OperationID: "setBookmarkNote",
		Method:      http.MethodPut,
		Path:        "/api/v1/bookmarks/folders/{id}/businesses/{businessID}/note",
		Summary:     "Set bookmark note",
		Tags:        []string{"Bookmarks"},
	}, s.handleSetBookmarkNote)
}

// === DTOs ===

// FolderListOutput wraps all bookmark folders.
type FolderListOutput struct {
	Body struct {
		Folders []domain.BookmarkFolder `json:"folders"`
	}
}

// CreateFolderInput is the folder creation payload.
type CreateFolderInput struct {
	Body struct {
		Name  string `json:"name" validate:"required,min=1,max=60" doc:"Folder name, unique"`
		Color string `json:"color,omitempty" validate:"omitempty,hexcolor" doc:"Display color"`
	}
}

// FolderOutput wraps one bookmark folder.
type FolderOutput struct {
	Body domain.BookmarkFolder
}

// FolderIDInput identifies a folder.
type FolderIDInput struct {
	ID string `path:"id" doc:"Folder ID"`
}

// AddBookmarkInput adds a business to a folder.
type AddBookmarkInput struct {
	ID   string `path:"id" doc:"Folder ID"`
	Body struct {
		BusinessID string `json:"business_id" validate:"required" doc:"Business to bookmark"`
	}
}

// BookmarkRefInput identifies a bookmark inside a folder.
type BookmarkRefInput struct {
	ID         string `path:"id" doc:"Folder ID"`
	BusinessID string `path:"businessID" doc:"Business ID"`
}

// SetNoteInput attaches a note to a bookmark.
type SetNoteInput struct {
	ID         string `path:"id" doc:"Folder ID"`
	BusinessID string `path:"businessID" doc:"Business ID"`
	Body       struct {
		Note string `json:"note" validate:"max=500" doc:"Free-form note; empty clears it"`
	}
}

// StatusOutput is a minimal acknowledgement body.
type StatusOutput struct {
	Body struct {
		Status string `json:"status"`
	}
}

func okStatus() *StatusOutput {
	out := &StatusOutput{}
	out.Body.Status = "ok"
	return out
}

// === Handlers ===

func (s *Server) handleListBookmarkFolders(ctx context.Context, _ *struct{}) (*FolderListOutput, error) {
	folders, err := s.services.Bookmark.ListFolders(ctx)
	if err != nil {
		return nil, err
	}

	out := &FolderListOutput{}
	out.Body.Folders = folders
	return out, nil
}

func (s *Server) handleCreateBookmarkFolder(ctx context.Context, input *CreateFolderInput) (*FolderOutput, error) {
	folder, err := s.services.Bookmark.CreateFolder(ctx, input.Body.Name, input.Body.Color)
	if err != nil {
		return nil, err
	}
	return &FolderOutput{Body: *folder}, nil
}

func (s *Server) handleDeleteBookmarkFolder(ctx context.Context, input *FolderIDInput) (*StatusOutput, error) {
	if err := s.services.Bookmark.DeleteFolder(ctx, input.ID); err != nil {
		return nil, err
	}
	return okStatus(), nil
}

func (s *Server) handleAddBookmark(ctx context.Context, input *AddBookmarkInput) (*StatusOutput, error) {
	if err := s.services.Bookmark.Add(ctx, input.ID, input.Body.BusinessID); err != nil {
		return nil, err
	}
	return okStatus(), nil
}

func (s *Server) handleRemoveBookmark(ctx context.Context, input *BookmarkRefInput) (*StatusOutput, error) {
	if err := s.services.Bookmark.Remove(ctx, input.ID, input.BusinessID); err != nil {
		return nil, err
	}
	return okStatus(), nil
}

func (s *Server) handleSetBookmarkNote(ctx context.Context, input *SetNoteInput) (*StatusOutput, error) {
	if err := s.services.Bookmark.SetNote(ctx, input.ID, input.BusinessID, input.Body.Note); err != nil {
		return nil, err
	}
	return okStatus(), nil
}
