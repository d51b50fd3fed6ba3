package domain

import (
	"slices"
	"time"
)

// DefaultFolderID is the ID of the built-in bookmark folder. It always exists
// and cannot be deleted.
const DefaultFolderID = "default"

// BookmarkFolder is a named, user-organized set of saved business references.
// BusinessIDs has set semantics: a business appears at most once per folder.
// Notes maps a business ID to free-form text and is kept consistent with
// membership (removing a business removes its note).
type BookmarkFolder struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Color       string            `json:"color"`
	BusinessIDs []string          `json:"business_ids"`
	Notes       map[string]string `json:"notes"`
	CreatedAt   time.Time         `json:"created_at"`
}

// NewDefaultFolder returns the built-in Favorites folder.
func NewDefaultFolder(now time.Time) BookmarkFolder {
	return BookmarkFolder{
		ID:          DefaultFolderID,
		Name:        "Favorites",
		Color:       "#3b82f6",
		BusinessIDs: []string{},
		Notes:       map[string]string{},
		CreatedAt:   now,
	}
}

// AddBusiness adds a business ID to the folder. Returns false if already present.
func (f *BookmarkFolder) AddBusiness(businessID string) bool {
	if slices.Contains(f.BusinessIDs, businessID) {
		return false
	}
	f.BusinessIDs = append(f.BusinessIDs, businessID)
	return true
}

// RemoveBusiness removes a business ID and its note from the folder.
// Returns false if the business was not present.
func (f *BookmarkFolder) RemoveBusiness(businessID string) bool {
	for i, bizID := range f.BusinessIDs {
		if bizID == businessID {
			f.BusinessIDs = append(f.BusinessIDs[:i], f.BusinessIDs[i+1:]...)
			delete(f.Notes, businessID)
			return true
		}
	}
	return false
}

// Contains reports whether a business ID is in this folder.
func (f *BookmarkFolder) Contains(businessID string) bool {
	return slices.Contains(f.BusinessIDs, businessID)
}

// SetNote attaches a note to a bookmarked business. Returns false if the
// business is not in the folder.
func (f *BookmarkFolder) SetNote(businessID, note string) bool {
	if !f.Contains(businessID) {
		return false
	}
	if f.Notes == nil {
		f.Notes = map[string]string{}
	}
	f.Notes[businessID] = note
	return true
}
