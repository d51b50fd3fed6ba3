package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

func TestListBookmarkFolders_DefaultAlwaysPresent(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/bookmarks/folders")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[struct {
		Folders []domain.BookmarkFolder `json:"folders"`
	}](t, resp.Body.Bytes())

	require.NotEmpty(t, envelope.Data.Folders)
	assert.Equal(t, domain.DefaultFolderID, envelope.Data.Folders[0].ID)
}

func TestCreateBookmarkFolder(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Post("/api/v1/bookmarks/folders", map[string]any{
		"name":  "Date Night",
		"color": "#ff6b6b",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[domain.BookmarkFolder](t, resp.Body.Bytes())
	assert.Equal(t, "Date Night", envelope.Data.Name)
	assert.NotEmpty(t, envelope.Data.ID)
}

func TestCreateBookmarkFolder_DuplicateName(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Post("/api/v1/bookmarks/folders", map[string]any{"name": "Brunch Spots"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Post("/api/v1/bookmarks/folders", map[string]any{"name": "Brunch Spots"})
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "CONFLICT")
}

func TestBookmarkLifecycle(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	// Add to the default folder.
	resp := ts.api.Post("/api/v1/bookmarks/folders/default/businesses", map[string]any{
		"business_id": "biz-0002",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	// Bookmark state shows up on the business detail.
	resp = ts.api.Get("/api/v1/businesses/biz-0002")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"bookmarked":true`)

	// Attach a note.
	resp = ts.api.Put("/api/v1/bookmarks/folders/default/businesses/biz-0002/note", map[string]any{
		"note": "Try the Ethiopia pour over",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/bookmarks/folders")
	envelope := decodeEnvelope[struct {
		Folders []domain.BookmarkFolder `json:"folders"`
	}](t, resp.Body.Bytes())
	assert.Equal(t, "Try the Ethiopia pour over", envelope.Data.Folders[0].Notes["biz-0002"])

	// Remove again.
	resp = ts.api.Delete("/api/v1/bookmarks/folders/default/businesses/biz-0002")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/businesses/biz-0002")
	assert.Contains(t, resp.Body.String(), `"bookmarked":false`)
}

func TestAddBookmark_UnknownBusiness(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Post("/api/v1/bookmarks/folders/default/businesses", map[string]any{
		"business_id": "biz-9999",
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteBookmarkFolder(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Post("/api/v1/bookmarks/folders", map[string]any{"name": "Temporary"})
	require.Equal(t, http.StatusOK, resp.Code)
	envelope := decodeEnvelope[domain.BookmarkFolder](t, resp.Body.Bytes())

	resp = ts.api.Delete("/api/v1/bookmarks/folders/" + envelope.Data.ID)
	assert.Equal(t, http.StatusOK, resp.Code)

	// Deleting the default folder is a silent no-op.
	resp = ts.api.Delete("/api/v1/bookmarks/folders/default")
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/bookmarks/folders")
	list := decodeEnvelope[struct {
		Folders []domain.BookmarkFolder `json:"folders"`
	}](t, resp.Body.Bytes())
	assert.Equal(t, domain.DefaultFolderID, list.Data.Folders[0].ID)
}
