package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsideapp/brightside-server/internal/search"
)

func TestSearch_FindsSeededBusiness(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/search?q=coffee")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[search.Result](t, resp.Body.Bytes())
	require.NotZero(t, envelope.Data.Total)

	found := false
	for _, hit := range envelope.Data.Hits {
		if hit.Name == "Mission Blue Coffee" {
			found = true
		}
	}
	assert.True(t, found, "expected Mission Blue Coffee in hits")
}

func TestSearch_NoResults(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/search?q=zzzxqwvolcano")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[search.Result](t, resp.Body.Bytes())
	assert.Zero(t, envelope.Data.Total)
	assert.Empty(t, envelope.Data.Hits)
}

func TestSearch_CategoryFilter(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/search?q=classic&categories=services")
	require.Equal(t, http.StatusOK, resp.Code)

	// "classic" appears in both a restaurant and a barbershop description;
	// the category filter keeps only the service.
	envelope := decodeEnvelope[search.Result](t, resp.Body.Bytes())
	require.NotZero(t, envelope.Data.Total)
	for _, hit := range envelope.Data.Hits {
		assert.Equal(t, "services", hit.Category)
	}
}

func TestSearch_WithFacets(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/search?q=coffee&facets=true")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[search.Result](t, resp.Body.Bytes())
	assert.NotEmpty(t, envelope.Data.Facets.Categories)
}

func TestSearch_Pagination(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/search?q=classic&limit=1")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[search.Result](t, resp.Body.Bytes())
	assert.GreaterOrEqual(t, envelope.Data.Total, uint64(2))
	assert.Len(t, envelope.Data.Hits, 1)
}
