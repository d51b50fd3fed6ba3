package search

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

// setupTestIndex creates a temporary search index for testing.
func setupTestIndex(t *testing.T) (*Index, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "search-test-*")
	require.NoError(t, err)

	index, err := NewIndex(Options{
		DataPath: tmpDir,
		Logger:   nil,
	})
	require.NoError(t, err)

	cleanup := func() {
		_ = index.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return index, cleanup
}

func indexFixtures(t *testing.T, index *Index) {
	t.Helper()

	docs := []*BusinessDocument{
		{ID: "biz-1", Name: "Golden Gate Grill", Description: "Classic American diner with hearty burgers", Category: "restaurants", Subcategory: "american", City: "San Francisco", Tags: []string{"burgers", "breakfast"}, PriceLevel: 2, AverageRating: 4.5, TotalReviews: 30},
		{ID: "biz-2", Name: "Mission Blue Coffee", Description: "Small-batch roaster with pour overs", Category: "restaurants", Subcategory: "cafe", City: "San Francisco", Tags: []string{"coffee", "wifi"}, PriceLevel: 2, AverageRating: 4.8, TotalReviews: 55},
		{ID: "biz-3", Name: "Sunset Cuts Barbershop", Description: "Classic cuts and hot towel shaves", Category: "services", Subcategory: "barber", City: "San Francisco", Tags: []string{"haircut"}, PriceLevel: 1, AverageRating: 4.0, TotalReviews: 12},
		{ID: "biz-4", Name: "Pho Saigon Palace", Description: "Vietnamese kitchen known for rich broth pho", Category: "restaurants", Subcategory: "vietnamese", City: "San Francisco", Tags: []string{"pho", "takeout"}, PriceLevel: 1, AverageRating: 4.9, TotalReviews: 80},
	}
	require.NoError(t, index.IndexDocuments(docs))
}

func TestNewIndex(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestIndex_IndexDocument(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	doc := BusinessToDocument(&domain.Business{
		ID:            "biz-123",
		Name:          "Green Apple Books",
		Category:      "shopping",
		Tags:          []string{"Books", "Used-Books"},
		AverageRating: 4.7,
		CreatedAt:     time.Now(),
	})
	// Tags are lowercased on conversion for exact keyword matching.
	assert.Equal(t, []string{"books", "used-books"}, doc.Tags)

	require.NoError(t, index.IndexDocument(doc))

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestSearch_ByName(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()
	indexFixtures(t, index)

	params := DefaultParams()
	params.Query = "pho"

	result, err := index.Search(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "biz-4", result.Hits[0].ID)
}

func TestSearch_ByDescription(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()
	indexFixtures(t, index)

	params := DefaultParams()
	params.Query = "roaster"

	result, err := index.Search(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "biz-2", result.Hits[0].ID)
}

func TestSearch_FuzzyTypo(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()
	indexFixtures(t, index)

	params := DefaultParams()
	params.Query = "barbershp"

	result, err := index.Search(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "biz-3", result.Hits[0].ID)
}

func TestSearch_CategoryFilter(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()
	indexFixtures(t, index)

	params := DefaultParams()
	params.Categories = []string{"services"}

	result, err := index.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "biz-3", result.Hits[0].ID)
}

func TestSearch_PriceAndRatingFilters(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()
	indexFixtures(t, index)

	params := DefaultParams()
	params.MaxPrice = 1
	params.MinRating = 4.5

	result, err := index.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "biz-4", result.Hits[0].ID)
}

func TestSearch_SortByRating(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()
	indexFixtures(t, index)

	params := DefaultParams()
	params.SortBy = "rating"
	params.SortOrder = "desc"

	result, err := index.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result.Hits, 4)
	assert.Equal(t, "biz-4", result.Hits[0].ID)
	assert.Equal(t, "biz-2", result.Hits[1].ID)
}

func TestSearch_Facets(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()
	indexFixtures(t, index)

	result, err := index.Search(context.Background(), DefaultParams())
	require.NoError(t, err)

	require.NotEmpty(t, result.Facets.Categories)
	byValue := map[string]int{}
	for _, f := range result.Facets.Categories {
		byValue[f.Value] = f.Count
	}
	assert.Equal(t, 3, byValue["restaurants"])
	assert.Equal(t, 1, byValue["services"])
}

func TestIndex_DeleteDocument(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()
	indexFixtures(t, index)

	require.NoError(t, index.DeleteDocument("biz-1"))

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}
