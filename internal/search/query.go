package search

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Params configures a search query.
type Params struct {
	Query string // User's search query

	// Filters
	Categories    []string // Filter by exact category slugs
	Subcategories []string // Filter by exact subcategory slugs
	Tags          []string // Filter by exact tags
	MinPrice      int      // Minimum price level (1-4)
	MaxPrice      int      // Maximum price level
	MinRating     float64  // Minimum average rating

	// Pagination
	Limit  int
	Offset int

	// Sorting
	SortBy    string // "relevance", "name", "rating", "reviews", "recent"
	SortOrder string // "asc", "desc"

	// Options
	IncludeFacets bool     // Include facet counts in results
	FacetFields   []string // Which fields to facet on
	Highlight     bool     // Include match highlighting
}

// DefaultParams returns sensible defaults.
func DefaultParams() Params {
	return Params{
		Limit:         20,
		Offset:        0,
		SortBy:        "relevance",
		SortOrder:     "desc",
		IncludeFacets: true,
		FacetFields:   []string{"category", "tags"},
		Highlight:     true,
	}
}

// Result represents the search results.
type Result struct {
	Query  string `json:"query"`
	Total  uint64 `json:"total"`
	TookMs int64  `json:"took_ms"`
	Hits   []Hit  `json:"hits"`
	Facets Facets `json:"facets,omitempty"`
}

// Hit represents a single search result.
type Hit struct {
	ID            string            `json:"id"`
	Score         float64           `json:"score"`
	Name          string            `json:"name"`
	Category      string            `json:"category,omitempty"`
	Subcategory   string            `json:"subcategory,omitempty"`
	City          string            `json:"city,omitempty"`
	PriceLevel    int               `json:"price_level,omitempty"`
	AverageRating float64           `json:"average_rating,omitempty"`
	TotalReviews  int               `json:"total_reviews,omitempty"`
	Highlights    map[string]string `json:"highlights,omitempty"`
}

// Facets contains facet counts.
type Facets struct {
	Categories []FacetCount `json:"categories,omitempty"`
	Tags       []FacetCount `json:"tags,omitempty"`
}

// FacetCount represents a facet value and its count.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Search executes a search query.
func (s *Index) Search(ctx context.Context, params Params) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	searchQuery := buildSearchQuery(params)
	searchRequest := bleve.NewSearchRequestOptions(searchQuery, params.Limit, params.Offset, false)

	addSorting(searchRequest, params)

	if params.IncludeFacets {
		addFacets(searchRequest, params)
	}

	if params.Highlight {
		searchRequest.Highlight = bleve.NewHighlight()
		searchRequest.Highlight.AddField("name")
	}

	searchRequest.Fields = []string{
		"id", "name", "category", "subcategory", "city",
		"price_level", "average_rating", "total_reviews",
	}

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &Result{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		searchHit := Hit{
			ID:    hit.ID,
			Score: hit.Score,
		}

		if n, ok := hit.Fields["name"].(string); ok {
			searchHit.Name = n
		}
		if c, ok := hit.Fields["category"].(string); ok {
			searchHit.Category = c
		}
		if sc, ok := hit.Fields["subcategory"].(string); ok {
			searchHit.Subcategory = sc
		}
		if city, ok := hit.Fields["city"].(string); ok {
			searchHit.City = city
		}
		if p, ok := hit.Fields["price_level"].(float64); ok {
			searchHit.PriceLevel = int(p)
		}
		if r, ok := hit.Fields["average_rating"].(float64); ok {
			searchHit.AverageRating = r
		}
		if tr, ok := hit.Fields["total_reviews"].(float64); ok {
			searchHit.TotalReviews = int(tr)
		}

		if len(hit.Fragments) > 0 {
			searchHit.Highlights = make(map[string]string)
			for field, fragments := range hit.Fragments {
				if len(fragments) > 0 {
					searchHit.Highlights[field] = fragments[0]
				}
			}
		}

		result.Hits = append(result.Hits, searchHit)
	}

	if params.IncludeFacets {
		result.Facets = extractFacets(searchResult)
	}

	return result, nil
}

// buildSearchQuery constructs the Bleve query from params.
func buildSearchQuery(params Params) query.Query {
	var queries []query.Query

	// Main text query. Name is boosted over description so "pho" ranks the
	// pho restaurant above a cafe that mentions pho in passing.
	if params.Query != "" {
		textQueries := []query.Query{}

		nameMatch := bleve.NewMatchQuery(params.Query)
		nameMatch.SetField("name")
		nameMatch.SetBoost(3.0)
		textQueries = append(textQueries, nameMatch)

		descMatch := bleve.NewMatchQuery(params.Query)
		descMatch.SetField("description")
		textQueries = append(textQueries, descMatch)

		tagMatch := bleve.NewTermQuery(strings.ToLower(params.Query))
		tagMatch.SetField("tags")
		tagMatch.SetBoost(2.0)
		textQueries = append(textQueries, tagMatch)

		// Fuzzy matching for typo tolerance on name
		fuzzyQuery := bleve.NewFuzzyQuery(params.Query)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("name")
		fuzzyQuery.SetBoost(0.8)
		textQueries = append(textQueries, fuzzyQuery)

		// Prefix query for autocomplete (minimum 2 chars)
		if len(params.Query) >= 2 {
			prefixQuery := bleve.NewPrefixQuery(strings.ToLower(params.Query))
			prefixQuery.SetField("name")
			prefixQuery.SetBoost(0.5)
			textQueries = append(textQueries, prefixQuery)
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	// Category filter (exact match, OR across slugs)
	if len(params.Categories) > 0 {
		categoryQueries := make([]query.Query, len(params.Categories))
		for i, c := range params.Categories {
			cq := bleve.NewTermQuery(c)
			cq.SetField("category")
			categoryQueries[i] = cq
		}
		queries = append(queries, bleve.NewDisjunctionQuery(categoryQueries...))
	}

	if len(params.Subcategories) > 0 {
		subQueries := make([]query.Query, len(params.Subcategories))
		for i, sc := range params.Subcategories {
			sq := bleve.NewTermQuery(sc)
			sq.SetField("subcategory")
			subQueries[i] = sq
		}
		queries = append(queries, bleve.NewDisjunctionQuery(subQueries...))
	}

	if len(params.Tags) > 0 {
		tagQueries := make([]query.Query, len(params.Tags))
		for i, t := range params.Tags {
			tq := bleve.NewTermQuery(strings.ToLower(t))
			tq.SetField("tags")
			tagQueries[i] = tq
		}
		queries = append(queries, bleve.NewDisjunctionQuery(tagQueries...))
	}

	// Price range filter
	if params.MinPrice > 0 || params.MaxPrice > 0 {
		min := float64(params.MinPrice)
		max := float64(params.MaxPrice)
		if params.MaxPrice == 0 {
			max = 4
		}
		rangeQuery := bleve.NewNumericRangeQuery(&min, &max)
		rangeQuery.SetField("price_level")
		queries = append(queries, rangeQuery)
	}

	// Minimum rating filter
	if params.MinRating > 0 {
		min := params.MinRating
		max := math.MaxFloat64
		rangeQuery := bleve.NewNumericRangeQuery(&min, &max)
		rangeQuery.SetField("average_rating")
		queries = append(queries, rangeQuery)
	}

	// Combine all queries with AND
	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewConjunctionQuery(queries...)
}

// addSorting configures sort order.
func addSorting(req *bleve.SearchRequest, params Params) {
	switch params.SortBy {
	case "name":
		if params.SortOrder == "desc" {
			req.SortBy([]string{"-name"})
		} else {
			req.SortBy([]string{"name"})
		}
	case "rating":
		if params.SortOrder == "asc" {
			req.SortBy([]string{"average_rating", "name"})
		} else {
			req.SortBy([]string{"-average_rating", "name"})
		}
	case "reviews":
		if params.SortOrder == "asc" {
			req.SortBy([]string{"total_reviews"})
		} else {
			req.SortBy([]string{"-total_reviews"})
		}
	case "recent":
		if params.SortOrder == "asc" {
			req.SortBy([]string{"created_at"})
		} else {
			req.SortBy([]string{"-created_at"})
		}
	default:
		// Relevance (score) is default - Bleve handles this
		req.SortBy([]string{"-_score"})
	}
}

// addFacets configures facet requests.
func addFacets(req *bleve.SearchRequest, params Params) {
	for _, field := range params.FacetFields {
		facetReq := bleve.NewFacetRequest(field, 20) // Top 20 values
		req.AddFacet(field, facetReq)
	}
}

// extractFacets converts Bleve facets to our format.
func extractFacets(result *bleve.SearchResult) Facets {
	facets := Facets{}

	if categoryFacet, ok := result.Facets["category"]; ok {
		for _, term := range categoryFacet.Terms.Terms() {
			facets.Categories = append(facets.Categories, FacetCount{
				Value: term.Term,
				Count: term.Count,
			})
		}
	}

	if tagFacet, ok := result.Facets["tags"]; ok {
		for _, term := range tagFacet.Terms.Terms() {
			facets.Tags = append(facets.Tags, FacetCount{
				Value: term.Term,
				Count: term.Count,
			})
		}
	}

	return facets
}
