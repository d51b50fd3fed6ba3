package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/brightsideapp/brightside-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search businesses",
		Description: "Full-text search over the business directory with facets and filters",
		Tags:        []string{"Search"},
	}, s.handleSearch)
}

// === DTOs ===

// SearchInput contains parameters for searching the directory.
type SearchInput struct {
	Query      string  `query:"q" validate:"required,min=1,max=200" doc:"Search query"`
	Categories string  `query:"categories" validate:"omitempty,max=200" doc:"Comma-separated category slugs"`
	Tags       string  `query:"tags" validate:"omitempty,max=200" doc:"Comma-separated tags"`
	MinPrice   int     `query:"min_price" validate:"omitempty,gte=1,lte=4" doc:"Minimum price level"`
	MaxPrice   int     `query:"max_price" validate:"omitempty,gte=1,lte=4" doc:"Maximum price level"`
	MinRating  float64 `query:"min_rating" validate:"omitempty,gte=0,lte=5" doc:"Minimum average rating"`
	Limit      int     `query:"limit" validate:"omitempty,gte=1,lte=100" doc:"Max results (default 20)"`
	Offset     int     `query:"offset" validate:"omitempty,gte=0" doc:"Pagination offset"`
	Sort       string  `query:"sort" validate:"omitempty,oneof=relevance name rating reviews recent" doc:"Sort field"`
	Order      string  `query:"order" validate:"omitempty,oneof=asc desc" doc:"Sort direction"`
	Facets     bool    `query:"facets" doc:"Include facet counts in response"`
}

// SearchOutput wraps the search result for Huma.
type SearchOutput struct {
	Body search.Result
}

// === Handlers ===

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	params := search.DefaultParams()
	params.Query = input.Query
	params.MinPrice = input.MinPrice
	params.MaxPrice = input.MaxPrice
	params.MinRating = input.MinRating
	params.IncludeFacets = input.Facets

	if input.Limit > 0 {
		params.Limit = input.Limit
	}
	params.Offset = input.Offset

	if input.Sort != "" {
		params.SortBy = input.Sort
	}
	if input.Order != "" {
		params.SortOrder = input.Order
	}

	params.Categories = splitCommaList(input.Categories)
	params.Tags = splitCommaList(input.Tags)

	result, err := s.services.Search.Search(ctx, params)
	if err != nil {
		s.logger.Error("Search failed", "error", err, "query", input.Query)
		return nil, err
	}

	s.logger.Debug("Search completed",
		"query", input.Query,
		"total", result.Total,
		"took_ms", result.TookMs,
	)

	return &SearchOutput{Body: *result}, nil
}

// splitCommaList parses a comma-separated query value into trimmed parts.
func splitCommaList(raw string) []string {
	if raw == "" {
		return nil
	}

	var parts []string
	for part := range strings.SplitSeq(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
