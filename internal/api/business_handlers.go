package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/id"
	"github.com/brightsideapp/brightside-server/internal/service"
	"github.com/brightsideapp/brightside-server/internal/store"
)

func (s *Server) registerBusinessRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBusinesses",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses",
		Summary:     "List businesses",
		Description: "Returns businesses matching the given filters",
		Tags:        []string{"Businesses"},
	}, s.handleListBusinesses)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBusiness",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses/{id}",
		Summary:     "Get business",
		Description: "Returns one business with open state, bookmark state, and distance",
		Tags:        []string{"Businesses"},
	}, s.handleGetBusiness)

	huma.Register(s.api, huma.Operation{
		OperationID: "createBusiness",
		Method:      http.MethodPost,
		Path:        "/api/v1/businesses",
		Summary:     "Create business",
		Description: "Adds a business to the directory",
		Tags:        []string{"Businesses"},
	}, s.handleCreateBusiness)

	huma.Register(s.api, huma.Operation{
		OperationID: "nearbyBusinesses",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses/nearby",
		Summary:     "Nearby businesses",
		Description: "Returns businesses around the current location, nearest first",
		Tags:        []string{"Businesses"},
	}, s.handleNearbyBusinesses)

	huma.Register(s.api, huma.Operation{
		OperationID: "openBusinesses",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses/open",
		Summary:     "Open businesses",
		Description: "Returns the subset of matching businesses currently open",
		Tags:        []string{"Businesses"},
	}, s.handleOpenBusinesses)
}

// === DTOs ===

// ListBusinessesInput contains filter and sort parameters.
type ListBusinessesInput struct {
	Search      string  `query:"q" validate:"omitempty,max=200" doc:"Search text over name, description, and tags"`
	Category    string  `query:"category" validate:"omitempty,max=50" doc:"Filter by category slug"`
	Subcategory string  `query:"subcategory" validate:"omitempty,max=50" doc:"Filter by subcategory"`
	PriceLevels string  `query:"price" validate:"omitempty,max=20" doc:"Comma-separated price levels (1-4)"`
	MinRating   float64 `query:"min_rating" validate:"omitempty,gte=0,lte=5" doc:"Minimum average rating"`
	SortBy      string  `query:"sort" validate:"omitempty,oneof=rating reviews name price" doc:"Sort field"`
	SortOrder   string  `query:"order" validate:"omitempty,oneof=asc desc" doc:"Sort direction"`
}

// BusinessListOutput wraps a list of annotated businesses.
type BusinessListOutput struct {
	Body struct {
		Businesses []service.BusinessDetail `json:"businesses"`
		Total      int                      `json:"total"`
	}
}

// GetBusinessInput identifies a single business.
type GetBusinessInput struct {
	ID string `path:"id" doc:"Business ID"`
}

// BusinessOutput wraps one annotated business.
type BusinessOutput struct {
	Body service.BusinessDetail
}

// CreateBusinessInput is the payload for adding a business.
type CreateBusinessInput struct {
	Body struct {
		ID          string                     `json:"id,omitempty" doc:"Optional explicit ID; generated when empty"`
		Name        string                     `json:"name" validate:"required,min=1,max=120" doc:"Business name"`
		Description string                     `json:"description,omitempty" validate:"omitempty,max=2000"`
		Category    string                     `json:"category" validate:"required,max=50"`
		Subcategory string                     `json:"subcategory,omitempty" validate:"omitempty,max=50"`
		Address     string                     `json:"address,omitempty"`
		City        string                     `json:"city,omitempty"`
		State       string                     `json:"state,omitempty"`
		Zip         string                     `json:"zip,omitempty"`
		Phone       string                     `json:"phone,omitempty"`
		Email       string                     `json:"email,omitempty" validate:"omitempty,email"`
		Website     string                     `json:"website,omitempty" validate:"omitempty,url"`
		Hours       map[string]domain.DayHours `json:"hours,omitempty"`
		PriceLevel  int                        `json:"price_level,omitempty" validate:"omitempty,gte=1,lte=4"`
		Latitude    float64                    `json:"latitude,omitempty"`
		Longitude   float64                    `json:"longitude,omitempty"`
		Tags        []string                   `json:"tags,omitempty" validate:"omitempty,max=10,dive,max=30"`
	}
}

// CreateBusinessOutput returns the stored business.
type CreateBusinessOutput struct {
	Body domain.Business
}

// === Handlers ===

func (s *Server) handleListBusinesses(ctx context.Context, input *ListBusinessesInput) (*BusinessListOutput, error) {
	filters := filtersFromInput(input)

	details, err := s.services.Directory.ListBusinesses(ctx, filters)
	if err != nil {
		s.logger.Error("Failed to list businesses", "error", err)
		return nil, err
	}

	out := &BusinessListOutput{}
	out.Body.Businesses = details
	out.Body.Total = len(details)
	return out, nil
}

func (s *Server) handleGetBusiness(ctx context.Context, input *GetBusinessInput) (*BusinessOutput, error) {
	detail, err := s.services.Directory.GetBusiness(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &BusinessOutput{Body: *detail}, nil
}

func (s *Server) handleCreateBusiness(ctx context.Context, input *CreateBusinessInput) (*CreateBusinessOutput, error) {
	businessID := input.Body.ID
	if businessID == "" {
		generated, err := id.Generate(id.Business)
		if err != nil {
			return nil, err
		}
		businessID = generated
	}

	business := &domain.Business{
		ID:          businessID,
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Category:    input.Body.Category,
		Subcategory: input.Body.Subcategory,
		Address:     input.Body.Address,
		City:        input.Body.City,
		State:       input.Body.State,
		Zip:         input.Body.Zip,
		Phone:       input.Body.Phone,
		Email:       input.Body.Email,
		Website:     input.Body.Website,
		Hours:       input.Body.Hours,
		PriceLevel:  input.Body.PriceLevel,
		Latitude:    input.Body.Latitude,
		Longitude:   input.Body.Longitude,
		Tags:        input.Body.Tags,
		CreatedAt:   time.Now(),
	}

	if err := s.services.Directory.AddBusiness(ctx, business); err != nil {
		return nil, err
	}
	return &CreateBusinessOutput{Body: *business}, nil
}

func (s *Server) handleNearbyBusinesses(ctx context.Context, _ *struct{}) (*BusinessListOutput, error) {
	details, err := s.services.Directory.NearbyBusinesses(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch nearby businesses", "error", err)
		return nil, err
	}

	out := &BusinessListOutput{}
	out.Body.Businesses = details
	out.Body.Total = len(details)
	return out, nil
}

func (s *Server) handleOpenBusinesses(ctx context.Context, input *ListBusinessesInput) (*BusinessListOutput, error) {
	details, err := s.services.Directory.OpenNow(ctx, filtersFromInput(input))
	if err != nil {
		return nil, err
	}

	out := &BusinessListOutput{}
	out.Body.Businesses = details
	out.Body.Total = len(details)
	return out, nil
}

// filtersFromInput converts query parameters into store filters.
func filtersFromInput(input *ListBusinessesInput) store.BusinessFilters {
	filters := store.BusinessFilters{
		Search:      input.Search,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		MinRating:   input.MinRating,
		SortBy:      input.SortBy,
		SortOrder:   input.SortOrder,
	}

	if input.PriceLevels != "" {
		for part := range strings.SplitSeq(input.PriceLevels, ",") {
			level, err := strconv.Atoi(strings.TrimSpace(part))
			if err == nil && level >= 1 && level <= 4 {
				filters.PriceLevels = append(filters.PriceLevels, level)
			}
		}
	}

	return filters
}
