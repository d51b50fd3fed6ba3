package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

func (s *Server) registerDealRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listDeals",
		Method:      http.MethodGet,
		Path:        "/api/v1/deals",
		Summary:     "List deals",
		Description: "Returns all deals; pass active=true for only currently redeemable ones",
		Tags:        []string{"Deals"},
	}, s.handleListDeals)

	huma.Register(s.api, huma.Operation{
		OperationID: "listBusinessDeals",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses/{id}/deals",
		Summary:     "List business deals",
		Tags:        []string{"Deals"},
	}, s.handleListBusinessDeals)

	huma.Register(s.api, huma.Operation{
		OperationID: "createDeal",
		Method:      http.MethodPost,
		Path:        "/api/v1/deals",
		Summary:     "Create deal",
		Tags:        []string{"Deals"},
	}, s.handleCreateDeal)

	huma.Register(s.api, huma.Operation{
		OperationID: "redeemDeal",
		Method:      http.MethodPost,
		Path:        "/api/v1/deals/{id}/redeem",
		Summary:     "Redeem deal",
		Description: "Consumes one redemption; exhausted deals return 409",
		Tags:        []string{"Deals"},
	}, s.handleRedeemDeal)
}

// === DTOs ===

// ListDealsInput selects all or only active deals.
type ListDealsInput struct {
	Active bool `query:"active" doc:"Only deals inside their validity window with redemptions left"`
}

// DealListOutput wraps a list of deals.
type DealListOutput struct {
	Body struct {
		Deals []domain.Deal `json:"deals"`
		Total int           `json:"total"`
	}
}

// BusinessDealsInput identifies the business whose deals to list.
type BusinessDealsInput struct {
	ID string `path:"id" doc:"Business ID"`
}

// CreateDealInput is the deal creation payload.
type CreateDealInput struct {
	Body struct {
		BusinessID         string    `json:"business_id" validate:"required" doc:"Business the deal belongs to"`
		Title              string    `json:"title" validate:"required,min=1,max=120"`
		Description        string    `json:"description,omitempty" validate:"omitempty,max=1000"`
		DealType           string    `json:"deal_type" validate:"required,oneof=percentage bogo fixed freebie" doc:"One of: percentage, bogo, fixed, freebie"`
		DiscountPercent    int       `json:"discount_percent,omitempty" validate:"omitempty,gte=0,lte=100"`
		OriginalPrice      float64   `json:"original_price,omitempty" validate:"omitempty,gte=0"`
		DealPrice          float64   `json:"deal_price,omitempty" validate:"omitempty,gte=0"`
		Code               string    `json:"code,omitempty" validate:"omitempty,max=30"`
		TermsAndConditions string    `json:"terms_and_conditions,omitempty" validate:"omitempty,max=1000"`
		ValidFrom          time.Time `json:"valid_from" validate:"required"`
		ExpiresAt          time.Time `json:"expires_at" validate:"required"`
		MaxRedemptions     int       `json:"max_redemptions" validate:"required,gte=1"`
	}
}

// DealOutput wraps one deal.
type DealOutput struct {
	Body domain.Deal
}

// RedeemDealInput identifies the deal to redeem.
type RedeemDealInput struct {
	ID string `path:"id" doc:"Deal ID"`
}

// === Handlers ===

func (s *Server) handleListDeals(ctx context.Context, input *ListDealsInput) (*DealListOutput, error) {
	var (
		deals []domain.Deal
		err   error
	)
	if input.Active {
		deals, err = s.services.Deal.ListActiveDeals(ctx)
	} else {
		deals, err = s.services.Deal.ListDeals(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := &DealListOutput{}
	out.Body.Deals = deals
	out.Body.Total = len(deals)
	return out, nil
}

func (s *Server) handleListBusinessDeals(ctx context.Context, input *BusinessDealsInput) (*DealListOutput, error) {
	deals, err := s.services.Deal.ListByBusiness(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	out := &DealListOutput{}
	out.Body.Deals = deals
	out.Body.Total = len(deals)
	return out, nil
}

func (s *Server) handleCreateDeal(ctx context.Context, input *CreateDealInput) (*DealOutput, error) {
	deal := &domain.Deal{
		BusinessID:         input.Body.BusinessID,
		Title:              input.Body.Title,
		Description:        input.Body.Description,
		DealType:           domain.DealType(input.Body.DealType),
		DiscountPercent:    input.Body.DiscountPercent,
		OriginalPrice:      input.Body.OriginalPrice,
		DealPrice:          input.Body.DealPrice,
		Code:               input.Body.Code,
		TermsAndConditions: input.Body.TermsAndConditions,
		ValidFrom:          input.Body.ValidFrom,
		ExpiresAt:          input.Body.ExpiresAt,
		IsActive:           true,
		MaxRedemptions:     input.Body.MaxRedemptions,
	}

	if err := s.services.Deal.Create(ctx, deal); err != nil {
		return nil, err
	}
	return &DealOutput{Body: *deal}, nil
}

func (s *Server) handleRedeemDeal(ctx context.Context, input *RedeemDealInput) (*DealOutput, error) {
	deal, err := s.services.Deal.Redeem(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &DealOutput{Body: *deal}, nil
}
