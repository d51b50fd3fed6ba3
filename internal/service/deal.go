package service

import (
	"context"
	"log/slog"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/store"
)

// DealService orchestrates promotional deals.
type DealService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewDealService creates a new deal service.
func NewDealService(st *store.Store, logger *slog.Logger) *DealService {
	return &DealService{
		store:  st,
		logger: logger,
	}
}

// ListDeals returns every deal, active or not.
func (s *DealService) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	return s.store.GetDeals(ctx)
}

// ListActiveDeals returns deals inside their validity window with
// redemptions remaining.
func (s *DealService) ListActiveDeals(ctx context.Context) ([]domain.Deal, error) {
	return s.store.GetActiveDeals(ctx)
}

// ListByBusiness returns all deals for one business.
func (s *DealService) ListByBusiness(ctx context.Context, businessID string) ([]domain.Deal, error) {
	if _, err := s.store.GetBusinessByID(ctx, businessID); err != nil {
		return nil, err
	}
	return s.store.GetDealsByBusiness(ctx, businessID)
}

// Create stores a new deal.
func (s *DealService) Create(ctx context.Context, deal *domain.Deal) error {
	if err := s.store.CreateDeal(ctx, deal); err != nil {
		return err
	}
	s.logger.Info("deal created",
		"deal_id", deal.ID,
		"business_id", deal.BusinessID,
		"type", deal.DealType)
	return nil
}

// Redeem consumes one redemption of a deal.
func (s *DealService) Redeem(ctx context.Context, dealID string) (*domain.Deal, error) {
	deal, err := s.store.RedeemDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("deal redeemed",
		"deal_id", deal.ID,
		"redemptions", deal.Redemptions)
	return deal, nil
}
