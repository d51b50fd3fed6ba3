package store

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/id"
)

// GetDeals returns every deal regardless of state.
func (s *Store) GetDeals(_ context.Context) ([]domain.Deal, error) {
	return readList[domain.Deal](s, KeyDeals)
}

// GetActiveDeals returns deals that should be displayed right now: active
// flag set, inside the validity window, redemptions remaining.
func (s *Store) GetActiveDeals(ctx context.Context) ([]domain.Deal, error) {
	deals, err := readList[domain.Deal](s, KeyDeals)
	if err != nil {
		return nil, err
	}
	now := s.now()
	active := make([]domain.Deal, 0, len(deals))
	for _, d := range deals {
		if d.IsActiveAt(now) {
			active = append(active, d)
		}
	}
	return active, nil
}

// GetDealsByBusiness returns a business's deals regardless of state.
func (s *Store) GetDealsByBusiness(_ context.Context, businessID string) ([]domain.Deal, error) {
	deals, err := readList[domain.Deal](s, KeyDeals)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Deal, 0)
	for _, d := range deals {
		if d.BusinessID == businessID {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

// CreateDeal persists a new deal for a business.
func (s *Store) CreateDeal(_ context.Context, deal *domain.Deal) error {
	if !deal.DealType.Valid() {
		return fmt.Errorf("create deal: unknown deal type %q", deal.DealType)
	}

	deal.ID = id.MustGenerate(id.Deal)
	deal.Redemptions = 0
	deal.CreatedAt = s.now()

	err := s.db.Update(func(txn *badger.Txn) error {
		deals, err := listInTxn[domain.Deal](txn, KeyDeals)
		if err != nil {
			return err
		}
		businesses, err := listInTxn[domain.Business](txn, KeyBusinesses)
		if err != nil {
			return err
		}
		found := false
		for i := range businesses {
			if businesses[i].ID == deal.BusinessID {
				found = true
				break
			}
		}
		if !found {
			return ErrBusinessNotFound
		}
		deals = append(deals, *deal)
		return setInTxn(txn, KeyDeals, deals)
	})
	if err != nil {
		return err
	}

	s.emit("deal", "added", deal.ID)
	if s.logger != nil {
		s.logger.Info("deal created", "deal_id", deal.ID, "business_id", deal.BusinessID)
	}
	return nil
}

// RedeemDeal consumes one redemption. Only the redemption counter guards
// this path; the active flag and validity window do not.
// Returns the updated deal, or ErrDealExhausted when none remain.
func (s *Store) RedeemDeal(_ context.Context, dealID string) (*domain.Deal, error) {
	var updated domain.Deal
	err := s.db.Update(func(txn *badger.Txn) error {
		deals, err := listInTxn[domain.Deal](txn, KeyDeals)
		if err != nil {
			return err
		}
		for i := range deals {
			if deals[i].ID == dealID {
				if !deals[i].Redeem() {
					return ErrDealExhausted
				}
				updated = deals[i]
				return setInTxn(txn, KeyDeals, deals)
			}
		}
		return ErrDealNotFound
	})
	if err != nil {
		return nil, err
	}

	s.emit("deal", "redeemed", dealID)
	if s.logger != nil {
		s.logger.Info("deal redeemed",
			"deal_id", dealID,
			"redemptions", updated.Redemptions,
			"max_redemptions", updated.MaxRedemptions,
		)
	}
	return &updated, nil
}
