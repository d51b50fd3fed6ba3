package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

func testDeal(businessID string, now time.Time) *domain.Deal {
	return &domain.Deal{
		BusinessID:      businessID,
		Title:           "20% Off",
		DiscountPercent: 20,
		Code:            "TEST20",
		ValidFrom:       now.Add(-time.Hour),
		ExpiresAt:       now.Add(24 * time.Hour),
		IsActive:        true,
		DealType:        domain.DealPercentage,
		MaxRedemptions:  3,
	}
}

func TestCreateDeal(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.AddBusiness(ctx, testBusiness("biz-001", "Test Cafe")))

	deal := testDeal("biz-001", time.Now())
	require.NoError(t, store.CreateDeal(ctx, deal))
	assert.NotEmpty(t, deal.ID)
	assert.Zero(t, deal.Redemptions)

	deals, err := store.GetDealsByBusiness(ctx, "biz-001")
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "20% Off", deals[0].Title)
}

func TestCreateDeal_UnknownBusiness(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.CreateDeal(context.Background(), testDeal("nonexistent", time.Now()))
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestCreateDeal_InvalidType(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.AddBusiness(ctx, testBusiness("biz-001", "Test Cafe")))

	deal := testDeal("biz-001", time.Now())
	deal.DealType = "flash-sale"
	assert.Error(t, store.CreateDeal(ctx, deal))
}

func TestGetActiveDeals(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	ctx := context.Background()
	require.NoError(t, store.AddBusiness(ctx, testBusiness("biz-001", "Test Cafe")))

	active := testDeal("biz-001", base)
	require.NoError(t, store.CreateDeal(ctx, active))

	expired := testDeal("biz-001", base)
	expired.Title = "Expired"
	expired.ValidFrom = base.Add(-48 * time.Hour)
	expired.ExpiresAt = base.Add(-24 * time.Hour)
	require.NoError(t, store.CreateDeal(ctx, expired))

	disabled := testDeal("biz-001", base)
	disabled.Title = "Disabled"
	disabled.IsActive = false
	require.NoError(t, store.CreateDeal(ctx, disabled))

	deals, err := store.GetActiveDeals(ctx)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "20% Off", deals[0].Title)

	all, err := store.GetDeals(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRedeemDeal(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.AddBusiness(ctx, testBusiness("biz-001", "Test Cafe")))

	deal := testDeal("biz-001", time.Now())
	require.NoError(t, store.CreateDeal(ctx, deal))

	for want := 1; want <= deal.MaxRedemptions; want++ {
		updated, err := store.RedeemDeal(ctx, deal.ID)
		require.NoError(t, err)
		assert.Equal(t, want, updated.Redemptions)
	}

	_, err := store.RedeemDeal(ctx, deal.ID)
	assert.ErrorIs(t, err, ErrDealExhausted)
}

func TestRedeemDeal_IgnoresWindow(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	ctx := context.Background()
	require.NoError(t, store.AddBusiness(ctx, testBusiness("biz-001", "Test Cafe")))

	// Expired and disabled, but the counter still has room.
	deal := testDeal("biz-001", base)
	deal.ValidFrom = base.Add(-48 * time.Hour)
	deal.ExpiresAt = base.Add(-24 * time.Hour)
	deal.IsActive = false
	require.NoError(t, store.CreateDeal(ctx, deal))

	updated, err := store.RedeemDeal(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Redemptions)
}

func TestRedeemDeal_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.RedeemDeal(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrDealNotFound)
}
