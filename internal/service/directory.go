// Package service holds the orchestration layer between the HTTP handlers
// and the store, search index, and location services.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/location"
	"github.com/brightsideapp/brightside-server/internal/store"
)

// DirectoryService orchestrates business listing, filtering, and nearby
// discovery.
type DirectoryService struct {
	store    *store.Store
	location *location.Service
	logger   *slog.Logger
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(st *store.Store, loc *location.Service, logger *slog.Logger) *DirectoryService {
	return &DirectoryService{
		store:    st,
		location: loc,
		logger:   logger,
	}
}

// BusinessDetail is a business plus per-request context the store alone
// cannot answer.
type BusinessDetail struct {
	domain.Business
	DistanceKm *float64 `json:"distance_km,omitempty"`
	IsOpen     bool     `json:"is_open"`
	Bookmarked bool     `json:"bookmarked"`
}

// ListBusinesses returns businesses matching the given filters.
func (s *DirectoryService) ListBusinesses(ctx context.Context, filters store.BusinessFilters) ([]BusinessDetail, error) {
	businesses, err := s.store.FilterBusinesses(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("filter businesses: %w", err)
	}
	return s.annotate(ctx, businesses), nil
}

// GetBusiness returns one business with open state, bookmark state, and
// distance from the current location.
func (s *DirectoryService) GetBusiness(ctx context.Context, id string) (*BusinessDetail, error) {
	business, err := s.store.GetBusinessByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := s.annotateOne(ctx, *business)
	return &detail, nil
}

// AddBusiness stores a new business.
func (s *DirectoryService) AddBusiness(ctx context.Context, business *domain.Business) error {
	if err := s.store.AddBusiness(ctx, business); err != nil {
		return err
	}
	s.logger.Info("business added", "id", business.ID, "name", business.Name)
	return nil
}

// NearbyBusinesses returns businesses around the current location, nearest
// first. Businesses without coordinates sort last.
func (s *DirectoryService) NearbyBusinesses(ctx context.Context) ([]BusinessDetail, error) {
	businesses, err := s.location.NearbyBusinesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch nearby businesses: %w", err)
	}

	details := s.annotate(ctx, businesses)
	slices.SortStableFunc(details, func(a, b BusinessDetail) int {
		switch {
		case a.DistanceKm == nil && b.DistanceKm == nil:
			return 0
		case a.DistanceKm == nil:
			return 1
		case b.DistanceKm == nil:
			return -1
		default:
			return compareFloat(*a.DistanceKm, *b.DistanceKm)
		}
	})
	return details, nil
}

// OpenNow returns the subset of businesses currently open.
func (s *DirectoryService) OpenNow(ctx context.Context, filters store.BusinessFilters) ([]BusinessDetail, error) {
	details, err := s.ListBusinesses(ctx, filters)
	if err != nil {
		return nil, err
	}

	open := details[:0]
	for _, d := range details {
		if d.IsOpen {
			open = append(open, d)
		}
	}
	return slices.Clip(open), nil
}

// annotate adds open/bookmark/distance context to each business.
func (s *DirectoryService) annotate(ctx context.Context, businesses []domain.Business) []BusinessDetail {
	details := make([]BusinessDetail, 0, len(businesses))
	for _, b := range businesses {
		details = append(details, s.annotateOne(ctx, b))
	}
	return details
}

func (s *DirectoryService) annotateOne(ctx context.Context, b domain.Business) BusinessDetail {
	detail := BusinessDetail{
		Business: b,
		IsOpen:   s.store.IsBusinessOpen(&b),
	}

	if b.Latitude != 0 || b.Longitude != 0 {
		detail.DistanceKm = s.location.DistanceFrom(b.Latitude, b.Longitude)
	}

	bookmarked, err := s.store.IsBookmarked(ctx, b.ID)
	if err != nil {
		s.logger.Warn("failed to check bookmark state", "business_id", b.ID, "error", err)
	}
	detail.Bookmarked = bookmarked

	return detail
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
