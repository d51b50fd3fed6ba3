package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/normalize"
	"github.com/brightsideapp/brightside-server/internal/util"
)

// GetBusinesses returns a snapshot of all businesses in storage order.
func (s *Store) GetBusinesses(_ context.Context) ([]domain.Business, error) {
	return readList[domain.Business](s, KeyBusinesses)
}

// GetBusinessByID returns a single business.
func (s *Store) GetBusinessByID(_ context.Context, id string) (*domain.Business, error) {
	businesses, err := readList[domain.Business](s, KeyBusinesses)
	if err != nil {
		return nil, err
	}
	for i := range businesses {
		if businesses[i].ID == id {
			return &businesses[i], nil
		}
	}
	return nil, ErrBusinessNotFound
}

// AddBusiness persists a business. Externally fetched businesses are
// transient until explicitly added through this call. Tags are canonicalized
// to slugs so facet counts never split on formatting differences.
func (s *Store) AddBusiness(ctx context.Context, business *domain.Business) error {
	business.Tags = canonicalTags(business.Tags)
	err := s.db.Update(func(txn *badger.Txn) error {
		businesses, err := listInTxn[domain.Business](txn, KeyBusinesses)
		if err != nil {
			return err
		}
		for i := range businesses {
			if businesses[i].ID == business.ID {
				return ErrDuplicateID
			}
		}
		businesses = append(businesses, *business)
		return setInTxn(txn, KeyBusinesses, businesses)
	})
	if err != nil {
		return fmt.Errorf("add business: %w", err)
	}

	s.indexBusiness(ctx, business)
	s.emit("business", "added", business.ID)

	if s.logger != nil {
		s.logger.Info("business added",
			"id", business.ID,
			"name", business.Name,
			"category", business.Category,
		)
	}
	return nil
}

// canonicalTags slugifies tags, dropping empties and duplicates.
func canonicalTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		slug := util.NormalizeTagSlug(tag)
		if slug == "" || slices.Contains(out, slug) {
			continue
		}
		out = append(out, slug)
	}
	return out
}

// IsBusinessOpen reports whether the business is open right now.
func (s *Store) IsBusinessOpen(business *domain.Business) bool {
	return business.IsOpenAt(s.now())
}

// BusinessFilters selects and orders businesses for FilterBusinesses.
// Filters apply in order: search, category, subcategory, price levels,
// minimum rating, then the optional sort.
type BusinessFilters struct {
	Search      string
	Category    string
	Subcategory string
	PriceLevels []int
	MinRating   float64
	SortBy      string // rating | reviews | name | price
	SortOrder   string // asc | desc (default asc)
}

// FilterBusinesses returns a new, filtered, optionally sorted slice.
// Without SortBy the storage order is preserved; sorts are stable.
func (s *Store) FilterBusinesses(ctx context.Context, filters BusinessFilters) ([]domain.Business, error) {
	businesses, err := s.GetBusinesses(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Business, 0, len(businesses))
	search := normalize.SearchText(filters.Search)
	for _, b := range businesses {
		if search != "" && !matchesSearch(&b, search) {
			continue
		}
		if filters.Category != "" && b.Category != filters.Category {
			continue
		}
		if filters.Subcategory != "" && b.Subcategory != filters.Subcategory {
			continue
		}
		if len(filters.PriceLevels) > 0 && !slices.Contains(filters.PriceLevels, b.PriceLevel) {
			continue
		}
		if b.AverageRating < filters.MinRating {
			continue
		}
		result = append(result, b)
	}

	sortBusinesses(result, filters.SortBy, filters.SortOrder)
	return result, nil
}

// matchesSearch checks a normalized substring against name, description, and tags.
func matchesSearch(b *domain.Business, search string) bool {
	if strings.Contains(normalize.SearchText(b.Name), search) ||
		strings.Contains(normalize.SearchText(b.Description), search) {
		return true
	}
	for _, tag := range b.Tags {
		if strings.Contains(normalize.SearchText(tag), search) {
			return true
		}
	}
	return false
}

// sortBusinesses stable-sorts in place by the requested key and direction.
func sortBusinesses(businesses []domain.Business, sortBy, sortOrder string) {
	if sortBy == "" {
		return
	}

	var cmp func(a, b *domain.Business) int
	switch sortBy {
	case "rating":
		cmp = func(a, b *domain.Business) int {
			return compareFloat(a.AverageRating, b.AverageRating)
		}
	case "reviews":
		cmp = func(a, b *domain.Business) int {
			return a.TotalReviews - b.TotalReviews
		}
	case "name":
		cmp = func(a, b *domain.Business) int {
			return strings.Compare(normalize.SearchText(a.Name), normalize.SearchText(b.Name))
		}
	case "price":
		cmp = func(a, b *domain.Business) int {
			return a.PriceLevel - b.PriceLevel
		}
	default:
		return
	}

	desc := sortOrder == "desc"
	slices.SortStableFunc(businesses, func(a, b domain.Business) int {
		c := cmp(&a, &b)
		if desc {
			return -c
		}
		return c
	})
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
