package store

import (
	"context"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

// GenerateReport aggregates the current directory state into a report.
// Filters narrow both the business set and, for the review range, which
// reviews count toward totals and the rating distribution.
func (s *Store) GenerateReport(ctx context.Context, filters domain.ReportFilters) (*domain.Report, error) {
	businesses, err := s.GetBusinesses(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.GetReviews(ctx)
	if err != nil {
		return nil, err
	}
	deals, err := s.GetDeals(ctx)
	if err != nil {
		return nil, err
	}

	selected := make([]domain.Business, 0, len(businesses))
	selectedIDs := make(map[string]bool, len(businesses))
	for _, b := range businesses {
		if filters.Category != "" && b.Category != filters.Category {
			continue
		}
		if b.AverageRating < filters.MinRating {
			continue
		}
		selected = append(selected, b)
		selectedIDs[b.ID] = true
	}

	report := &domain.Report{
		GeneratedAt:     s.now(),
		Filters:         filters,
		TotalBusinesses: len(selected),
	}

	for _, r := range reviews {
		if !selectedIDs[r.BusinessID] {
			continue
		}
		if !filters.ReviewsFrom.IsZero() && r.CreatedAt.Before(filters.ReviewsFrom) {
			continue
		}
		if !filters.ReviewsTo.IsZero() && r.CreatedAt.After(filters.ReviewsTo) {
			continue
		}
		report.TotalReviews++
		// Buckets 1-5 by floor of rating, clamped: 4.5 counts as 4 stars,
		// 0.5 clamps into the 1-star bucket.
		bucket := int(math.Floor(r.Rating)) - 1
		if bucket < 0 {
			bucket = 0
		}
		if bucket > 4 {
			bucket = 4
		}
		report.RatingDistribution[bucket]++
		if len(report.RecentReviews) < 10 {
			report.RecentReviews = append(report.RecentReviews, r)
		}
	}

	report.CategoryBreakdown = categoryBreakdown(selected)
	report.TopRated = topN(selected, 5, func(a, b *domain.Business) bool {
		return a.AverageRating > b.AverageRating
	})
	report.MostReviewed = topN(selected, 5, func(a, b *domain.Business) bool {
		return a.TotalReviews > b.TotalReviews
	})

	for _, d := range deals {
		if !selectedIDs[d.BusinessID] {
			continue
		}
		report.Deals.TotalDeals++
		report.Deals.TotalRedemptions += d.Redemptions
		report.Deals.AverageDiscountPercent += float64(d.DiscountPercent)
	}
	if report.Deals.TotalDeals > 0 {
		report.Deals.AverageDiscountPercent =
			math.Round(report.Deals.AverageDiscountPercent/float64(report.Deals.TotalDeals)*10) / 10
	}

	return report, nil
}

// categoryBreakdown groups businesses by category, alphabetically.
func categoryBreakdown(businesses []domain.Business) []domain.CategoryStats {
	byCategory := make(map[string][]float64)
	for _, b := range businesses {
		byCategory[b.Category] = append(byCategory[b.Category], b.AverageRating)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	stats := make([]domain.CategoryStats, 0, len(categories))
	for _, c := range categories {
		ratings := byCategory[c]
		var sum float64
		for _, r := range ratings {
			sum += r
		}
		stats = append(stats, domain.CategoryStats{
			Category:      c,
			Count:         len(ratings),
			AverageRating: domain.RoundRating(sum / float64(len(ratings))),
		})
	}
	return stats
}

// topN returns up to n businesses ordered by less, ties broken by name.
func topN(businesses []domain.Business, n int, better func(a, b *domain.Business) bool) []domain.Business {
	ranked := slices.Clone(businesses)
	slices.SortStableFunc(ranked, func(a, b domain.Business) int {
		if better(&a, &b) {
			return -1
		}
		if better(&b, &a) {
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
