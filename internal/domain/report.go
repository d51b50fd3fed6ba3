package domain

import "time"

// ReportFilters narrows the collections aggregated into a report.
// Zero values mean "no filter"; the review range bounds are inclusive.
type ReportFilters struct {
	Category    string    `json:"category,omitempty"`
	MinRating   float64   `json:"min_rating,omitempty"`
	ReviewsFrom time.Time `json:"reviews_from,omitzero"`
	ReviewsTo   time.Time `json:"reviews_to,omitzero"`
}

// CategoryStats aggregates the businesses of one category.
type CategoryStats struct {
	Category      string  `json:"category"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
}

// DealStats aggregates the deals collection.
type DealStats struct {
	TotalDeals             int     `json:"total_deals"`
	TotalRedemptions       int     `json:"total_redemptions"`
	AverageDiscountPercent float64 `json:"average_discount_percent"`
}

// Report is a point-in-time aggregation over the directory.
type Report struct {
	GeneratedAt        time.Time       `json:"generated_at"`
	Filters            ReportFilters   `json:"filters"`
	TotalBusinesses    int             `json:"total_businesses"`
	TotalReviews       int             `json:"total_reviews"`
	CategoryBreakdown  []CategoryStats `json:"category_breakdown"`
	RatingDistribution [5]int          `json:"rating_distribution"` // index 0 = 1 star bucket
	TopRated           []Business      `json:"top_rated"`           // top 5 by rating
	MostReviewed       []Business      `json:"most_reviewed"`       // top 5 by review count
	RecentReviews      []Review        `json:"recent_reviews"`      // most recent 10
	Deals              DealStats       `json:"deals"`
}
