package domain

import (
	"math"
	"slices"
	"strings"
	"time"
)

// MaxTags caps the number of tags carried by a business listing.
const MaxTags = 8

// DayHours is an opening window for a single weekday.
// Open and Close are HHMM integers (e.g. 900 for 9:00, 1730 for 17:30).
type DayHours struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// Business represents a directory listing: a local shop, restaurant, or
// service provider. Listings come from seeded data or from an external place
// provider; externally sourced IDs keep their provider prefix (osm-,
// geoapify-) so they never collide with seeded IDs.
//
// Invariants maintained by the store: AverageRating is the mean of the
// ratings of all reviews referencing this business, rounded to one decimal,
// and TotalReviews is their count. Both are recomputed on every review
// insertion.
type Business struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Category      string              `json:"category"`
	Subcategory   string              `json:"subcategory"`
	Address       string              `json:"address"`
	City          string              `json:"city"`
	State         string              `json:"state"`
	Zip           string              `json:"zip"`
	Phone         string              `json:"phone"`
	Email         string              `json:"email"`
	Website       string              `json:"website"`
	ImageURL      string              `json:"image_url"`
	Hours         map[string]DayHours `json:"hours"` // lowercase weekday name; absent day = closed
	PriceLevel    int                 `json:"price_level"` // 1-4
	AverageRating float64             `json:"average_rating"`
	TotalReviews  int                 `json:"total_reviews"`
	Latitude      float64             `json:"latitude"`
	Longitude     float64             `json:"longitude"`
	Tags          []string            `json:"tags"`
	CreatedAt     time.Time           `json:"created_at"`
}

// IsOpenAt reports whether the business is open at the given local time.
// A missing hours entry for the weekday means closed. The close minute is
// exclusive: a 900-1700 business is closed at exactly 17:00.
func (b *Business) IsOpenAt(t time.Time) bool {
	day := strings.ToLower(t.Weekday().String())
	hours, ok := b.Hours[day]
	if !ok {
		return false
	}
	now := t.Hour()*100 + t.Minute()
	return now >= hours.Open && now < hours.Close
}

// AddTag appends a tag unless it is already present or the cap is reached.
func (b *Business) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || len(b.Tags) >= MaxTags || slices.Contains(b.Tags, tag) {
		return false
	}
	b.Tags = append(b.Tags, tag)
	return true
}

// ApplyRatings recomputes AverageRating and TotalReviews from the full set of
// ratings for this business. An empty set resets both to zero.
func (b *Business) ApplyRatings(ratings []float64) {
	b.TotalReviews = len(ratings)
	if len(ratings) == 0 {
		b.AverageRating = 0
		return
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	b.AverageRating = RoundRating(sum / float64(len(ratings)))
}

// RoundRating rounds a rating to one decimal place.
func RoundRating(r float64) float64 {
	return math.Round(r*10) / 10
}
