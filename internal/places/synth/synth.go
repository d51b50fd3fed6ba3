// Package synth deterministically fills the fields external place APIs do not
// provide reliably: rating, review count, weekly hours, description, and a
// stock photo. Everything derives from an FNV-64 hash of the place id, so the
// same place always renders the same way across fetches and across providers.
package synth

import (
	"fmt"
	"hash/fnv"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

func hashID(placeID string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(placeID))
	return h.Sum64()
}

// Rating returns a plausible rating between 3.0 and 4.9, one decimal.
func Rating(placeID string) float64 {
	return 3.0 + float64(hashID(placeID)%20)/10
}

// ReviewCount returns a plausible review count between 5 and 254.
func ReviewCount(placeID string) int {
	return 5 + int(hashID(placeID)>>8%250)
}

// PriceLevel returns a price level between 1 and 3. External places never get
// the top bracket without real data backing it.
func PriceLevel(placeID string) int {
	return 1 + int(hashID(placeID)>>16%3)
}

// Hours returns the fixed weekly template: 9:00-18:00 Monday through
// Saturday, closed Sunday.
func Hours() map[string]domain.DayHours {
	hours := make(map[string]domain.DayHours, 6)
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		hours[day] = domain.DayHours{Open: 900, Close: 1800}
	}
	return hours
}

var descriptionPools = map[string][]string{
	"restaurants": {
		"A neighborhood favorite serving fresh, locally sourced dishes.",
		"Casual spot known for generous portions and friendly service.",
		"A local gem where regulars come back week after week.",
	},
	"shopping": {
		"An independent shop with a carefully curated selection.",
		"A local storefront stocking everyday essentials and hidden finds.",
		"Family-run store serving the neighborhood for years.",
	},
	"services": {
		"Trusted local professionals with a reputation for quality work.",
		"Reliable neighborhood service with straightforward pricing.",
		"A well-reviewed local business that puts customers first.",
	},
	"health": {
		"A welcoming practice focused on personalized care.",
		"Local wellness provider with experienced, attentive staff.",
	},
	"entertainment": {
		"A popular local spot for an afternoon or evening out.",
		"A neighborhood destination worth lingering in.",
	},
}

// Description returns a short templated description from the per-category
// pool, selected by the place id hash.
func Description(placeID, category string) string {
	pool, ok := descriptionPools[category]
	if !ok {
		pool = descriptionPools["services"]
	}
	return pool[hashID(placeID)%uint64(len(pool))]
}

var imagePools = map[string][]string{
	"restaurants":   {"restaurant-1", "restaurant-2", "restaurant-3", "cafe-1"},
	"shopping":      {"storefront-1", "storefront-2", "retail-1"},
	"services":      {"workshop-1", "office-1", "storefront-3"},
	"health":        {"clinic-1", "studio-1"},
	"entertainment": {"venue-1", "venue-2"},
}

// ImageURL returns a stock photo URL from the per-category pool, selected by
// the place id hash.
func ImageURL(placeID, category string) string {
	pool, ok := imagePools[category]
	if !ok {
		pool = imagePools["services"]
	}
	slug := pool[hashID(placeID)>>32%uint64(len(pool))]
	return fmt.Sprintf("https://images.brightside.app/stock/%s.jpg", slug)
}

// Fill populates the synthetic fields of an externally sourced business that
// the provider left empty. The business must already have ID and Category set.
func Fill(b *domain.Business) {
	b.AverageRating = Rating(b.ID)
	b.TotalReviews = ReviewCount(b.ID)
	if b.PriceLevel == 0 {
		b.PriceLevel = PriceLevel(b.ID)
	}
	if len(b.Hours) == 0 {
		b.Hours = Hours()
	}
	if b.Description == "" {
		b.Description = Description(b.ID, b.Category)
	}
	if b.ImageURL == "" {
		b.ImageURL = ImageURL(b.ID, b.Category)
	}
}
