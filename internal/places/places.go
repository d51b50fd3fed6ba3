// Package places defines the provider-neutral surface for external
// place-data adapters. Adapters fetch nearby points of interest and geocode
// addresses, mapping heterogeneous source schemas into the internal Business
// shape. Failures degrade to nil or empty results; callers fall back to the
// alternate provider and then to seeded data.
package places

import (
	"context"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

// Address is a normalized reverse-geocoding result.
type Address struct {
	City        string `json:"city"`
	State       string `json:"state"`
	DisplayName string `json:"display_name"`
}

// Coordinates is a normalized forward-geocoding result.
type Coordinates struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}

// Provider is implemented by each place-data adapter.
//
// FetchNearbyBusinesses tolerates partial results: mappable features are
// returned and the rest dropped. ReverseGeocode, ForwardGeocode, and
// FetchPlaceDetails return nil (not an error) when the source has no answer.
type Provider interface {
	Name() string
	FetchNearbyBusinesses(ctx context.Context, lat, lon float64, radiusMeters int) ([]domain.Business, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (*Address, error)
	ForwardGeocode(ctx context.Context, query string) (*Coordinates, error)
	FetchPlaceDetails(ctx context.Context, placeID string) (*domain.Business, error)
}

// FallbackCategory is the category assigned to places whose source tags have
// no mapping. Both adapters share it.
var FallbackCategory = Category{Category: "services", Subcategory: "Other"}

// Category is an internal category/subcategory pair.
type Category struct {
	Category    string
	Subcategory string
}
