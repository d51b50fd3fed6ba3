package geoapify

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/places"
	"github.com/brightsideapp/brightside-server/internal/places/synth"
)

// FetchNearbyBusinesses queries the Places API with a circular filter around
// the given coordinates. Unnamed features are dropped; an empty result is not
// an error.
func (c *Client) FetchNearbyBusinesses(ctx context.Context, lat, lon float64, radiusMeters int) ([]domain.Business, error) {
	endpoint := fmt.Sprintf(
		"%s/v2/places?categories=%s&filter=circle:%f,%f,%d&limit=60&apiKey=%s",
		c.baseURL, requestCategories, lon, lat, radiusMeters, c.apiKey,
	)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("places query: %w", err)
	}

	features := gjson.GetBytes(body, "features").Array()
	businesses := make([]domain.Business, 0, len(features))
	for _, f := range features {
		biz := mapFeature(f.Get("properties"))
		if biz == nil {
			continue
		}
		businesses = append(businesses, *biz)
	}

	c.logger.Debug("geoapify fetch complete",
		"features", len(features),
		"mapped", len(businesses),
		"radius_m", radiusMeters,
	)
	return businesses, nil
}

// FetchPlaceDetails fetches a single place by its prefixed id. Returns nil
// when not found.
func (c *Client) FetchPlaceDetails(ctx context.Context, placeID string) (*domain.Business, error) {
	geoapifyID, ok := strings.CutPrefix(placeID, "geoapify-")
	if !ok {
		return nil, fmt.Errorf("not a geoapify place id: %s", placeID)
	}

	endpoint := fmt.Sprintf("%s/v2/place-details?id=%s&apiKey=%s",
		c.baseURL, url.QueryEscape(geoapifyID), c.apiKey)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}
	if body == nil {
		return nil, nil
	}

	features := gjson.GetBytes(body, "features").Array()
	if len(features) == 0 {
		return nil, nil
	}
	return mapFeature(features[0].Get("properties")), nil
}

// ReverseGeocode resolves coordinates to a normalized address.
// Returns nil when nothing is found.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*places.Address, error) {
	endpoint := fmt.Sprintf("%s/v1/geocode/reverse?lat=%f&lon=%f&apiKey=%s",
		c.baseURL, lat, lon, c.apiKey)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode: %w", err)
	}

	features := gjson.GetBytes(body, "features").Array()
	if len(features) == 0 {
		return nil, nil
	}
	props := features[0].Get("properties")

	return &places.Address{
		City:        props.Get("city").String(),
		State:       props.Get("state").String(),
		DisplayName: props.Get("formatted").String(),
	}, nil
}

// ForwardGeocode resolves a free-text query to coordinates.
// Returns nil when the query has no results.
func (c *Client) ForwardGeocode(ctx context.Context, query string) (*places.Coordinates, error) {
	endpoint := fmt.Sprintf("%s/v1/geocode/search?text=%s&limit=1&apiKey=%s",
		c.baseURL, url.QueryEscape(query), c.apiKey)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("forward geocode: %w", err)
	}

	features := gjson.GetBytes(body, "features").Array()
	if len(features) == 0 {
		return nil, nil
	}
	props := features[0].Get("properties")

	return &places.Coordinates{
		Latitude:    props.Get("lat").Float(),
		Longitude:   props.Get("lon").Float(),
		DisplayName: props.Get("formatted").String(),
	}, nil
}

// mapFeature converts one Places feature into a Business, or nil when the
// feature has no name.
func mapFeature(props gjson.Result) *domain.Business {
	name := props.Get("name").String()
	if name == "" {
		return nil
	}

	var categories []string
	for _, c := range props.Get("categories").Array() {
		categories = append(categories, c.String())
	}
	cat := mapCategories(categories)

	biz := &domain.Business{
		ID:          "geoapify-" + props.Get("place_id").String(),
		Name:        name,
		Category:    cat.Category,
		Subcategory: cat.Subcategory,
		Address:     joinAddress(props.Get("housenumber").String(), props.Get("street").String()),
		City:        props.Get("city").String(),
		State:       props.Get("state").String(),
		Zip:         props.Get("postcode").String(),
		Phone:       props.Get("contact.phone").String(),
		Website:     props.Get("website").String(),
		Latitude:    props.Get("lat").Float(),
		Longitude:   props.Get("lon").Float(),
		CreatedAt:   time.Now().UTC(),
	}
	synth.Fill(biz)
	return biz
}

func joinAddress(houseNumber, street string) string {
	if houseNumber == "" {
		return street
	}
	if street == "" {
		return ""
	}
	return houseNumber + " " + street
}
