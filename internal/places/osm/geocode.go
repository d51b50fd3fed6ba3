package osm

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/brightsideapp/brightside-server/internal/places"
)

// ReverseGeocode resolves coordinates to a normalized address via Nominatim.
// Returns nil when nothing is found at the coordinates.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*places.Address, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%f&lon=%f", c.nominatimURL, lat, lon)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("nominatim reverse: %w", err)
	}

	if gjson.GetBytes(body, "error").Exists() {
		return nil, nil
	}

	// Nominatim puts the locality under different keys by place type.
	city := gjson.GetBytes(body, "address.city").String()
	if city == "" {
		city = gjson.GetBytes(body, "address.town").String()
	}
	if city == "" {
		city = gjson.GetBytes(body, "address.village").String()
	}

	return &places.Address{
		City:        city,
		State:       gjson.GetBytes(body, "address.state").String(),
		DisplayName: gjson.GetBytes(body, "display_name").String(),
	}, nil
}

// ForwardGeocode resolves a free-text query to coordinates via Nominatim.
// Returns nil when the query has no results.
func (c *Client) ForwardGeocode(ctx context.Context, query string) (*places.Coordinates, error) {
	endpoint := fmt.Sprintf("%s/search?format=jsonv2&limit=1&q=%s", c.nominatimURL, url.QueryEscape(query))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("nominatim search: %w", err)
	}

	results := gjson.ParseBytes(body).Array()
	if len(results) == 0 {
		return nil, nil
	}
	first := results[0]

	return &places.Coordinates{
		Latitude:    first.Get("lat").Float(),
		Longitude:   first.Get("lon").Float(),
		DisplayName: first.Get("display_name").String(),
	}, nil
}
