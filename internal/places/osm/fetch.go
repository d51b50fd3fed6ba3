package osm

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/places/synth"
)

// buildOverpassQuery returns an Overpass QL query for tagged nodes around a
// point. One disjunction branch per consulted tag key.
func buildOverpassQuery(lat, lon float64, radiusMeters int) string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:25];(")
	for _, key := range tagKeys {
		fmt.Fprintf(&b, "node[%q](around:%d,%f,%f);", key, radiusMeters, lat, lon)
	}
	b.WriteString(");out body 60;")
	return b.String()
}

// FetchNearbyBusinesses queries Overpass for points of interest around the
// given coordinates. Unnamed and unmappable elements are dropped; an empty
// result is not an error.
func (c *Client) FetchNearbyBusinesses(ctx context.Context, lat, lon float64, radiusMeters int) ([]domain.Business, error) {
	query := buildOverpassQuery(lat, lon, radiusMeters)
	body, err := c.post(ctx, c.overpassURL, "data="+url.QueryEscape(query))
	if err != nil {
		return nil, fmt.Errorf("overpass query: %w", err)
	}

	elements := gjson.GetBytes(body, "elements").Array()
	businesses := make([]domain.Business, 0, len(elements))
	for _, el := range elements {
		biz := c.mapElement(el)
		if biz == nil {
			continue
		}
		businesses = append(businesses, *biz)
	}

	c.logger.Debug("overpass fetch complete",
		"elements", len(elements),
		"mapped", len(businesses),
		"radius_m", radiusMeters,
	)
	return businesses, nil
}

// FetchPlaceDetails fetches a single place by its prefixed id. Returns nil
// when the node no longer exists.
func (c *Client) FetchPlaceDetails(ctx context.Context, placeID string) (*domain.Business, error) {
	osmID, ok := strings.CutPrefix(placeID, "osm-")
	if !ok {
		return nil, fmt.Errorf("not an osm place id: %s", placeID)
	}

	query := fmt.Sprintf("[out:json][timeout:25];node(%s);out body;", osmID)
	body, err := c.post(ctx, c.overpassURL, "data="+url.QueryEscape(query))
	if err != nil {
		return nil, fmt.Errorf("overpass lookup: %w", err)
	}

	elements := gjson.GetBytes(body, "elements").Array()
	if len(elements) == 0 {
		return nil, nil
	}
	return c.mapElement(elements[0]), nil
}

// mapElement converts one Overpass element into a Business, or nil when the
// element has no name.
func (c *Client) mapElement(el gjson.Result) *domain.Business {
	name := el.Get("tags.name").String()
	if name == "" {
		return nil
	}

	tags := map[string]string{}
	el.Get("tags").ForEach(func(key, value gjson.Result) bool {
		tags[key.String()] = value.String()
		return true
	})

	cat := mapCategory(tags)
	biz := &domain.Business{
		ID:          fmt.Sprintf("osm-%d", el.Get("id").Int()),
		Name:        name,
		Category:    cat.Category,
		Subcategory: cat.Subcategory,
		Address:     joinAddress(tags["addr:housenumber"], tags["addr:street"]),
		City:        tags["addr:city"],
		State:       tags["addr:state"],
		Zip:         tags["addr:postcode"],
		Phone:       tags["phone"],
		Website:     tags["website"],
		Latitude:    el.Get("lat").Float(),
		Longitude:   el.Get("lon").Float(),
		CreatedAt:   time.Now().UTC(),
	}
	if tags["cuisine"] != "" {
		biz.AddTag(tags["cuisine"])
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
