// Package location resolves the user's effective coordinates and serves
// nearby businesses. Coordinates come from one of four sources, highest
// precedence first: a manually geocoded address, client-reported coordinates,
// IP lookup, and a hardcoded default. A lower-precedence source never
// replaces a higher-precedence one once set.
package location

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/places"
)

// State is the resolution state of the location service.
type State string

// Resolution states.
const (
	StateLocating State = "locating" // resolution pending
	StateLocated  State = "located"  // coordinates available
	StateError    State = "error"    // all lookups failed, defaults in use
)

// Source identifies where the current coordinates came from.
type Source string

// Coordinate sources, in precedence order.
const (
	SourceManual   Source = "manual"
	SourceReported Source = "reported"
	SourceIP       Source = "ip"
	SourceDefault  Source = "default"
	SourceNone     Source = ""
)

// precedence orders sources; higher wins.
var precedence = map[Source]int{
	SourceNone:     0,
	SourceDefault:  1,
	SourceIP:       2,
	SourceReported: 3,
	SourceManual:   4,
}

// Default coordinates: San Francisco.
const (
	DefaultLatitude     = 37.7749
	DefaultLongitude    = -122.4194
	DefaultLabel        = "San Francisco, California"
	DefaultRadiusMeters = 2000
)

// BusinessSource supplies the seeded business fallback.
type BusinessSource interface {
	GetBusinesses(ctx context.Context) ([]domain.Business, error)
}

// GeoapifyProvider is a places.Provider that may be unconfigured.
type GeoapifyProvider interface {
	places.Provider
	Configured() bool
}

// Snapshot is a point-in-time view of the resolved location.
type Snapshot struct {
	State        State   `json:"state"`
	Source       Source  `json:"source"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Label        string  `json:"label"`
	RadiusMeters int     `json:"radius_meters"`
}

// Service owns the location state machine.
type Service struct {
	mu           sync.RWMutex
	state        State
	source       Source
	latitude     float64
	longitude    float64
	label        string
	radiusMeters int

	geoapify GeoapifyProvider
	osm      places.Provider
	store    BusinessSource

	ipLookupURL string
	httpClient  *retryablehttp.Client
	logger      *slog.Logger
}

// Options configures the location service.
type Options struct {
	Geoapify     GeoapifyProvider
	OSM          places.Provider
	Store        BusinessSource
	IPLookupURL  string // empty disables IP lookup
	RadiusMeters int
	Logger       *slog.Logger
}

// NewService creates a location service in the Locating state.
func NewService(opts Options) *Service {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 1
	httpClient.HTTPClient.Timeout = 10 * time.Second
	httpClient.Logger = nil

	radius := opts.RadiusMeters
	if radius <= 0 {
		radius = DefaultRadiusMeters
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		state:        StateLocating,
		source:       SourceNone,
		radiusMeters: radius,
		geoapify:     opts.Geoapify,
		osm:          opts.OSM,
		store:        opts.Store,
		ipLookupURL:  opts.IPLookupURL,
		httpClient:   httpClient,
		logger:       logger,
	}
}

// Current returns a snapshot of the resolved location.
func (s *Service) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		State:        s.state,
		Source:       s.source,
		Latitude:     s.latitude,
		Longitude:    s.longitude,
		Label:        s.label,
		RadiusMeters: s.radiusMeters,
	}
}

// Resolve performs the automatic lookup chain: IP lookup, then the hardcoded
// default. It never errors; total failure lands in StateError with defaults.
// Manual or reported coordinates set earlier are left untouched.
func (s *Service) Resolve(ctx context.Context) Snapshot {
	s.mu.RLock()
	settled := precedence[s.source] > precedence[SourceIP]
	s.mu.RUnlock()
	if settled {
		return s.Current()
	}

	if lat, lon, label, ok := s.lookupIP(ctx); ok {
		s.setCoordinates(ctx, SourceIP, StateLocated, lat, lon, label)
		return s.Current()
	}

	s.logger.Warn("location lookup failed, using default coordinates")
	s.setCoordinates(ctx, SourceDefault, StateError, DefaultLatitude, DefaultLongitude, DefaultLabel)
	return s.Current()
}

// ReportCoordinates accepts client-supplied coordinates. Ignored when a
// manual override is in place.
func (s *Service) ReportCoordinates(ctx context.Context, lat, lon float64) Snapshot {
	s.mu.RLock()
	overridden := precedence[s.source] > precedence[SourceReported]
	s.mu.RUnlock()
	if !overridden {
		s.setCoordinates(ctx, SourceReported, StateLocated, lat, lon, "")
	}
	return s.Current()
}

// SetManualAddress geocodes a user-entered address and pins the location to
// it. The previous state is kept when geocoding finds nothing.
func (s *Service) SetManualAddress(ctx context.Context, address string) (Snapshot, error) {
	coords := s.forwardGeocode(ctx, address)
	if coords == nil {
		return s.Current(), fmt.Errorf("address not found: %s", address)
	}
	s.setCoordinates(ctx, SourceManual, StateLocated, coords.Latitude, coords.Longitude, coords.DisplayName)
	return s.Current(), nil
}

// ClearManualOverride drops a manual override and falls back to re-resolution.
func (s *Service) ClearManualOverride(ctx context.Context) Snapshot {
	s.mu.Lock()
	if s.source == SourceManual {
		s.source = SourceNone
		s.state = StateLocating
		s.latitude = 0
		s.longitude = 0
		s.label = ""
	}
	s.mu.Unlock()
	return s.Resolve(ctx)
}

// SetRadius updates the search radius in meters. Values outside 100-50000
// are clamped.
func (s *Service) SetRadius(radiusMeters int) Snapshot {
	s.mu.Lock()
	s.radiusMeters = min(max(radiusMeters, 100), 50000)
	s.mu.Unlock()
	return s.Current()
}

// DistanceFrom returns the haversine distance in kilometers from the current
// location to the given point, or nil when no coordinates exist yet. Callers
// treat a nil distance as "include".
func (s *Service) DistanceFrom(lat, lon float64) *float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateLocated && s.state != StateError {
		return nil
	}
	d := haversineKm(s.latitude, s.longitude, lat, lon)
	return &d
}

// setCoordinates commits a coordinate change and re-resolves the label when
// the source did not supply one.
func (s *Service) setCoordinates(ctx context.Context, source Source, state State, lat, lon float64, label string) {
	if label == "" {
		if addr := s.reverseGeocode(ctx, lat, lon); addr != nil {
			if addr.City != "" && addr.State != "" {
				label = addr.City + ", " + addr.State
			} else {
				label = addr.DisplayName
			}
		}
	}

	s.mu.Lock()
	s.source = source
	s.state = state
	s.latitude = lat
	s.longitude = lon
	s.label = label
	s.mu.Unlock()

	s.logger.Info("location updated",
		"source", source,
		"state", state,
		"lat", lat,
		"lon", lon,
		"label", label,
	)
}

// lookupIP resolves coordinates from the configured IP geolocation endpoint.
func (s *Service) lookupIP(ctx context.Context) (lat, lon float64, label string, ok bool) {
	if s.ipLookupURL == "" {
		return 0, 0, "", false
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.ipLookupURL, nil)
	if err != nil {
		return 0, 0, "", false
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("ip lookup failed", "error", err)
		return 0, 0, "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, 0, "", false
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, "", false
	}

	result := gjson.ParseBytes(body)
	latV, lonV := result.Get("lat"), result.Get("lon")
	if !latV.Exists() || !lonV.Exists() {
		return 0, 0, "", false
	}

	label = result.Get("city").String()
	if region := result.Get("region").String(); region != "" && label != "" {
		label += ", " + region
	}
	return latV.Float(), lonV.Float(), label, true
}

// reverseGeocode tries geoapify then osm; nil when both fail.
func (s *Service) reverseGeocode(ctx context.Context, lat, lon float64) *places.Address {
	if s.geoapify != nil && s.geoapify.Configured() {
		if addr, err := s.geoapify.ReverseGeocode(ctx, lat, lon); err == nil && addr != nil {
			return addr
		} else if err != nil {
			s.logger.Warn("geoapify reverse geocode failed", "error", err)
		}
	}
	if s.osm != nil {
		if addr, err := s.osm.ReverseGeocode(ctx, lat, lon); err == nil && addr != nil {
			return addr
		} else if err != nil {
			s.logger.Warn("osm reverse geocode failed", "error", err)
		}
	}
	return nil
}

// forwardGeocode tries geoapify then osm; nil when both fail.
func (s *Service) forwardGeocode(ctx context.Context, query string) *places.Coordinates {
	if s.geoapify != nil && s.geoapify.Configured() {
		if coords, err := s.geoapify.ForwardGeocode(ctx, query); err == nil && coords != nil {
			return coords
		} else if err != nil {
			s.logger.Warn("geoapify forward geocode failed", "error", err)
		}
	}
	if s.osm != nil {
		if coords, err := s.osm.ForwardGeocode(ctx, query); err == nil && coords != nil {
			return coords
		} else if err != nil {
			s.logger.Warn("osm forward geocode failed", "error", err)
		}
	}
	return nil
}

// NearbyBusinesses fetches businesses around the current location with the
// provider fallback chain: geoapify, then osm, then seeded data. Provider
// failures degrade, never propagate.
func (s *Service) NearbyBusinesses(ctx context.Context) ([]domain.Business, error) {
	snap := s.Current()

	if s.geoapify != nil && s.geoapify.Configured() {
		businesses, err := s.geoapify.FetchNearbyBusinesses(ctx, snap.Latitude, snap.Longitude, snap.RadiusMeters)
		if err == nil && len(businesses) > 0 {
			return businesses, nil
		}
		if err != nil {
			s.logger.Warn("geoapify nearby fetch failed, falling back", "error", err)
		}
	}

	if s.osm != nil {
		businesses, err := s.osm.FetchNearbyBusinesses(ctx, snap.Latitude, snap.Longitude, snap.RadiusMeters)
		if err == nil && len(businesses) > 0 {
			return businesses, nil
		}
		if err != nil {
			s.logger.Warn("osm nearby fetch failed, falling back to seeded data", "error", err)
		}
	}

	return s.store.GetBusinesses(ctx)
}

// earthRadiusKm is the mean earth radius.
const earthRadiusKm = 6371.0

// haversineKm computes the great-circle distance between two points.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
