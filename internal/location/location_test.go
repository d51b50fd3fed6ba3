package location

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/places"
)

// fakeProvider is a scriptable places.Provider.
type fakeProvider struct {
	name       string
	configured bool
	nearby     []domain.Business
	nearbyErr  error
	address    *places.Address
	coords     *places.Coordinates
}

func (f *fakeProvider) Name() string     { return f.name }
func (f *fakeProvider) Configured() bool { return f.configured }

func (f *fakeProvider) FetchNearbyBusinesses(context.Context, float64, float64, int) ([]domain.Business, error) {
	return f.nearby, f.nearbyErr
}

func (f *fakeProvider) ReverseGeocode(context.Context, float64, float64) (*places.Address, error) {
	return f.address, nil
}

func (f *fakeProvider) ForwardGeocode(context.Context, string) (*places.Coordinates, error) {
	return f.coords, nil
}

func (f *fakeProvider) FetchPlaceDetails(context.Context, string) (*domain.Business, error) {
	return nil, nil
}

// fakeStore returns a fixed seeded business list.
type fakeStore struct {
	businesses []domain.Business
}

func (f *fakeStore) GetBusinesses(context.Context) ([]domain.Business, error) {
	return f.businesses, nil
}

func newTestService(geoapify *fakeProvider, osm *fakeProvider, ipURL string) *Service {
	return NewService(Options{
		Geoapify:    geoapify,
		OSM:         osm,
		Store:       &fakeStore{businesses: []domain.Business{{ID: "biz-seeded"}}},
		IPLookupURL: ipURL,
	})
}

func TestResolve_IPLookup(t *testing.T) {
	ipServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"lat": 37.77, "lon": -122.44, "city": "San Francisco", "region": "CA"}`))
	}))
	defer ipServer.Close()

	svc := newTestService(&fakeProvider{name: "geoapify"}, &fakeProvider{name: "osm"}, ipServer.URL)
	assert.Equal(t, StateLocating, svc.Current().State)

	snap := svc.Resolve(context.Background())
	assert.Equal(t, StateLocated, snap.State)
	assert.Equal(t, SourceIP, snap.Source)
	assert.InDelta(t, 37.77, snap.Latitude, 0.001)
	assert.Equal(t, "San Francisco, CA", snap.Label)
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	ipServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer ipServer.Close()

	svc := newTestService(&fakeProvider{name: "geoapify"}, &fakeProvider{name: "osm"}, ipServer.URL)
	snap := svc.Resolve(context.Background())

	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, SourceDefault, snap.Source)
	assert.Equal(t, DefaultLatitude, snap.Latitude)
	assert.Equal(t, DefaultLongitude, snap.Longitude)
	assert.Equal(t, DefaultLabel, snap.Label)
}

func TestReportCoordinates_OverridesIP(t *testing.T) {
	osm := &fakeProvider{
		name:    "osm",
		address: &places.Address{City: "Oakland", State: "California"},
	}
	svc := newTestService(&fakeProvider{name: "geoapify"}, osm, "")

	svc.Resolve(context.Background()) // lands on default (no IP URL)
	snap := svc.ReportCoordinates(context.Background(), 37.80, -122.27)

	assert.Equal(t, StateLocated, snap.State)
	assert.Equal(t, SourceReported, snap.Source)
	assert.Equal(t, "Oakland, California", snap.Label)

	// A later automatic resolve must not displace reported coordinates.
	snap = svc.Resolve(context.Background())
	assert.Equal(t, SourceReported, snap.Source)
	assert.InDelta(t, 37.80, snap.Latitude, 0.001)
}

func TestSetManualAddress_TakesPrecedence(t *testing.T) {
	geoapify := &fakeProvider{
		name:       "geoapify",
		configured: true,
		coords:     &places.Coordinates{Latitude: 37.75, Longitude: -122.43, DisplayName: "24th St, San Francisco"},
	}
	svc := newTestService(geoapify, &fakeProvider{name: "osm"}, "")

	snap, err := svc.SetManualAddress(context.Background(), "24th st")
	require.NoError(t, err)
	assert.Equal(t, SourceManual, snap.Source)
	assert.Equal(t, "24th St, San Francisco", snap.Label)

	// Reported coordinates lose to a manual override.
	snap = svc.ReportCoordinates(context.Background(), 40.0, -100.0)
	assert.Equal(t, SourceManual, snap.Source)
	assert.InDelta(t, 37.75, snap.Latitude, 0.001)
}

func TestSetManualAddress_NotFoundKeepsState(t *testing.T) {
	svc := newTestService(&fakeProvider{name: "geoapify"}, &fakeProvider{name: "osm"}, "")
	svc.Resolve(context.Background())
	before := svc.Current()

	_, err := svc.SetManualAddress(context.Background(), "xyzzy")
	assert.Error(t, err)
	assert.Equal(t, before, svc.Current())
}

func TestDistanceFrom(t *testing.T) {
	svc := newTestService(&fakeProvider{name: "geoapify"}, &fakeProvider{name: "osm"}, "")

	// No coordinates yet: nil distance.
	assert.Nil(t, svc.DistanceFrom(37.77, -122.44))

	svc.ReportCoordinates(context.Background(), 37.7749, -122.4194)

	// SF to Oakland city hall is roughly 13 km.
	d := svc.DistanceFrom(37.8044, -122.2712)
	require.NotNil(t, d)
	assert.InDelta(t, 13.4, *d, 1.0)

	// Same point: zero.
	same := svc.DistanceFrom(37.7749, -122.4194)
	require.NotNil(t, same)
	assert.InDelta(t, 0, *same, 0.001)
}

func TestNearbyBusinesses_FallbackChain(t *testing.T) {
	ctx := context.Background()

	t.Run("geoapify first", func(t *testing.T) {
		geoapify := &fakeProvider{name: "geoapify", configured: true, nearby: []domain.Business{{ID: "geoapify-1"}}}
		osm := &fakeProvider{name: "osm", nearby: []domain.Business{{ID: "osm-1"}}}
		svc := newTestService(geoapify, osm, "")

		businesses, err := svc.NearbyBusinesses(ctx)
		require.NoError(t, err)
		require.Len(t, businesses, 1)
		assert.Equal(t, "geoapify-1", businesses[0].ID)
	})

	t.Run("osm when geoapify unconfigured", func(t *testing.T) {
		geoapify := &fakeProvider{name: "geoapify"}
		osm := &fakeProvider{name: "osm", nearby: []domain.Business{{ID: "osm-1"}}}
		svc := newTestService(geoapify, osm, "")

		businesses, err := svc.NearbyBusinesses(ctx)
		require.NoError(t, err)
		require.Len(t, businesses, 1)
		assert.Equal(t, "osm-1", businesses[0].ID)
	})

	t.Run("seeded when both fail", func(t *testing.T) {
		geoapify := &fakeProvider{name: "geoapify", configured: true, nearbyErr: errors.New("boom")}
		osm := &fakeProvider{name: "osm", nearbyErr: errors.New("boom")}
		svc := newTestService(geoapify, osm, "")

		businesses, err := svc.NearbyBusinesses(ctx)
		require.NoError(t, err)
		require.Len(t, businesses, 1)
		assert.Equal(t, "biz-seeded", businesses[0].ID)
	})
}

func TestSetRadius_Clamped(t *testing.T) {
	svc := newTestService(&fakeProvider{name: "geoapify"}, &fakeProvider{name: "osm"}, "")

	assert.Equal(t, 5000, svc.SetRadius(5000).RadiusMeters)
	assert.Equal(t, 100, svc.SetRadius(10).RadiusMeters)
	assert.Equal(t, 50000, svc.SetRadius(1000000).RadiusMeters)
}

func TestClearManualOverride(t *testing.T) {
	geoapify := &fakeProvider{
		name:       "geoapify",
		configured: true,
		coords:     &places.Coordinates{Latitude: 37.75, Longitude: -122.43, DisplayName: "Somewhere"},
	}
	svc := newTestService(geoapify, &fakeProvider{name: "osm"}, "")

	_, err := svc.SetManualAddress(context.Background(), "somewhere")
	require.NoError(t, err)

	snap := svc.ClearManualOverride(context.Background())
	assert.NotEqual(t, SourceManual, snap.Source)
}
