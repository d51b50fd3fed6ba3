package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/brightsideapp/brightside-server/internal/location"
)

func (s *Server) registerLocationRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getLocation",
		Method:      http.MethodGet,
		Path:        "/api/v1/location",
		Summary:     "Get location",
		Description: "Returns the current location context without triggering a lookup",
		Tags:        []string{"Location"},
	}, s.handleGetLocation)

	huma.Register(s.api, huma.Operation{
		OperationID: "resolveLocation",
		Method:      http.MethodPost,
		Path:        "/api/v1/location/resolve",
		Summary:     "Resolve location",
		Description: "Runs the resolution chain and returns the settled location",
		Tags:        []string{"Location"},
	}, s.handleResolveLocation)

	huma.Register(s.api, huma.Operation{
		OperationID: "reportCoordinates",
		Method:      http.MethodPost,
		Path:        "/api/v1/location/coordinates",
		Summary:     "Report coordinates",
		Description: "Accepts device-reported coordinates as the active location",
		Tags:        []string{"Location"},
	}, s.handleReportCoordinates)

	huma.Register(s.api, huma.Operation{
		OperationID: "setManualAddress",
		Method:      http.MethodPut,
		Path:        "/api/v1/location/address",
		Summary:     "Set manual address",
		Description: "Geocodes an address and pins the location to it until cleared",
		Tags:        []string{"Location"},
	}, s.handleSetManualAddress)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearManualAddress",
		Method:      http.MethodDelete,
		Path:        "/api/v1/location/address",
		Summary:     "Clear manual address",
		Description: "Drops the manual override and re-resolves automatically",
		Tags:        []string{"Location"},
	}, s.handleClearManualAddress)

	huma.Register(s.api, huma.Operation{
		OperationID: "setSearchRadius",
		Method:      http.MethodPut,
		Path:        "/api/v1/location/radius",
		Summary:     "Set search radius",
		Tags:        []string{"Location"},
	}, s.handleSetSearchRadius)
}

// === DTOs ===

// LocationOutput wraps a location snapshot.
type LocationOutput struct {
	Body location.Snapshot
}

// ReportCoordinatesInput carries device-reported coordinates.
type ReportCoordinatesInput struct {
	Body struct {
		Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
		Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	}
}

// ManualAddressInput carries a free-form address to pin the location to.
type ManualAddressInput struct {
	Body struct {
		Address string `json:"address" validate:"required,min=3,max=200"`
	}
}

// SearchRadiusInput sets the nearby search radius.
type SearchRadiusInput struct {
	Body struct {
		RadiusMeters int `json:"radius_meters" validate:"required,gte=100,lte=50000"`
	}
}

// === Handlers ===

func (s *Server) handleGetLocation(_ context.Context, _ *struct{}) (*LocationOutput, error) {
	return &LocationOutput{Body: s.location.Current()}, nil
}

func (s *Server) handleResolveLocation(ctx context.Context, _ *struct{}) (*LocationOutput, error) {
	snap := s.location.Resolve(ctx)
	s.logger.Info("Location resolved", "state", snap.State, "source", snap.Source, "label", snap.Label)
	return &LocationOutput{Body: snap}, nil
}

func (s *Server) handleReportCoordinates(ctx context.Context, input *ReportCoordinatesInput) (*LocationOutput, error) {
	snap := s.location.ReportCoordinates(ctx, input.Body.Latitude, input.Body.Longitude)
	return &LocationOutput{Body: snap}, nil
}

func (s *Server) handleSetManualAddress(ctx context.Context, input *ManualAddressInput) (*LocationOutput, error) {
	snap, err := s.location.SetManualAddress(ctx, input.Body.Address)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("address could not be geocoded", err)
	}
	return &LocationOutput{Body: snap}, nil
}

func (s *Server) handleClearManualAddress(ctx context.Context, _ *struct{}) (*LocationOutput, error) {
	return &LocationOutput{Body: s.location.ClearManualOverride(ctx)}, nil
}

func (s *Server) handleSetSearchRadius(_ context.Context, input *SearchRadiusInput) (*LocationOutput, error) {
	return &LocationOutput{Body: s.location.SetRadius(input.Body.RadiusMeters)}, nil
}
