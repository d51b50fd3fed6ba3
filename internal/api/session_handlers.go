package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

func (s *Server) registerSessionRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/api/v1/session",
		Summary:     "Get session",
		Description: "Returns the local user session, creating it on first access",
		Tags:        []string{"Session"},
	}, s.handleGetSession)

	huma.Register(s.api, huma.Operation{
		OperationID: "completeOnboarding",
		Method:      http.MethodPost,
		Path:        "/api/v1/session/onboarding/complete",
		Summary:     "Complete onboarding",
		Tags:        []string{"Session"},
	}, s.handleCompleteOnboarding)

	huma.Register(s.api, huma.Operation{
		OperationID: "setHighContrast",
		Method:      http.MethodPut,
		Path:        "/api/v1/session/preferences/high-contrast",
		Summary:     "Set high contrast mode",
		Tags:        []string{"Session"},
	}, s.handleSetHighContrast)
}

// === DTOs ===

// SessionOutput wraps the user session.
type SessionOutput struct {
	Body domain.UserSession
}

// HighContrastInput toggles the high contrast preference.
type HighContrastInput struct {
	Body struct {
		Enabled bool `json:"enabled"`
	}
}

// === Handlers ===

func (s *Server) handleGetSession(ctx context.Context, _ *struct{}) (*SessionOutput, error) {
	session, err := s.services.Session.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &SessionOutput{Body: *session}, nil
}

func (s *Server) handleCompleteOnboarding(ctx context.Context, _ *struct{}) (*SessionOutput, error) {
	session, err := s.services.Session.CompleteOnboarding(ctx)
	if err != nil {
		return nil, err
	}
	return &SessionOutput{Body: *session}, nil
}

func (s *Server) handleSetHighContrast(ctx context.Context, input *HighContrastInput) (*SessionOutput, error) {
	session, err := s.services.Session.SetHighContrast(ctx, input.Body.Enabled)
	if err != nil {
		return nil, err
	}
	return &SessionOutput{Body: *session}, nil
}
