package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/store"
)

// SessionService orchestrates the single local user session.
type SessionService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(st *store.Store, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:  st,
		logger: logger,
	}
}

// Get returns the current session, creating it on first access.
func (s *SessionService) Get(ctx context.Context) (*domain.UserSession, error) {
	return s.store.GetSession(ctx)
}

// CompleteOnboarding marks onboarding as finished.
func (s *SessionService) CompleteOnboarding(ctx context.Context) (*domain.UserSession, error) {
	return s.update(ctx, func(session *domain.UserSession) {
		session.OnboardingComplete = true
	})
}

// SetHighContrast toggles the high contrast display preference.
func (s *SessionService) SetHighContrast(ctx context.Context, enabled bool) (*domain.UserSession, error) {
	return s.update(ctx, func(session *domain.UserSession) {
		session.HighContrastMode = enabled
	})
}

// update applies a mutation to the session and persists it.
func (s *SessionService) update(ctx context.Context, fn func(*domain.UserSession)) (*domain.UserSession, error) {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	fn(session)

	if err := s.store.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.logger.Debug("session updated", "session_id", session.ID)
	return session, nil
}
