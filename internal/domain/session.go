package domain

import "time"

// Review rate limiting constants.
const (
	// MaxReviewsPerWindow is the number of reviews a session may submit in one
	// rolling window.
	MaxReviewsPerWindow = 5
	// ReviewWindow is the rolling rate-limit window measured from the last
	// review time.
	ReviewWindow = time.Hour
)

// UserSession is the singleton, unauthenticated usage context for one
// install. It tracks the review rate-limit window and user preferences.
// Created on first access, mutated by review submissions and preference
// toggles, never deleted.
type UserSession struct {
	ID                 string    `json:"id"`
	ReviewsThisHour    int       `json:"reviews_this_hour"`
	LastReviewTime     time.Time `json:"last_review_time"`
	OnboardingComplete bool      `json:"onboarding_complete"`
	HighContrastMode   bool      `json:"high_contrast_mode"`
	CreatedAt          time.Time `json:"created_at"`
}

// WindowExpired reports whether the rolling review window has lapsed at now.
// A session that never reviewed has an expired (empty) window.
func (s *UserSession) WindowExpired(now time.Time) bool {
	if s.LastReviewTime.IsZero() {
		return true
	}
	return now.Sub(s.LastReviewTime) >= ReviewWindow
}

// CanReview reports whether the session may submit another review at now.
func (s *UserSession) CanReview(now time.Time) bool {
	if s.WindowExpired(now) {
		return true
	}
	return s.ReviewsThisHour < MaxReviewsPerWindow
}

// RegisterReview records a successful review submission, resetting the
// counter first if the window has lapsed.
func (s *UserSession) RegisterReview(now time.Time) {
	if s.WindowExpired(now) {
		s.ReviewsThisHour = 0
	}
	s.ReviewsThisHour++
	s.LastReviewTime = now
}
