package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/store"
)

// ReviewService orchestrates review submission and retrieval.
type ReviewService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(st *store.Store, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		store:  st,
		logger: logger,
	}
}

// ListByBusiness returns a business's reviews, newest first.
func (s *ReviewService) ListByBusiness(ctx context.Context, businessID string) ([]domain.Review, error) {
	// Verify the business exists so unknown IDs 404 instead of returning
	// an empty list.
	if _, err := s.store.GetBusinessByID(ctx, businessID); err != nil {
		return nil, err
	}
	return s.store.GetReviewsByBusiness(ctx, businessID)
}

// Submit validates and stores a review. Rejections (bad content, rate
// limit) come back in the result, not as an error.
func (s *ReviewService) Submit(ctx context.Context, input store.ReviewInput) (*store.SubmitResult, error) {
	result, err := s.store.AddReview(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("add review: %w", err)
	}

	if result.Success {
		s.logger.Info("review submitted",
			"review_id", result.Review.ID,
			"business_id", input.BusinessID,
			"rating", input.Rating)
	} else {
		s.logger.Info("review rejected",
			"business_id", input.BusinessID,
			"reason", result.Message)
	}
	return result, nil
}

// MarkHelpful increments a review's helpful counter.
func (s *ReviewService) MarkHelpful(ctx context.Context, reviewID string) (*domain.Review, error) {
	return s.store.MarkReviewHelpful(ctx, reviewID)
}
