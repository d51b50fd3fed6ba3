package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/id"
	"github.com/brightsideapp/brightside-server/internal/validation"
)

// GetReviews returns every review, most recent first.
func (s *Store) GetReviews(_ context.Context) ([]domain.Review, error) {
	reviews, err := readList[domain.Review](s, KeyReviews)
	if err != nil {
		return nil, err
	}
	sortReviewsNewestFirst(reviews)
	return reviews, nil
}

// GetReviewsByBusiness returns a business's reviews, most recent first.
func (s *Store) GetReviewsByBusiness(_ context.Context, businessID string) ([]domain.Review, error) {
	reviews, err := readList[domain.Review](s, KeyReviews)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Review, 0)
	for _, r := range reviews {
		if r.BusinessID == businessID {
			filtered = append(filtered, r)
		}
	}
	sortReviewsNewestFirst(filtered)
	return filtered, nil
}

func sortReviewsNewestFirst(reviews []domain.Review) {
	slices.SortStableFunc(reviews, func(a, b domain.Review) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

// ReviewInput is a review submission before validation.
type ReviewInput struct {
	BusinessID string
	UserID     string
	UserName   string
	Rating     float64
	Comment    string
}

// SubmitResult reports the outcome of a review submission. A rejection
// (rate limit, validation, unknown business) is a normal outcome, not an
// error; Message carries the user-facing reason.
type SubmitResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Review  *domain.Review `json:"review,omitempty"`
}

// AddReview validates and persists a review in a single transaction: the
// session rate limit is checked and advanced, the review is prepended, and the
// business's rating aggregates are recomputed, all atomically.
func (s *Store) AddReview(ctx context.Context, input ReviewInput) (*SubmitResult, error) {
	now := s.now()

	if !domain.ValidRating(input.Rating) {
		return &SubmitResult{Message: "Rating must be between 0.5 and 5 stars in half-star steps."}, nil
	}
	if result := validation.ReviewText(input.Comment); !result.Valid {
		return &SubmitResult{Message: result.Message}, nil
	}

	var submitted SubmitResult
	err := s.db.Update(func(txn *badger.Txn) error {
		session, err := sessionInTxn(txn, s, now)
		if err != nil {
			return err
		}
		if !session.CanReview(now) {
			submitted = SubmitResult{Message: "Review limit reached. You can post up to 5 reviews per hour."}
			return nil
		}

		businesses, err := listInTxn[domain.Business](txn, KeyBusinesses)
		if err != nil {
			return err
		}
		bizIdx := -1
		for i := range businesses {
			if businesses[i].ID == input.BusinessID {
				bizIdx = i
				break
			}
		}
		if bizIdx < 0 {
			return ErrBusinessNotFound
		}

		reviews, err := listInTxn[domain.Review](txn, KeyReviews)
		if err != nil {
			return err
		}

		review := domain.Review{
			ID:         id.MustGenerate(id.Review),
			BusinessID: input.BusinessID,
			UserID:     input.UserID,
			UserName:   input.UserName,
			Rating:     input.Rating,
			Comment:    input.Comment,
			CreatedAt:  now,
		}
		reviews = append([]domain.Review{review}, reviews...)

		ratings := make([]float64, 0, len(reviews))
		for _, r := range reviews {
			if r.BusinessID == input.BusinessID {
				ratings = append(ratings, r.Rating)
			}
		}
		businesses[bizIdx].ApplyRatings(ratings)

		session.RegisterReview(now)

		if err := setInTxn(txn, KeyReviews, reviews); err != nil {
			return err
		}
		if err := setInTxn(txn, KeyBusinesses, businesses); err != nil {
			return err
		}
		if err := setInTxn(txn, KeySession, session); err != nil {
			return err
		}

		updated := businesses[bizIdx]
		submitted = SubmitResult{Success: true, Message: "Thanks for your review!", Review: &review}
		s.indexBusiness(ctx, &updated)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add review: %w", err)
	}

	if submitted.Success {
		s.emit("review", "added", submitted.Review.ID)
		s.emit("business", "updated", input.BusinessID)
		if s.logger != nil {
			s.logger.Info("review added",
				"review_id", submitted.Review.ID,
				"business_id", input.BusinessID,
				"rating", input.Rating,
			)
		}
	}
	return &submitted, nil
}

// MarkReviewHelpful increments a review's helpful counter.
func (s *Store) MarkReviewHelpful(_ context.Context, reviewID string) (*domain.Review, error) {
	var updated domain.Review
	err := s.db.Update(func(txn *badger.Txn) error {
		reviews, err := listInTxn[domain.Review](txn, KeyReviews)
		if err != nil {
			return err
		}
		for i := range reviews {
			if reviews[i].ID == reviewID {
				reviews[i].MarkHelpful()
				updated = reviews[i]
				return setInTxn(txn, KeyReviews, reviews)
			}
		}
		return ErrReviewNotFound
	})
	if err != nil {
		return nil, err
	}

	s.emit("review", "updated", reviewID)
	return &updated, nil
}
