package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/store"
)

func (s *Server) registerReviewRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBusinessReviews",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses/{id}/reviews",
		Summary:     "List reviews",
		Description: "Returns a business's reviews, newest first",
		Tags:        []string{"Reviews"},
	}, s.handleListBusinessReviews)

	huma.Register(s.api, huma.Operation{
		OperationID: "submitReview",
		Method:      http.MethodPost,
		Path:        "/api/v1/businesses/{id}/reviews",
		Summary:     "Submit review",
		Description: "Submits a review; content and rate-limit rejections return accepted=false",
		Tags:        []string{"Reviews"},
	}, s.handleSubmitReview)

	huma.Register(s.api, huma.Operation{
		OperationID: "markReviewHelpful",
		Method:      http.MethodPost,
		Path:        "/api/v1/reviews/{id}/helpful",
		Summary:     "Mark review helpful",
		Description: "Increments a review's helpful counter",
		Tags:        []string{"Reviews"},
	}, s.handleMarkReviewHelpful)
}

// === DTOs ===

// ListReviewsInput identifies the business whose reviews to list.
type ListReviewsInput struct {
	ID string `path:"id" doc:"Business ID"`
}

// ReviewListOutput wraps a list of reviews.
type ReviewListOutput struct {
	Body struct {
		Reviews []domain.Review `json:"reviews"`
		Total   int             `json:"total"`
	}
}

// SubmitReviewInput is the review submission payload.
type SubmitReviewInput struct {
	ID   string `path:"id" doc:"Business ID"`
	Body struct {
		UserName string  `json:"user_name,omitempty" validate:"omitempty,max=60" doc:"Display name for the review"`
		Rating   float64 `json:"rating" validate:"required,gte=0.5,lte=5" doc:"Rating in half-star steps"`
		Comment  string  `json:"comment" validate:"required,min=1,max=2000" doc:"Review text"`
	}
}

// SubmitReviewOutput reports the submission outcome. A rejected review is
// still a 200; Accepted carries the verdict.
type SubmitReviewOutput struct {
	Body struct {
		Accepted bool           `json:"accepted"`
		Message  string         `json:"message,omitempty"`
		Review   *domain.Review `json:"review,omitempty"`
	}
}

// MarkHelpfulInput identifies the review to mark.
type MarkHelpfulInput struct {
	ID string `path:"id" doc:"Review ID"`
}

// ReviewOutput wraps one review.
type ReviewOutput struct {
	Body domain.Review
}

// === Handlers ===

func (s *Server) handleListBusinessReviews(ctx context.Context, input *ListReviewsInput) (*ReviewListOutput, error) {
	reviews, err := s.services.Review.ListByBusiness(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	out := &ReviewListOutput{}
	out.Body.Reviews = reviews
	out.Body.Total = len(reviews)
	return out, nil
}

func (s *Server) handleSubmitReview(ctx context.Context, input *SubmitReviewInput) (*SubmitReviewOutput, error) {
	result, err := s.services.Review.Submit(ctx, store.ReviewInput{
		BusinessID: input.ID,
		UserName:   input.Body.UserName,
		Rating:     input.Body.Rating,
		Comment:    input.Body.Comment,
	})
	if err != nil {
		return nil, err
	}

	out := &SubmitReviewOutput{}
	out.Body.Accepted = result.Success
	out.Body.Message = result.Message
	out.Body.Review = result.Review
	return out, nil
}

func (s *Server) handleMarkReviewHelpful(ctx context.Context, input *MarkHelpfulInput) (*ReviewOutput, error) {
	review, err := s.services.Review.MarkHelpful(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &ReviewOutput{Body: *review}, nil
}
