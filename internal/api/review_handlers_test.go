package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

func TestListBusinessReviews(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/businesses/biz-0001/reviews")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[struct {
		Reviews []domain.Review `json:"reviews"`
		Total   int             `json:"total"`
	}](t, resp.Body.Bytes())

	require.Equal(t, 3, envelope.Data.Total)
	// Newest first.
	for i := 1; i < len(envelope.Data.Reviews); i++ {
		assert.False(t, envelope.Data.Reviews[i].CreatedAt.After(envelope.Data.Reviews[i-1].CreatedAt))
	}
}

func TestListBusinessReviews_UnknownBusiness(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/businesses/biz-9999/reviews")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSubmitReview_Accepted(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Post("/api/v1/businesses/biz-0003/reviews", map[string]any{
		"user_name": "Jamie",
		"rating":    4.5,
		"comment":   "Walked in without an appointment and still got a great cut.",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[struct {
		Accepted bool           `json:"accepted"`
		Review   *domain.Review `json:"review"`
	}](t, resp.Body.Bytes())

	assert.True(t, envelope.Data.Accepted)
	require.NotNil(t, envelope.Data.Review)
	assert.Equal(t, 4.5, envelope.Data.Review.Rating)
	assert.Equal(t, "Jamie", envelope.Data.Review.UserName)
}

func TestSubmitReview_SpamRejected(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Post("/api/v1/businesses/biz-0003/reviews", map[string]any{
		"rating":  4.0,
		"comment": "Amazing deals at https://spam.example.com right now!!",
	})
	// Content rejection is a verdict, not a transport error.
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[struct {
		Accepted bool           `json:"accepted"`
		Message  string         `json:"message"`
		Review   *domain.Review `json:"review"`
	}](t, resp.Body.Bytes())

	assert.False(t, envelope.Data.Accepted)
	assert.NotEmpty(t, envelope.Data.Message)
	assert.Nil(t, envelope.Data.Review)
}

func TestSubmitReview_UnknownBusiness(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Post("/api/v1/businesses/biz-9999/reviews", map[string]any{
		"rating":  4.0,
		"comment": "A review for a business that does not exist anywhere.",
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestMarkReviewHelpful(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Post("/api/v1/reviews/rev-0002/helpful", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[domain.Review](t, resp.Body.Bytes())
	assert.Equal(t, 6, envelope.Data.Helpful)

	resp = ts.api.Post("/api/v1/reviews/rev-9999/helpful", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
