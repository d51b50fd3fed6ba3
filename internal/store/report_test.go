package store

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

func TestGenerateReport(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))

	report, err := store.GenerateReport(ctx, domain.ReportFilters{})
	require.NoError(t, err)

	assert.Equal(t, 8, report.TotalBusinesses)
	assert.Equal(t, 12, report.TotalReviews)
	assert.NotEmpty(t, report.CategoryBreakdown)
	assert.LessOrEqual(t, len(report.TopRated), 5)
	assert.LessOrEqual(t, len(report.MostReviewed), 5)
	assert.LessOrEqual(t, len(report.RecentReviews), 10)
	assert.Equal(t, 4, report.Deals.TotalDeals)

	// Categories come back alphabetically.
	var categories []string
	total := 0
	for _, c := range report.CategoryBreakdown {
		categories = append(categories, c.Category)
		total += c.Count
	}
	assert.True(t, sortedStrings(categories))
	assert.Equal(t, report.TotalBusinesses, total)

	// Distribution buckets account for every counted review.
	var distributed int
	for _, n := range report.RatingDistribution {
		distributed += n
	}
	assert.Equal(t, report.TotalReviews, distributed)
}

func sortedStrings(values []string) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}

func TestGenerateReport_HalfStarBuckets(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.AddBusiness(ctx, testBusiness("biz-001", "Test Cafe")))

	for _, rating := range []float64{4.5, 0.5} {
		input := validReviewInput("biz-001")
		input.Rating = rating
		input.Comment = fmt.Sprintf("A visit worth exactly %.1f stars, no more.", rating)
		result, err := store.AddReview(ctx, input)
		require.NoError(t, err)
		require.True(t, result.Success, result.Message)
	}

	report, err := store.GenerateReport(ctx, domain.ReportFilters{})
	require.NoError(t, err)

	// Floor with clamping: 4.5 lands in the 4-star bucket, 0.5 in the 1-star.
	assert.Equal(t, [5]int{1, 0, 0, 1, 0}, report.RatingDistribution)
}

func TestGenerateReport_CategoryFilter(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))

	report, err := store.GenerateReport(ctx, domain.ReportFilters{Category: "restaurants"})
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalBusinesses)
	require.Len(t, report.CategoryBreakdown, 1)
	assert.Equal(t, "restaurants", report.CategoryBreakdown[0].Category)

	// Reviews of filtered-out businesses are excluded.
	for _, r := range report.RecentReviews {
		biz, err := store.GetBusinessByID(ctx, r.BusinessID)
		require.NoError(t, err)
		assert.Equal(t, "restaurants", biz.Category)
	}
}

func TestGenerateReport_ReviewDateRange(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))

	full, err := store.GenerateReport(ctx, domain.ReportFilters{})
	require.NoError(t, err)

	narrowed, err := store.GenerateReport(ctx, domain.ReportFilters{
		ReviewsFrom: time.Now().AddDate(0, 0, -10),
	})
	require.NoError(t, err)
	assert.Less(t, narrowed.TotalReviews, full.TotalReviews)
	assert.Equal(t, full.TotalBusinesses, narrowed.TotalBusinesses)
}

func TestExportReportJSON(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))

	data, err := store.ExportReportJSON(ctx, domain.ReportFilters{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"total_businesses\"")
	assert.Contains(t, string(data), "\n  ") // indented
}

func TestExportReportJSON_RoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	// Pin the clock so both generations produce the same GeneratedAt.
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return at }

	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))

	report, err := store.GenerateReport(ctx, domain.ReportFilters{})
	require.NoError(t, err)

	data, err := store.ExportReportJSON(ctx, domain.ReportFilters{})
	require.NoError(t, err)

	var parsed domain.Report
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, *report, parsed)
}

func TestExportReportCSV(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))

	data, err := store.ExportReportCSV(ctx, domain.ReportFilters{})
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "section,field,value"))
	assert.Contains(t, out, "summary,total_businesses,8")
	assert.Contains(t, out, "category,count,average_rating")
	assert.Contains(t, out, "stars,review_count")
	assert.Contains(t, out, "rank,business,rating,reviews")
}
