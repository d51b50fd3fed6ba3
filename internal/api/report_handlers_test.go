package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

func TestGenerateReport(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/reports")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[domain.Report](t, resp.Body.Bytes())
	assert.Equal(t, 8, envelope.Data.TotalBusinesses)
	assert.Equal(t, 12, envelope.Data.TotalReviews)
	assert.NotEmpty(t, envelope.Data.CategoryBreakdown)
	assert.False(t, envelope.Data.GeneratedAt.IsZero())
}

func TestGenerateReport_CategoryFilter(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/reports?category=services")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[domain.Report](t, resp.Body.Bytes())
	assert.Less(t, envelope.Data.TotalBusinesses, 8)
	assert.NotZero(t, envelope.Data.TotalBusinesses)
}

func TestGenerateReport_BadDate(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/reports?from=not-a-date")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestExportReport_JSON(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export?format=json", nil)
	rec := httptest.NewRecorder()
	ts.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "report.json")
	assert.Contains(t, rec.Body.String(), "total_businesses")
}

func TestExportReport_CSV(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export?format=csv", nil)
	rec := httptest.NewRecorder()
	ts.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "report.csv")
	assert.NotEmpty(t, strings.TrimSpace(rec.Body.String()))
}

func TestExportReport_UnknownFormat(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export?format=xml", nil)
	rec := httptest.NewRecorder()
	ts.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
