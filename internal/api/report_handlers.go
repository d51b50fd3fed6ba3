package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/http/response"
)

func (s *Server) registerReportRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "generateReport",
		Method:      http.MethodGet,
		Path:        "/api/v1/reports",
		Summary:     "Generate report",
		Description: "Aggregates directory statistics over the matching businesses",
		Tags:        []string{"Reports"},
	}, s.handleGenerateReport)
}

// === DTOs ===

// ReportInput selects the report scope.
type ReportInput struct {
	Category  string  `query:"category" validate:"omitempty,max=50" doc:"Only businesses in this category"`
	MinRating float64 `query:"min_rating" validate:"omitempty,gte=0,lte=5" doc:"Only businesses at or above this rating"`
	From      string  `query:"from" validate:"omitempty,datetime=2006-01-02" doc:"Include reviews on or after this date (YYYY-MM-DD)"`
	To        string  `query:"to" validate:"omitempty,datetime=2006-01-02" doc:"Include reviews on or before this date (YYYY-MM-DD)"`
}

// ReportOutput wraps a generated report.
type ReportOutput struct {
	Body domain.Report
}

// === Handlers ===

func (s *Server) handleGenerateReport(ctx context.Context, input *ReportInput) (*ReportOutput, error) {
	filters, err := reportFilters(input.Category, input.MinRating, input.From, input.To)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid date filter", err)
	}

	report, err := s.services.Report.Generate(ctx, filters)
	if err != nil {
		return nil, err
	}
	return &ReportOutput{Body: *report}, nil
}

// handleExportReport streams a report as a JSON or CSV download. It sits
// outside huma so the body is a file, not an envelope.
func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var minRating float64
	if raw := query.Get("min_rating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.BadRequest(w, "invalid min_rating", s.logger)
			return
		}
		minRating = parsed
	}

	filters, err := reportFilters(query.Get("category"), minRating, query.Get("from"), query.Get("to"))
	if err != nil {
		response.BadRequest(w, "invalid date filter", s.logger)
		return
	}

	format := query.Get("format")
	if format == "" {
		format = "json"
	}

	var (
		data        []byte
		contentType string
		filename    string
	)
	switch format {
	case "json":
		data, err = s.services.Report.ExportJSON(r.Context(), filters)
		contentType = "application/json; charset=utf-8"
		filename = "report.json"
	case "csv":
		data, err = s.services.Report.ExportCSV(r.Context(), filters)
		contentType = "text/csv; charset=utf-8"
		filename = "report.csv"
	default:
		response.BadRequest(w, "format must be json or csv", s.logger)
		return
	}
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("failed to write report export", "error", err)
	}
}

// reportFilters parses optional date bounds into store filters.
func reportFilters(category string, minRating float64, from, to string) (domain.ReportFilters, error) {
	filters := domain.ReportFilters{
		Category:  category,
		MinRating: minRating,
	}

	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filters, err
		}
		filters.ReviewsFrom = t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filters, err
		}
		// Inclusive end of day.
		filters.ReviewsTo = t.Add(24*time.Hour - time.Nanosecond)
	}

	return filters, nil
}
