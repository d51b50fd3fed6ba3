package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/store"
)

// ReportService generates directory analytics reports.
type ReportService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewReportService creates a new report service.
func NewReportService(st *store.Store, logger *slog.Logger) *ReportService {
	return &ReportService{
		store:  st,
		logger: logger,
	}
}

// Generate builds a report over the businesses matching the filters.
func (s *ReportService) Generate(ctx context.Context, filters domain.ReportFilters) (*domain.Report, error) {
	report, err := s.store.GenerateReport(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}
	s.logger.Info("report generated",
		"businesses", report.TotalBusinesses,
		"reviews", report.TotalReviews)
	return report, nil
}

// ExportJSON renders a report as indented JSON.
func (s *ReportService) ExportJSON(ctx context.Context, filters domain.ReportFilters) ([]byte, error) {
	return s.store.ExportReportJSON(ctx, filters)
}

// ExportCSV renders a report as CSV sections.
func (s *ReportService) ExportCSV(ctx context.Context, filters domain.ReportFilters) ([]byte, error) {
	return s.store.ExportReportCSV(ctx, filters)
}
