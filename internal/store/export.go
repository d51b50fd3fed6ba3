package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"fmt"
	"strconv"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

// ExportReportJSON renders a report as indented JSON.
func (s *Store) ExportReportJSON(ctx context.Context, filters domain.ReportFilters) ([]byte, error) {
	report, err := s.GenerateReport(ctx, filters)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(report, jsontext.WithIndent("  "))
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}

// ExportReportCSV renders a report as CSV with fixed sections: summary,
// category breakdown, rating distribution, and top-rated businesses.
// Sections are separated by blank rows.
func (s *Store) ExportReportCSV(ctx context.Context, filters domain.ReportFilters) ([]byte, error) {
	report, err := s.GenerateReport(ctx, filters)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"section", "field", "value"},
		{"summary", "generated_at", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"summary", "total_businesses", strconv.Itoa(report.TotalBusinesses)},
		{"summary", "total_reviews", strconv.Itoa(report.TotalReviews)},
		{"summary", "total_deals", strconv.Itoa(report.Deals.TotalDeals)},
		{"summary", "total_redemptions", strconv.Itoa(report.Deals.TotalRedemptions)},
		{},
		{"category", "count", "average_rating"},
	}
	for _, c := range report.CategoryBreakdown {
		rows = append(rows, []string{
			c.Category,
			strconv.Itoa(c.Count),
			strconv.FormatFloat(c.AverageRating, 'f', 1, 64),
		})
	}

	rows = append(rows, []string{}, []string{"stars", "review_count"})
	for i, count := range report.RatingDistribution {
		rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Itoa(count)})
	}

	rows = append(rows, []string{}, []string{"rank", "business", "rating", "reviews"})
	for i, b := range report.TopRated {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			b.Name,
			strconv.FormatFloat(b.AverageRating, 'f', 1, 64),
			strconv.Itoa(b.TotalReviews),
		})
	}

	for _, row := range rows {
		if len(row) == 0 {
			// csv.Writer drops empty records, write the separator directly.
			w.Flush()
			buf.WriteByte('\n')
			continue
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
