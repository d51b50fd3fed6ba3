// Package search provides full-text business search using Bleve, with
// faceted category and tag filtering, fuzzy matching, and rating/price
// range queries.
package search

import (
	"strings"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

// BusinessDocument is the document structure for the Bleve index. Listings
// are flattened so one query covers name, description, tags, and location
// text without joins at query time.
type BusinessDocument struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory,omitempty"`
	City          string   `json:"city,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	PriceLevel    int      `json:"price_level,omitempty"`
	AverageRating float64  `json:"average_rating"`
	TotalReviews  int      `json:"total_reviews"`
	CreatedAt     int64    `json:"created_at"` // Unix millis
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our mapping
// uses lowercase names, so we convert explicitly.
func (d *BusinessDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":             d.ID,
		"name":           d.Name,
		"category":       d.Category,
		"average_rating": d.AverageRating,
		"total_reviews":  d.TotalReviews,
		"created_at":     d.CreatedAt,
	}

	if d.Description != "" {
		m["description"] = d.Description
	}
	if d.Subcategory != "" {
		m["subcategory"] = d.Subcategory
	}
	if d.City != "" {
		m["city"] = d.City
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}
	if d.PriceLevel > 0 {
		m["price_level"] = d.PriceLevel
	}

	return m
}

// BusinessToDocument converts a domain Business to a BusinessDocument.
func BusinessToDocument(b *domain.Business) *BusinessDocument {
	tags := make([]string, 0, len(b.Tags))
	for _, t := range b.Tags {
		tags = append(tags, strings.ToLower(t))
	}
	return &BusinessDocument{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		Category:      b.Category,
		Subcategory:   b.Subcategory,
		City:          b.City,
		Tags:          tags,
		PriceLevel:    b.PriceLevel,
		AverageRating: b.AverageRating,
		TotalReviews:  b.TotalReviews,
		CreatedAt:     b.CreatedAt.UnixMilli(),
	}
}
