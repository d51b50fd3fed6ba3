package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/search"
	"github.com/brightsideapp/brightside-server/internal/store"
)

// SearchService bridges the search index with the data store.
// It implements store.SearchIndexer so business mutations keep the index
// in sync.
type SearchService struct {
	index  *search.Index
	store  *store.Store
	logger *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(index *search.Index, st *store.Store, logger *slog.Logger) *SearchService {
	return &SearchService{
		index:  index,
		store:  st,
		logger: logger,
	}
}

// Search executes a query against the business index.
func (s *SearchService) Search(ctx context.Context, params search.Params) (*search.Result, error) {
	return s.index.Search(ctx, params)
}

// IndexBusiness implements store.SearchIndexer.
func (s *SearchService) IndexBusiness(_ context.Context, business *domain.Business) error {
	if err := s.index.IndexDocument(search.BusinessToDocument(business)); err != nil {
		return fmt.Errorf("index business: %w", err)
	}
	s.logger.Debug("indexed business", "id", business.ID, "name", business.Name)
	return nil
}

// DeleteBusiness implements store.SearchIndexer.
func (s *SearchService) DeleteBusiness(_ context.Context, businessID string) error {
	return s.index.DeleteDocument(businessID)
}

// DocumentCount returns the number of indexed businesses.
func (s *SearchService) DocumentCount() (uint64, error) {
	return s.index.DocumentCount()
}

// ReindexAll rebuilds the index from the store.
// This is a heavy operation, used at startup and after bulk seed loads.
func (s *SearchService) ReindexAll(ctx context.Context) error {
	s.logger.Info("starting full reindex")

	if err := s.index.Rebuild(); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}

	businesses, err := s.store.GetBusinesses(ctx)
	if err != nil {
		return fmt.Errorf("list businesses: %w", err)
	}

	docs := make([]*search.BusinessDocument, 0, len(businesses))
	for i := range businesses {
		docs = append(docs, search.BusinessToDocument(&businesses[i]))
	}

	if len(docs) > 0 {
		if err := s.index.IndexDocuments(docs); err != nil {
			return fmt.Errorf("index businesses: %w", err)
		}
	}

	s.logger.Info("full reindex complete", "documents", len(docs))
	return nil
}
