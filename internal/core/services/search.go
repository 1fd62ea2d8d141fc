package services

import (
	"context"
	"fmt"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driven"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driving"
	"github.com/bookstack-labs/stacks-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService provides one-shot book search for the CLI and MCP
// adapters: remote metadata search with transparent fallback to a scan
// of the local catalogue. Like the incremental orchestrator, it degrades
// rather than erroring when the remote source fails.
type SearchService struct {
	remote    driven.MetadataSearcher
	bookStore driven.BookStore
}

// NewSearchService creates a new one-shot search service.
func NewSearchService(remote driven.MetadataSearcher, bookStore driven.BookStore) *SearchService {
	return &SearchService{
		remote:    remote,
		bookStore: bookStore,
	}
}

// Search performs a single search for a query.
func (s *SearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Book, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = NormalizeQuery(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.Book{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}
	logger.Debug("Limit: %d", limit)

	if s.remote != nil {
		books, err := s.remote.Search(ctx, query, limit)
		if err == nil {
			logger.Info("Remote search: %d results", len(books))
			return books, nil
		}
		logger.Warn("Remote search failed: %v (falling back to catalogue scan)", err)
	} else {
		logger.Debug("No metadata searcher configured, scanning catalogue")
	}

	books, err := s.localScan(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalogue scan: %w", err)
	}
	if len(books) > limit {
		books = books[:limit]
	}
	logger.Info("Catalogue scan: %d results", len(books))
	return books, nil
}

func (s *SearchService) localScan(ctx context.Context, query string) ([]domain.Book, error) {
	if s.bookStore == nil {
		return []domain.Book{}, nil
	}
	books, err := s.bookStore.List(ctx)
	if err != nil {
		return nil, err
	}
	return ScanBooks(query, books), nil
}
