package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstack-labs/stacks-cli/internal/adapters/driven/storage/memory"
	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

func seededBookStore(t *testing.T, books ...domain.Book) *memory.BookStore {
	t.Helper()
	store := memory.NewBookStore()
	for i := range books {
		require.NoError(t, store.Save(context.Background(), &books[i]))
	}
	return store
}

func TestSearchService_EmptyQueryReturnsNoResults(t *testing.T) {
	remote := &mockRemote{}
	svc := NewSearchService(remote, memory.NewBookStore())

	results, err := svc.Search(context.Background(), "   ", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, remote.callCount())
}

func TestSearchService_RemoteResults(t *testing.T) {
	remote := &mockRemote{results: map[string][]domain.Book{
		"dune": {{ID: "ol1", Title: "Dune"}},
	}}
	svc := NewSearchService(remote, memory.NewBookStore())

	results, err := svc.Search(context.Background(), " dune ", domain.SearchOptions{Limit: 5})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Dune", results[0].Title)
	assert.Equal(t, []string{"dune"}, remote.queriedWith())
}

func TestSearchService_FallsBackToCatalogueOnRemoteFailure(t *testing.T) {
	remote := &mockRemote{err: domain.ErrMetadataUnavailable}
	store := seededBookStore(t,
		domain.Book{ID: "1", Title: "Dune", Author: "Frank Herbert"},
		domain.Book{ID: "2", Title: "1984", Author: "George Orwell"},
	)
	svc := NewSearchService(remote, store)

	results, err := svc.Search(context.Background(), "du", domain.SearchOptions{})
	require.NoError(t, err, "remote failure must not surface as an error")
	require.Len(t, results, 1)
	assert.Equal(t, "Dune", results[0].Title)
}

func TestSearchService_FallbackRespectsLimit(t *testing.T) {
	remote := &mockRemote{err: domain.ErrMetadataUnavailable}
	store := seededBookStore(t,
		domain.Book{ID: "1", Title: "Dune"},
		domain.Book{ID: "2", Title: "Dune Messiah"},
		domain.Book{ID: "3", Title: "Children of Dune"},
	)
	svc := NewSearchService(remote, store)

	results, err := svc.Search(context.Background(), "dune", domain.SearchOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchService_NilRemoteScansCatalogue(t *testing.T) {
	store := seededBookStore(t, domain.Book{ID: "1", Title: "Dune"})
	svc := NewSearchService(nil, store)

	results, err := svc.Search(context.Background(), "dune", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchService_NilStoresYieldEmptyResults(t *testing.T) {
	remote := &mockRemote{err: domain.ErrMetadataUnavailable}
	svc := NewSearchService(remote, nil)

	results, err := svc.Search(context.Background(), "dune", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)
}
