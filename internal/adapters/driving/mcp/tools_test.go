package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

func TestServer_handleSearchBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		mockSearch := &mockSearchService{
			results: []domain.Book{
				{
					ID:            "book-1",
					Title:         "Dune",
					Author:        "Frank Herbert",
					Genre:         "Science Fiction",
					ISBN:          "9780441172719",
					PageCount:     412,
					PublishedYear: 1965,
				},
			},
		}

		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "dune", Limit: 10}
		_, output, err := server.handleSearchBooks(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Len(t, output.Results, 1)
		assert.Equal(t, "book-1", output.Results[0].ID)
		assert.Equal(t, "Dune", output.Results[0].Title)
		assert.Equal(t, "Frank Herbert", output.Results[0].Author)
		assert.Equal(t, "9780441172719", output.Results[0].ISBN)
		assert.Equal(t, 412, output.Results[0].PageCount)
		assert.Equal(t, 1965, output.Results[0].PublishedYear)
	})

	t.Run("default limit is 10", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "dune", Limit: 0}
		_, output, err := server.handleSearchBooks(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Empty(t, output.Results)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		mockSearch := &mockSearchService{
			err: errors.New("search failed"),
		}

		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "dune"}
		_, _, err = server.handleSearchBooks(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}

func TestServer_handleListLibrary(t *testing.T) {
	ctx := context.Background()

	books := []domain.Book{
		{ID: "book-1", Title: "Dune", Author: "Frank Herbert", Status: domain.StatusReading},
		{ID: "book-2", Title: "Piranesi", Author: "Susanna Clarke", Status: domain.StatusFinished},
	}

	t.Run("returns all books", func(t *testing.T) {
		ports := &Ports{
			Search:  &mockSearchService{},
			Library: &mockLibraryService{books: books},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleListLibrary(ctx, nil, ListLibraryInput{})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, "reading", output.Books[0].Status)
	})

	t.Run("filters by status", func(t *testing.T) {
		ports := &Ports{
			Search:  &mockSearchService{},
			Library: &mockLibraryService{books: books},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleListLibrary(ctx, nil, ListLibraryInput{Status: "finished"})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, "Piranesi", output.Books[0].Title)
	})

	t.Run("nil library service returns error", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleListLibrary(ctx, nil, ListLibraryInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "library service not available")
	})
}

func TestServer_handleAddBook(t *testing.T) {
	ctx := context.Background()

	t.Run("adds book to catalogue", func(t *testing.T) {
		added := &domain.Book{
			ID:     "book-1",
			Title:  "Dune",
			Author: "Frank Herbert",
			Status: domain.StatusWantToRead,
		}
		ports := &Ports{
			Search:  &mockSearchService{},
			Library: &mockLibraryService{book: added},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := AddBookInput{Title: "Dune", Author: "Frank Herbert"}
		_, output, err := server.handleAddBook(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "book-1", output.Book.ID)
		assert.Equal(t, "Dune", output.Book.Title)
		assert.Equal(t, "want_to_read", output.Book.Status)
	})

	t.Run("returns error on add failure", func(t *testing.T) {
		ports := &Ports{
			Search:  &mockSearchService{},
			Library: &mockLibraryService{err: errors.New("duplicate isbn")},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleAddBook(ctx, nil, AddBookInput{Title: "Dune"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate isbn")
	})

	t.Run("nil library service returns error", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleAddBook(ctx, nil, AddBookInput{Title: "Dune"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "library service not available")
	})
}

func TestServer_handleLogProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("records a progress entry", func(t *testing.T) {
		entry := &domain.ProgressEntry{
			ID:       "entry-1",
			BookID:   "book-1",
			Page:     120,
			LoggedAt: time.Now(),
		}
		ports := &Ports{
			Search:   &mockSearchService{},
			Progress: &mockProgressService{entry: entry},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := LogProgressInput{BookID: "book-1", Page: 120}
		_, output, err := server.handleLogProgress(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "entry-1", output.EntryID)
		assert.Equal(t, 120, output.Page)
		assert.Equal(t, 0, output.Percent)
	})

	t.Run("nil progress service returns error", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleLogProgress(ctx, nil, LogProgressInput{BookID: "book-1", Page: 5})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "progress service not available")
	})
}
