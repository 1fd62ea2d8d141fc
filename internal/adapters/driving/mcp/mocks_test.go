package mcp

import (
	"context"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.Book
	err     error
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	_ domain.SearchOptions,
) ([]domain.Book, error) {
	return m.results, m.err
}

// mockLibraryService is a mock implementation of driving.LibraryService.
type mockLibraryService struct {
	books []domain.Book
	book  *domain.Book
	err   error
}

func (m *mockLibraryService) Add(_ context.Context, _ domain.Book) (*domain.Book, error) {
	return m.book, m.err
}

func (m *mockLibraryService) Get(_ context.Context, _ string) (*domain.Book, error) {
	return m.book, m.err
}

func (m *mockLibraryService) List(_ context.Context) ([]domain.Book, error) {
	return m.books, m.err
}

func (m *mockLibraryService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockLibraryService) SetStatus(
	_ context.Context,
	_ string,
	_ domain.ReadingStatus,
) (*domain.Book, error) {
	return m.book, m.err
}

// mockProgressService is a mock implementation of driving.ProgressService.
type mockProgressService struct {
	entries []domain.ProgressEntry
	entry   *domain.ProgressEntry
	err     error
}

func (m *mockProgressService) Log(
	_ context.Context,
	_ string,
	_, _ int,
	_ string,
) (*domain.ProgressEntry, error) {
	return m.entry, m.err
}

func (m *mockProgressService) History(_ context.Context, _ string) ([]domain.ProgressEntry, error) {
	return m.entries, m.err
}

// mockActivityService is a mock implementation of driving.ActivityService.
type mockActivityService struct {
	events []domain.ActivityEvent
	err    error
}

func (m *mockActivityService) Recent(_ context.Context, _ int) ([]domain.ActivityEvent, error) {
	return m.events, m.err
}
