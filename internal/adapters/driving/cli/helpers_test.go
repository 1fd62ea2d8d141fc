package cli

import (
	"context"
	"time"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// cliMockSearchService is a mock implementation of driving.SearchService.
type cliMockSearchService struct {
	results []domain.Book
	err     error
}

func (m *cliMockSearchService) Search(
	_ context.Context,
	_ string,
	_ domain.SearchOptions,
) ([]domain.Book, error) {
	return m.results, m.err
}

// cliMockLibraryService is a mock implementation of driving.LibraryService.
type cliMockLibraryService struct {
	books []domain.Book
	book  *domain.Book
	err   error
}

func (m *cliMockLibraryService) Add(_ context.Context, book domain.Book) (*domain.Book, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.book != nil {
		return m.book, nil
	}
	book.ID = "generated-id"
	return &book, nil
}

func (m *cliMockLibraryService) Get(_ context.Context, _ string) (*domain.Book, error) {
	return m.book, m.err
}

func (m *cliMockLibraryService) List(_ context.Context) ([]domain.Book, error) {
	return m.books, m.err
}

func (m *cliMockLibraryService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *cliMockLibraryService) SetStatus(
	_ context.Context,
	id string,
	status domain.ReadingStatus,
) (*domain.Book, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.book != nil {
		updated := *m.book
		updated.Status = status
		return &updated, nil
	}
	return &domain.Book{ID: id, Title: "Some Book", Status: status}, nil
}

// cliMockProgressService is a mock implementation of driving.ProgressService.
type cliMockProgressService struct {
	entries []domain.ProgressEntry
	entry   *domain.ProgressEntry
	err     error
}

func (m *cliMockProgressService) Log(
	_ context.Context,
	bookID string,
	page, percent int,
	_ string,
) (*domain.ProgressEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.entry != nil {
		return m.entry, nil
	}
	return &domain.ProgressEntry{
		ID:       "entry-id",
		BookID:   bookID,
		Page:     page,
		Percent:  percent,
		LoggedAt: time.Now(),
	}, nil
}

func (m *cliMockProgressService) History(_ context.Context, _ string) ([]domain.ProgressEntry, error) {
	return m.entries, m.err
}

// cliMockReviewService is a mock implementation of driving.ReviewService.
type cliMockReviewService struct {
	review *domain.Review
	err    error
}

func (m *cliMockReviewService) Rate(
	_ context.Context,
	bookID string,
	rating int,
	text string,
) (*domain.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.review != nil {
		return m.review, nil
	}
	return &domain.Review{ID: "review-id", BookID: bookID, Rating: rating, Text: text}, nil
}

func (m *cliMockReviewService) Get(_ context.Context, _ string) (*domain.Review, error) {
	return m.review, m.err
}

// cliMockActivityService is a mock implementation of driving.ActivityService.
type cliMockActivityService struct {
	events []domain.ActivityEvent
	err    error
}

func (m *cliMockActivityService) Recent(_ context.Context, _ int) ([]domain.ActivityEvent, error) {
	return m.events, m.err
}

// cliMockSettingsService is a mock implementation of driving.SettingsService.
type cliMockSettingsService struct {
	settings *domain.AppSettings
	saved    *domain.AppSettings
	err      error
}

func (m *cliMockSettingsService) Get(_ context.Context) (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings != nil {
		return m.settings, nil
	}
	defaults := domain.DefaultSettings()
	return &defaults, nil
}

func (m *cliMockSettingsService) Save(_ context.Context, settings *domain.AppSettings) error {
	if m.err != nil {
		return m.err
	}
	m.saved = settings
	return nil
}

// setupTestServices swaps the package-level services for mocks with
// canned data and returns a cleanup that restores the originals.
func setupTestServices() func() {
	oldSearch := searchService
	oldLibrary := libraryService
	oldProgress := progressService
	oldReview := reviewService
	oldActivity := activityService
	oldSettings := settingsService

	searchService = &cliMockSearchService{
		results: []domain.Book{
			{
				ID:            "book-1",
				Title:         "Dune",
				Author:        "Frank Herbert",
				Genre:         "Science Fiction",
				PublishedYear: 1965,
			},
		},
	}
	libraryService = &cliMockLibraryService{
		books: []domain.Book{
			{ID: "book-1", Title: "Dune", Author: "Frank Herbert", Status: domain.StatusReading},
		},
	}
	progressService = &cliMockProgressService{
		entries: []domain.ProgressEntry{
			{
				ID:       "entry-1",
				BookID:   "book-1",
				Page:     120,
				LoggedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
			},
		},
	}
	reviewService = &cliMockReviewService{}
	activityService = &cliMockActivityService{
		events: []domain.ActivityEvent{
			{
				ID:         "event-1",
				Kind:       domain.ActivityAdded,
				BookID:     "book-1",
				BookTitle:  "Dune",
				OccurredAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
			},
		},
	}
	settingsService = &cliMockSettingsService{}

	return func() {
		searchService = oldSearch
		libraryService = oldLibrary
		progressService = oldProgress
		reviewService = oldReview
		activityService = oldActivity
		settingsService = oldSettings
	}
}
