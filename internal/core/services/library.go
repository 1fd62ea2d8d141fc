package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driven"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driving"
	"github.com/bookstack-labs/stacks-cli/internal/logger"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

// LibraryService manages the user's book catalogue. Mutations append
// events to the activity feed when an activity store is configured.
type LibraryService struct {
	bookStore     driven.BookStore
	activityStore driven.ActivityStore
	now           func() time.Time
}

// NewLibraryService creates a new library service. The activity store is
// optional (can be nil).
func NewLibraryService(bookStore driven.BookStore, activityStore driven.ActivityStore) *LibraryService {
	return &LibraryService{
		bookStore:     bookStore,
		activityStore: activityStore,
		now:           time.Now,
	}
}

// Add inserts a book into the catalogue.
func (s *LibraryService) Add(ctx context.Context, book domain.Book) (*domain.Book, error) {
	if book.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if book.Status == "" {
		book.Status = domain.StatusWantToRead
	}
	if !book.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, book.Status)
	}
	if book.ID == "" {
		book.ID = uuid.New().String()
	}

	now := s.now()
	book.AddedAt = now
	book.UpdatedAt = now

	if err := s.bookStore.Save(ctx, &book); err != nil {
		return nil, fmt.Errorf("saving book: %w", err)
	}
	logger.Info("Added book %q (%s)", book.Title, book.ID)

	s.recordActivity(ctx, domain.ActivityAdded, book, "added to catalogue")
	return &book, nil
}

// Get retrieves a book by ID.
func (s *LibraryService) Get(ctx context.Context, id string) (*domain.Book, error) {
	book, err := s.bookStore.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting book %s: %w", id, err)
	}
	return book, nil
}

// List returns all catalogued books.
func (s *LibraryService) List(ctx context.Context) ([]domain.Book, error) {
	books, err := s.bookStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	return books, nil
}

// Remove deletes a book from the catalogue.
func (s *LibraryService) Remove(ctx context.Context, id string) error {
	if _, err := s.bookStore.Get(ctx, id); err != nil {
		return fmt.Errorf("getting book %s: %w", id, err)
	}
	if err := s.bookStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting book %s: %w", id, err)
	}
	logger.Info("Removed book %s", id)
	return nil
}

// SetStatus updates a book's reading status.
func (s *LibraryService) SetStatus(ctx context.Context, id string, status domain.ReadingStatus) (*domain.Book, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}

	book, err := s.bookStore.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting book %s: %w", id, err)
	}

	book.Status = status
	book.UpdatedAt = s.now()
	if err := s.bookStore.Save(ctx, book); err != nil {
		return nil, fmt.Errorf("saving book %s: %w", id, err)
	}
	logger.Info("Book %q status -> %s", book.Title, status)

	s.recordActivity(ctx, domain.ActivityStatusChanged, *book, string(status))
	return book, nil
}

// Snapshot returns the catalogue for use as the incremental search
// fallback. Errors degrade to an empty snapshot: the fallback scan must
// never fail.
func (s *LibraryService) Snapshot(ctx context.Context) []domain.Book {
	books, err := s.bookStore.List(ctx)
	if err != nil {
		logger.Warn("Catalogue snapshot failed: %v", err)
		return nil
	}
	return books
}

func (s *LibraryService) recordActivity(ctx context.Context, kind domain.ActivityKind, book domain.Book, detail string) {
	if s.activityStore == nil {
		return
	}
	event := domain.ActivityEvent{
		ID:         uuid.New().String(),
		Kind:       kind,
		BookID:     book.ID,
		BookTitle:  book.Title,
		Detail:     detail,
		OccurredAt: s.now(),
	}
	if err := s.activityStore.Append(ctx, &event); err != nil {
		// The feed is best-effort; a failed append never fails the mutation.
		logger.Warn("Recording activity failed: %v", err)
	}
}
