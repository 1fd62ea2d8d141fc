package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driven"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driving"
	"github.com/bookstack-labs/stacks-cli/internal/logger"
)

// Ensure ReviewService implements the interface.
var _ driving.ReviewService = (*ReviewService)(nil)

// ReviewService records ratings and written reviews, one per book.
type ReviewService struct {
	bookStore     driven.BookStore
	reviewStore   driven.ReviewStore
	activityStore driven.ActivityStore
	now           func() time.Time
}

// NewReviewService creates a new review service. The activity store is
// optional (can be nil).
func NewReviewService(
	bookStore driven.BookStore,
	reviewStore driven.ReviewStore,
	activityStore driven.ActivityStore,
) *ReviewService {
	return &ReviewService{
		bookStore:     bookStore,
		reviewStore:   reviewStore,
		activityStore: activityStore,
		now:           time.Now,
	}
}

// Rate stores or overwrites the rating/review for a book.
func (s *ReviewService) Rate(ctx context.Context, bookID string, rating int, text string) (*domain.Review, error) {
	if !domain.ValidRating(rating) {
		return nil, fmt.Errorf("%w: rating must be 1-5", domain.ErrInvalidInput)
	}

	book, err := s.bookStore.Get(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("getting book %s: %w", bookID, err)
	}

	now := s.now()
	review := domain.Review{
		ID:        uuid.New().String(),
		BookID:    bookID,
		Rating:    rating,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Overwrite semantics: keep the original ID and creation time when a
	// review already exists.
	if existing, err := s.reviewStore.GetForBook(ctx, bookID); err == nil && existing != nil {
		review.ID = existing.ID
		review.CreatedAt = existing.CreatedAt
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("getting review for %s: %w", bookID, err)
	}

	if err := s.reviewStore.Save(ctx, &review); err != nil {
		return nil, fmt.Errorf("saving review: %w", err)
	}
	logger.Info("Rated %q: %d stars", book.Title, rating)

	s.recordActivity(ctx, *book, rating)
	return &review, nil
}

// Get returns the review for a book, if any.
func (s *ReviewService) Get(ctx context.Context, bookID string) (*domain.Review, error) {
	review, err := s.reviewStore.GetForBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("getting review for %s: %w", bookID, err)
	}
	return review, nil
}

func (s *ReviewService) recordActivity(ctx context.Context, book domain.Book, rating int) {
	if s.activityStore == nil {
		return
	}
	event := domain.ActivityEvent{
		ID:         uuid.New().String(),
		Kind:       domain.ActivityRated,
		BookID:     book.ID,
		BookTitle:  book.Title,
		Detail:     fmt.Sprintf("%d stars", rating),
		OccurredAt: s.now(),
	}
	if err := s.activityStore.Append(ctx, &event); err != nil {
		logger.Warn("Recording activity failed: %v", err)
	}
}
