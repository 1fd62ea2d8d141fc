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

// Ensure ProgressService implements the interface.
var _ driving.ProgressService = (*ProgressService)(nil)

// ProgressService records reading-progress updates.
type ProgressService struct {
	bookStore     driven.BookStore
	progressStore driven.ProgressStore
	activityStore driven.ActivityStore
	now           func() time.Time
}

// NewProgressService creates a new progress service. The activity store
// is optional (can be nil).
func NewProgressService(
	bookStore driven.BookStore,
	progressStore driven.ProgressStore,
	activityStore driven.ActivityStore,
) *ProgressService {
	return &ProgressService{
		bookStore:     bookStore,
		progressStore: progressStore,
		activityStore: activityStore,
		now:           time.Now,
	}
}

// Log records a progress update for a book.
func (s *ProgressService) Log(ctx context.Context, bookID string, page, percent int, note string) (*domain.ProgressEntry, error) {
	if page <= 0 && percent <= 0 {
		return nil, fmt.Errorf("%w: page or percent required", domain.ErrInvalidInput)
	}
	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("%w: percent must be 0-100", domain.ErrInvalidInput)
	}

	book, err := s.bookStore.Get(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("getting book %s: %w", bookID, err)
	}

	if page > 0 && percent == 0 && book.PageCount > 0 {
		percent = page * 100 / book.PageCount
		if percent > 100 {
			percent = 100
		}
	}

	entry := domain.ProgressEntry{
		ID:       uuid.New().String(),
		BookID:   bookID,
		Page:     page,
		Percent:  percent,
		Note:     note,
		LoggedAt: s.now(),
	}
	if err := s.progressStore.Append(ctx, &entry); err != nil {
		return nil, fmt.Errorf("saving progress: %w", err)
	}
	logger.Info("Progress for %q: page=%d percent=%d", book.Title, page, percent)

	s.recordActivity(ctx, *book, entry)
	return &entry, nil
}

// History returns progress entries for a book, oldest first.
func (s *ProgressService) History(ctx context.Context, bookID string) ([]domain.ProgressEntry, error) {
	entries, err := s.progressStore.ListForBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("listing progress for %s: %w", bookID, err)
	}
	return entries, nil
}

func (s *ProgressService) recordActivity(ctx context.Context, book domain.Book, entry domain.ProgressEntry) {
	if s.activityStore == nil {
		return
	}
	detail := fmt.Sprintf("%d%%", entry.Percent)
	if entry.Page > 0 {
		detail = fmt.Sprintf("page %d", entry.Page)
	}
	event := domain.ActivityEvent{
		ID:         uuid.New().String(),
		Kind:       domain.ActivityProgress,
		BookID:     book.ID,
		BookTitle:  book.Title,
		Detail:     detail,
		OccurredAt: s.now(),
	}
	if err := s.activityStore.Append(ctx, &event); err != nil {
		logger.Warn("Recording activity failed: %v", err)
	}
}
