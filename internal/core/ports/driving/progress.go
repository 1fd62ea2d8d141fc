package driving

import (
	"context"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// ProgressService records and reports reading progress.
type ProgressService interface {
	// Log records a progress update for a book. Either page or percent
	// may be zero, but not both.
	Log(ctx context.Context, bookID string, page, percent int, note string) (*domain.ProgressEntry, error)

	// History returns progress entries for a book, oldest first.
	History(ctx context.Context, bookID string) ([]domain.ProgressEntry, error)
}

// ReviewService records ratings and written reviews.
type ReviewService interface {
	// Rate stores or overwrites the rating/review for a book.
	Rate(ctx context.Context, bookID string, rating int, text string) (*domain.Review, error)

	// Get returns the review for a book, if any.
	Get(ctx context.Context, bookID string) (*domain.Review, error)
}

// ActivityService exposes the activity feed.
type ActivityService interface {
	// Recent returns up to limit activity events, newest first.
	Recent(ctx context.Context, limit int) ([]domain.ActivityEvent, error)
}
