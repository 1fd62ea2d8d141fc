package driven

import (
	"context"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// ProgressStore persists reading-progress entries.
type ProgressStore interface {
	// Append stores a new progress entry.
	Append(ctx context.Context, entry *domain.ProgressEntry) error

	// ListForBook returns entries for a book, oldest first.
	ListForBook(ctx context.Context, bookID string) ([]domain.ProgressEntry, error)
}

// ReviewStore persists ratings and reviews, one per book.
type ReviewStore interface {
	// Save stores or overwrites the review for a book.
	Save(ctx context.Context, review *domain.Review) error

	// GetForBook retrieves the review for a book.
	GetForBook(ctx context.Context, bookID string) (*domain.Review, error)
}
