package driven

import (
	"context"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// ActivityStore persists the append-only activity feed.
type ActivityStore interface {
	// Append stores a new activity event.
	Append(ctx context.Context, event *domain.ActivityEvent) error

	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]domain.ActivityEvent, error)
}
