package services

import (
	"context"
	"fmt"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driven"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driving"
)

// Ensure ActivityService implements the interface.
var _ driving.ActivityService = (*ActivityService)(nil)

// defaultActivityLimit bounds feed queries without an explicit limit.
const defaultActivityLimit = 50

// ActivityService exposes the activity feed.
type ActivityService struct {
	activityStore driven.ActivityStore
}

// NewActivityService creates a new activity service.
func NewActivityService(activityStore driven.ActivityStore) *ActivityService {
	return &ActivityService{activityStore: activityStore}
}

// Recent returns up to limit activity events, newest first.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]domain.ActivityEvent, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	events, err := s.activityStore.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	return events, nil
}
