package memory

import (
	"context"
	"sync"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driven"
)

// Ensure ActivityStore implements the interface.
var _ driven.ActivityStore = (*ActivityStore)(nil)

// ActivityStore is an in-memory implementation of driven.ActivityStore.
type ActivityStore struct {
	mu     sync.RWMutex
	events []domain.ActivityEvent
}

// NewActivityStore creates a new in-memory activity store.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{}
}

// Append stores a new activity event.
func (s *ActivityStore) Append(_ context.Context, event *domain.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *event)
	return nil
}

// Recent returns up to limit events, newest first.
func (s *ActivityStore) Recent(_ context.Context, limit int) ([]domain.ActivityEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.ActivityEvent, 0, limit)
	for i := len(s.events) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.events[i])
	}
	return result, nil
}
