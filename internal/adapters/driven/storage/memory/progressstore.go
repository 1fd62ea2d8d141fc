package memory

import (
	"context"
	"sync"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driven"
)

// Ensure ProgressStore implements the interface.
var _ driven.ProgressStore = (*ProgressStore)(nil)

// ProgressStore is an in-memory implementation of driven.ProgressStore.
type ProgressStore struct {
	mu      sync.RWMutex
	entries map[string][]domain.ProgressEntry
}

// NewProgressStore creates a new in-memory progress store.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		entries: make(map[string][]domain.ProgressEntry),
	}
}

// Append stores a new progress entry.
func (s *ProgressStore) Append(_ context.Context, entry *domain.ProgressEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.BookID] = append(s.entries[entry.BookID], *entry)
	return nil
}

// ListForBook returns entries for a book, oldest first.
func (s *ProgressStore) ListForBook(_ context.Context, bookID string) ([]domain.ProgressEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.entries[bookID]
	result := make([]domain.ProgressEntry, len(entries))
	copy(result, entries)
	return result, nil
}

// Ensure ReviewStore implements the interface.
var _ driven.ReviewStore = (*ReviewStore)(nil)

// ReviewStore is an in-memory implementation of driven.ReviewStore.
type ReviewStore struct {
	mu      sync.RWMutex
	reviews map[string]domain.Review // keyed by book ID
}

// NewReviewStore creates a new in-memory review store.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{
		reviews: make(map[string]domain.Review),
	}
}

// Save stores or overwrites the review for a book.
func (s *ReviewStore) Save(_ context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[review.BookID] = *review
	return nil
}

// GetForBook retrieves the review for a book.
func (s *ReviewStore) GetForBook(_ context.Context, bookID string) (*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	review, ok := s.reviews[bookID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &review, nil
}
