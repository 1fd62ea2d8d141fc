// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and as a zero-setup default.
package memory

import (
	"context"
	"sync"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driven"
)

// Ensure BookStore implements the interface.
var _ driven.BookStore = (*BookStore)(nil)

// BookStore is an in-memory implementation of driven.BookStore.
// List preserves insertion order.
type BookStore struct {
	mu    sync.RWMutex
	books map[string]domain.Book
	order []string
}

// NewBookStore creates a new in-memory book store.
func NewBookStore() *BookStore {
	return &BookStore{
		books: make(map[string]domain.Book),
	}
}

// Save stores or updates a book.
func (s *BookStore) Save(_ context.Context, book *domain.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[book.ID]; !ok {
		s.order = append(s.order, book.ID)
	}
	s.books[book.ID] = *book
	return nil
}

// Get retrieves a book by ID.
func (s *BookStore) Get(_ context.Context, id string) (*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	book, ok := s.books[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &book, nil
}

// List returns all books in insertion order.
func (s *BookStore) List(_ context.Context) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Book, 0, len(s.order))
	for _, id := range s.order {
		if book, ok := s.books[id]; ok {
			result = append(result, book)
		}
	}
	return result, nil
}

// Delete removes a book.
func (s *BookStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.books, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
