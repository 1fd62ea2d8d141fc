package driven

import (
	"context"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// BookStore persists the user's catalogue.
type BookStore interface {
	// Save stores or updates a book.
	Save(ctx context.Context, book *domain.Book) error

	// Get retrieves a book by ID.
	Get(ctx context.Context, id string) (*domain.Book, error)

	// List returns all books in insertion order.
	List(ctx context.Context) ([]domain.Book, error)

	// Delete removes a book.
	Delete(ctx context.Context, id string) error
}
