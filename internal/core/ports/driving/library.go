package driving

import (
	"context"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// LibraryService manages the user's book catalogue.
type LibraryService interface {
	// Add inserts a book into the catalogue. A missing ID is generated.
	Add(ctx context.Context, book domain.Book) (*domain.Book, error)

	// Get retrieves a book by ID.
	Get(ctx context.Context, id string) (*domain.Book, error)

	// List returns all catalogued books.
	List(ctx context.Context) ([]domain.Book, error)

	// Remove deletes a book from the catalogue.
	Remove(ctx context.Context, id string) error

	// SetStatus updates a book's reading status.
	SetStatus(ctx context.Context, id string, status domain.ReadingStatus) (*domain.Book, error)
}
