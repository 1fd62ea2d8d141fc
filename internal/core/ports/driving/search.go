package driving

import (
	"context"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// SearchService provides one-shot search over the book-metadata API with
// transparent fallback to a local catalogue scan. It never surfaces
// remote failures: degraded results, possibly empty, are still results.
type SearchService interface {
	// Search performs a single search for a query.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Book, error)
}

// IncrementalSearch is the type-ahead search orchestrator driven by a
// search box. Implementations are stateful: one instance per visible
// search box. All methods are safe for concurrent use, though callers
// are expected to push input from a single UI loop.
type IncrementalSearch interface {
	// Input pushes new raw input. Empty (after trimming) input resets to
	// idle; cached queries complete immediately; everything else is
	// debounced and dispatched.
	Input(raw string)

	// Reset cancels in-flight work and returns to idle, keeping the
	// session result cache.
	Reset()

	// Close resets and additionally clears the result cache. Called when
	// the search UI is dismissed.
	Close()

	// State returns the current search state.
	State() domain.SearchState
}
