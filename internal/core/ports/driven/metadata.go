package driven

import (
	"context"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// MetadataSearcher is the remote book-search function the incremental
// search core dispatches against. Implementations may fail for any
// transport or application reason; the core treats all failures
// uniformly and falls back to the local catalogue scan.
//
// Implementations should honour ctx cancellation as a best-effort
// optimisation. The core's correctness does not depend on it.
type MetadataSearcher interface {
	// Search queries the metadata API and returns up to limit books in
	// relevance order.
	Search(ctx context.Context, query string, limit int) ([]domain.Book, error)
}
