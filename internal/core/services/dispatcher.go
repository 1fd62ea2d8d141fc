package services

import (
	"context"
	"sync"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driven"
)

// Dispatcher owns the single in-flight remote query for one orchestrator
// instance. Every dispatch is stamped with a generation token from a
// monotonically increasing counter; a resolution whose token no longer
// matches the current generation has been superseded or cancelled and
// must be dropped by the caller.
//
// Cancellation is logical: superseding a dispatch bumps the generation,
// and the stale token check at resolution time is the sole correctness
// guarantee. The context handed to the remote call is cancelled as well,
// but only as a best-effort transport optimisation.
type Dispatcher struct {
	mu     sync.Mutex
	remote driven.MetadataSearcher
	gen    uint64
	cancel context.CancelFunc
}

// NewDispatcher creates a dispatcher over the given remote searcher.
func NewDispatcher(remote driven.MetadataSearcher) *Dispatcher {
	return &Dispatcher{remote: remote}
}

// Dispatch cancels and supersedes any prior query, then starts a new
// remote search for query. done is invoked exactly once from a separate
// goroutine with the dispatch's token and the remote outcome, whether or
// not the dispatch is still current; callers decide staleness with
// Current under their own lock.
//
// Returns the generation token stamped on this dispatch.
func (d *Dispatcher) Dispatch(ctx context.Context, query string, limit int, done func(token uint64, books []domain.Book, err error)) uint64 {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	d.gen++
	token := d.gen
	queryCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.mu.Unlock()

	go func() {
		books, err := d.remote.Search(queryCtx, query, limit)
		cancel()
		done(token, books, err)
	}()

	return token
}

// Current reports whether token still identifies the live dispatch.
func (d *Dispatcher) Current(token uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return token == d.gen
}

// Cancel invalidates the in-flight dispatch, if any, without starting a
// new one. The abandoned remote call may still complete; its resolution
// fails the Current check and is dropped.
func (d *Dispatcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.gen++
}
