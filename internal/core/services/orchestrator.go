package services

import (
	"context"
	"sync"
	"time"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driven"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driving"
	"github.com/bookstack-labs/stacks-cli/internal/logger"
)

// Ensure Orchestrator implements the interface.
var _ driving.IncrementalSearch = (*Orchestrator)(nil)

// DefaultDebounceDelay is the quiet period before an incremental search
// dispatches.
const DefaultDebounceDelay = time.Duration(domain.DefaultDebounceMS) * time.Millisecond

// OrchestratorConfig configures an incremental search orchestrator.
type OrchestratorConfig struct {
	// Remote is the metadata search function. Required.
	Remote driven.MetadataSearcher

	// Snapshot returns the current in-memory catalogue for the local
	// fallback scan. A nil snapshot scans an empty catalogue.
	Snapshot func() []domain.Book

	// Limit caps results per dispatch. Defaults to domain.DefaultSearchLimit.
	Limit int

	// Delay is the debounce window. Defaults to DefaultDebounceDelay.
	Delay time.Duration

	// Notify is invoked after every state change, while the orchestrator
	// lock is held: it must not call back into the orchestrator. A nil
	// Notify is a no-op. Typical consumers forward the state to a channel.
	Notify func(domain.SearchState)

	// Timers overrides the timer factory. Tests use a manual factory.
	Timers TimerFactory
}

// Orchestrator is the incremental (type-ahead) search state machine.
//
// Keystrokes arrive via Input. Empty input resets to idle; a cached query
// completes immediately with no debounce or dispatch; anything else arms
// the debounce timer and, once the input has been quiet, dispatches a
// remote search through the cancellable dispatcher. Remote failures fall
// back to a synchronous scan of the catalogue snapshot, so the consumer
// only ever observes Idle, Searching or Completed - never an error.
//
// All state transitions happen under one mutex, and every generation
// change in the dispatcher occurs while that mutex is held, so the
// stale-token check and the state write it guards are atomic with
// respect to newer input.
type Orchestrator struct {
	mu         sync.Mutex
	dispatcher *Dispatcher
	cache      *ResultCache
	debounce   *DebounceScheduler
	snapshot   func() []domain.Book
	limit      int
	delay      time.Duration
	notify     func(domain.SearchState)

	input  string
	state  domain.SearchState
	closed bool
}

// NewOrchestrator creates an orchestrator for one search box instance.
func NewOrchestrator(cfg OrchestratorConfig) *Orchestrator {
	if cfg.Limit <= 0 {
		cfg.Limit = domain.DefaultSearchLimit
	}
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDebounceDelay
	}
	if cfg.Snapshot == nil {
		cfg.Snapshot = func() []domain.Book { return nil }
	}
	if cfg.Notify == nil {
		cfg.Notify = func(domain.SearchState) {}
	}

	return &Orchestrator{
		dispatcher: NewDispatcher(cfg.Remote),
		cache:      NewResultCache(),
		debounce:   NewDebounceScheduler(cfg.Timers),
		snapshot:   cfg.Snapshot,
		limit:      cfg.Limit,
		delay:      cfg.Delay,
		notify:     cfg.Notify,
		state:      domain.IdleSearchState(),
	}
}

// Input pushes new raw keystroke input into the state machine.
func (o *Orchestrator) Input(raw string) {
	query := NormalizeQuery(raw)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}

	if query == "" {
		logger.Debug("Incremental search: empty input, resetting to idle")
		o.resetLocked()
		return
	}

	o.input = query

	if cached, ok := o.cache.Get(query); ok {
		// Cache hits bypass debounce and dispatch entirely so repeated
		// queries feel instant.
		logger.Debug("Incremental search: cache hit for %q (%d results)", query, len(cached))
		o.dispatcher.Cancel()
		o.debounce.Cancel()
		o.setStateLocked(domain.CompletedState(query, cached))
		return
	}

	logger.Debug("Incremental search: debouncing %q", query)
	o.debounce.Schedule(o.delay, func() { o.fire(query) })
}

// fire runs when the debounce timer expires for query.
func (o *Orchestrator) fire(query string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed || o.input != query {
		// Newer input superseded this timer between expiry and lock
		// acquisition.
		return
	}

	logger.Debug("Incremental search: dispatching %q", query)
	o.setStateLocked(domain.SearchingState(query))
	o.dispatcher.Dispatch(context.Background(), query, o.limit,
		func(token uint64, books []domain.Book, err error) {
			o.resolve(query, token, books, err)
		})
}

// resolve handles a dispatch completion.
func (o *Orchestrator) resolve(query string, token uint64, books []domain.Book, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed || !o.dispatcher.Current(token) {
		// Superseded or cancelled: drop silently.
		logger.Debug("Incremental search: dropping stale result for %q", query)
		return
	}

	if err != nil {
		// Remote failure degrades to the local catalogue scan and is
		// never surfaced as an error.
		logger.Warn("Incremental search: remote failed for %q, scanning catalogue: %v", query, err)
		books = ScanBooks(query, o.snapshot())
	}

	o.cache.Put(query, books)

	// The state invariant requires the completed query to equal the
	// current input. If newer input is still waiting on its debounce
	// timer, keep the present state; the newer dispatch will drive it.
	if o.input == query {
		o.setStateLocked(domain.CompletedState(query, books))
	}
}

// Reset cancels in-flight work and returns to idle. The session result
// cache survives so re-entered queries still complete instantly.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.resetLocked()
}

// Close resets the orchestrator and clears the result cache. Used when
// the search UI is dismissed; the instance must not be reused.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.resetLocked()
	o.cache.Clear()
	o.closed = true
}

// State returns the current search state.
func (o *Orchestrator) State() domain.SearchState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// CachedQueries returns the number of queries in the session cache.
func (o *Orchestrator) CachedQueries() int {
	return o.cache.Len()
}

func (o *Orchestrator) resetLocked() {
	o.dispatcher.Cancel()
	o.debounce.Cancel()
	o.input = ""
	o.setStateLocked(domain.IdleSearchState())
}

func (o *Orchestrator) setStateLocked(state domain.SearchState) {
	o.state = state
	o.notify(state)
}
