package services

import (
	"sync"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// ResultCache maps canonical queries to result lists for the lifetime of
// one search session. Entries are only ever written by the dispatch that
// owned the current generation token, so overwrites are rare in practice.
// The cache is never partially evicted; Clear wipes it wholesale when the
// search UI is dismissed.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string][]domain.Book
}

// NewResultCache creates an empty result cache.
func NewResultCache() *ResultCache {
	return &ResultCache{
		entries: make(map[string][]domain.Book),
	}
}

// Get returns the cached results for a query.
func (c *ResultCache) Get(query string) ([]domain.Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	results, ok := c.entries[query]
	return results, ok
}

// Put stores results for a query, overwriting any previous entry.
func (c *ResultCache) Put(query string, results []domain.Book) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[query] = results
}

// Clear removes all entries.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]domain.Book)
}

// Len returns the number of cached queries.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
